// This file is part of mos6502bus.
//
// mos6502bus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502bus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502bus.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/mos6502bus/curated"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Hook is the callback type used by SetHookPre() and SetHookPost().
type Hook func(value Value) error

// value is the storage shared by the preference types. the atomic.Value only
// ever holds values of type T
type value[T bool | int | string] struct {
	v        atomic.Value
	dflt     T
	hookPre  Hook
	hookPost Hook
}

func (p *value[T]) load() T {
	if v := p.v.Load(); v != nil {
		return v.(T)
	}
	var zero T
	return zero
}

func (p *value[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.v.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}

	return nil
}

// Get returns the raw pref value.
func (p *value[T]) Get() Value {
	return p.load()
}

// SetDefault sets the value used by Reset(). The current value is not
// changed.
func (p *value[T]) SetDefault(v T) {
	p.dflt = v
}

// Reset sets the value to the default value. The default is the zero value
// of the type unless it has been changed with SetDefault().
func (p *value[T]) Reset() error {
	return p.store(p.dflt)
}

// SetHookPre sets the callback function to be called just before the value
// is updated. A non-nil error from the hook prevents the update. The hook is
// called even if the value hasn't changed.
func (p *value[T]) SetHookPre(f Hook) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value
// is updated. The hook is called even if the value hasn't changed.
func (p *value[T]) SetHookPost(f Hook) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set new value to Bool type. New value must be of type bool or a string
// accepted by strconv.ParseBool().
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf("prefs: cannot convert %q to a bool", v)
		}
		return p.store(b)
	}
	return curated.Errorf("prefs: cannot convert %T to a bool", v)
}

// String implements a string type in the prefs system.
type String struct {
	value[string]
}

func (p *String) String() string {
	return p.load()
}

// Set new value to String type. New value must be a string or implement the
// fmt.Stringer interface.
func (p *String) Set(v Value) error {
	switch v := v.(type) {
	case string:
		return p.store(v)
	case fmt.Stringer:
		return p.store(v.String())
	}
	return curated.Errorf("prefs: cannot convert %T to a string", v)
}

// Int implements an integer type in the prefs system.
type Int struct {
	value[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set new value to Int type. New value can be an integer type or a string.
// Strings are decimal unless prefixed with 0x, in which case they are
// hexadecimal.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int64:
		return p.store(int(v))
	case int32:
		return p.store(int(v))
	case uint8:
		return p.store(int(v))
	case uint16:
		return p.store(int(v))
	case string:
		n, err := parseInt(v)
		if err != nil {
			return curated.Errorf("prefs: cannot convert %q to an int", v)
		}
		return p.store(n)
	}
	return curated.Errorf("prefs: cannot convert %T to an int", v)
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	base := 10
	if h, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		s = h
		base = 16
	}

	n, err := strconv.ParseInt(s, base, 0)
	if err != nil {
		return 0, err
	}
	if neg {
		n = -n
	}
	return int(n), nil
}
