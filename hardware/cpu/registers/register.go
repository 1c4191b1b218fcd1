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

package registers

import (
	"fmt"

	"github.com/jetsetilly/mos6502bus/bus"
)

// Register is an 8 bit register whose value may be unknown.
type Register struct {
	label string
	value bus.Data
}

// NewRegister is the preferred method of initialisation for the Register
// type. The initial value is unknown.
func NewRegister(label string) Register {
	return Register{label: label}
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%s", r.label, r.value.Hex())
}

// Data returns the current value of the register.
func (r Register) Data() bus.Data {
	return r.value
}

// IsKnown returns true if the value of the register is known.
func (r Register) IsKnown() bool {
	return r.value.IsKnown()
}

// Load value into register. The value may be unknown.
func (r *Register) Load(v bus.Data) {
	r.value = v
}

// Forget the value in the register.
func (r *Register) Forget() {
	r.value = bus.Unknown
}

// Check compares the value of the register with an observed value. Returns
// false if both values are known and they differ. The register takes the
// observed value if it is known.
func (r *Register) Check(observed bus.Data) bool {
	ok := !r.value.IsKnown() || !observed.IsKnown() || r.value == observed
	if observed.IsKnown() {
		r.value = observed
	}
	return ok
}

// Add n to the register, wrapping at 8 bits. An unknown register stays
// unknown.
func (r *Register) Add(n int) {
	if v, ok := r.value.Value(); ok {
		r.value = bus.Known(uint8(int(v) + n))
	}
}
