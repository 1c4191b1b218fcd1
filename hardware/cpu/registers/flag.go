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
	"github.com/jetsetilly/mos6502bus/bus"
)

// Flag is a single bit of the status register whose value may be unknown.
type Flag struct {
	set   bool
	known bool
}

// List of flag values.
var (
	UnknownFlag = Flag{}
	Clear       = Flag{set: false, known: true}
	Set         = Flag{set: true, known: true}
)

// FlagFrom returns a known flag.
func FlagFrom(b bool) Flag {
	return Flag{set: b, known: true}
}

// FlagFromBit returns the flag for bit n of the data value. The flag is
// unknown if the data value is unknown.
func FlagFromBit(d bus.Data, n uint) Flag {
	v, ok := d.Value()
	if !ok {
		return UnknownFlag
	}
	return FlagFrom(v&(1<<n) != 0)
}

// Value returns the state of the flag and whether it is known.
func (f Flag) Value() (bool, bool) {
	return f.set, f.known
}

// IsKnown returns true if the state of the flag is known.
func (f Flag) IsKnown() bool {
	return f.known
}

func (f Flag) String() string {
	if !f.known {
		return "?"
	}
	if f.set {
		return "1"
	}
	return "0"
}

// Bit returns 1 or 0 for a known flag.
func (f Flag) Bit() (uint8, bool) {
	if f.set {
		return 1, f.known
	}
	return 0, f.known
}
