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

// bit positions of the flags in the status register
const (
	bitCarry     = 0
	bitZero      = 1
	bitInterrupt = 2
	bitDecimal   = 3
	bitOverflow  = 6
	bitNegative  = 7
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. The break flag and the unused bit are not modelled.
type StatusRegister struct {
	Negative         Flag
	Overflow         Flag
	DecimalMode      Flag
	InterruptDisable Flag
	Zero             Flag
	Carry            Flag
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. All flags are unknown.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	return fmt.Sprintf("N=%s V=%s D=%s I=%s Z=%s C=%s",
		sr.Negative, sr.Overflow, sr.DecimalMode,
		sr.InterruptDisable, sr.Zero, sr.Carry)
}

// Forget the state of every flag.
func (sr *StatusRegister) Forget() {
	*sr = StatusRegister{}
}

// SetNZ sets the negative and zero flags according to the value. Both flags
// are unknown if the value is unknown.
func (sr *StatusRegister) SetNZ(v bus.Data) {
	if b, ok := v.Value(); ok {
		sr.Negative = FlagFrom(b&0x80 == 0x80)
		sr.Zero = FlagFrom(b == 0)
		return
	}
	sr.ForgetNZ()
}

// ForgetNZ sets the negative and zero flags to unknown.
func (sr *StatusRegister) ForgetNZ() {
	sr.Negative = UnknownFlag
	sr.Zero = UnknownFlag
}

// ForgetNZC sets the negative, zero and carry flags to unknown.
func (sr *StatusRegister) ForgetNZC() {
	sr.ForgetNZ()
	sr.Carry = UnknownFlag
}

// Load sets every modelled flag from a status value, as pulled from the
// stack. All flags are unknown if the value is unknown.
func (sr *StatusRegister) Load(v bus.Data) {
	sr.Negative = FlagFromBit(v, bitNegative)
	sr.Overflow = FlagFromBit(v, bitOverflow)
	sr.DecimalMode = FlagFromBit(v, bitDecimal)
	sr.InterruptDisable = FlagFromBit(v, bitInterrupt)
	sr.Zero = FlagFromBit(v, bitZero)
	sr.Carry = FlagFromBit(v, bitCarry)
}

// Check compares the known flags with a status value, as pushed to the stack.
// Returns false if any known flag differs from the corresponding bit. An
// unknown value is always consistent.
func (sr StatusRegister) Check(v bus.Data) bool {
	b, ok := v.Value()
	if !ok {
		return true
	}

	check := func(f Flag, bit uint) bool {
		s, known := f.Value()
		return !known || s == (b&(1<<bit) != 0)
	}

	return check(sr.Negative, bitNegative) &&
		check(sr.Overflow, bitOverflow) &&
		check(sr.DecimalMode, bitDecimal) &&
		check(sr.InterruptDisable, bitInterrupt) &&
		check(sr.Zero, bitZero) &&
		check(sr.Carry, bitCarry)
}
