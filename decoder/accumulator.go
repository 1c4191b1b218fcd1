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

package decoder

import "github.com/jetsetilly/mos6502bus/bus"

// accumulator holds the three most recent memory reads of an instruction. the
// most recent read is the top byte
type accumulator struct {
	value uint32

	// one bit per byte. set if the byte is not known
	unknown uint8
}

const allUnknown = 0b111

func (acc *accumulator) reset() {
	acc.value = 0
	acc.unknown = allUnknown
}

func (acc *accumulator) push(d bus.Data) {
	v, ok := d.Value()
	acc.value = acc.value>>8 | uint32(v)<<16
	acc.unknown >>= 1
	if !ok {
		acc.unknown |= 0b100
	}
}

// upper returns the most recent two reads as a little endian address. this
// is the address read from a vector or from the stack by RTI
func (acc accumulator) upper() bus.Address {
	if acc.unknown&0b110 != 0 {
		return bus.UnknownAddress
	}
	return bus.KnownAddress(uint16(acc.value >> 8))
}

// lower returns the third and second most recent reads as a little endian
// address. this is the address pulled from the stack by RTS
func (acc accumulator) lower() bus.Address {
	if acc.unknown&0b011 != 0 {
		return bus.UnknownAddress
	}
	return bus.KnownAddress(uint16(acc.value))
}
