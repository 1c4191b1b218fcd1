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

package bus

import "fmt"

// Data is the value of the 8 bit data bus. The value may be indeterminate if
// any data line was at an unassigned level.
type Data struct {
	value uint8
	known bool
}

// Unknown is the indeterminate Data value.
var Unknown = Data{}

// Known returns a Data value for the byte.
func Known(v uint8) Data {
	return Data{value: v, known: true}
}

// Value returns the byte and whether it is known. The byte is zero if it is
// not known.
func (d Data) Value() (uint8, bool) {
	return d.value, d.known
}

// IsKnown returns true if the value is not indeterminate.
func (d Data) IsKnown() bool {
	return d.known
}

// Is returns true if the value is known and equal to v.
func (d Data) Is(v uint8) bool {
	return d.known && d.value == v
}

// Signed interprets a known value as a two's complement displacement.
func (d Data) Signed() (int, bool) {
	return int(int8(d.value)), d.known
}

// String returns the value as two lower case hex digits, or "??".
func (d Data) String() string {
	if !d.known {
		return "??"
	}
	return fmt.Sprintf("%02x", d.value)
}

// Hex returns the value as two upper case hex digits, or "??".
func (d Data) Hex() string {
	if !d.known {
		return "??"
	}
	return fmt.Sprintf("%02X", d.value)
}
