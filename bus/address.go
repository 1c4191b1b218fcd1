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

// Address is a 16 bit program counter value that may be unknown.
type Address struct {
	value uint16
	known bool
}

// UnknownAddress is the Address value used when the program counter cannot
// be determined.
var UnknownAddress = Address{}

// KnownAddress returns an Address for the 16 bit value.
func KnownAddress(v uint16) Address {
	return Address{value: v, known: true}
}

// AddressFromBytes combines the low and high bytes of an address. The result
// is only known if both bytes are known.
func AddressFromBytes(lo Data, hi Data) Address {
	if !lo.known || !hi.known {
		return UnknownAddress
	}
	return KnownAddress(uint16(hi.value)<<8 | uint16(lo.value))
}

// Value returns the address and whether it is known.
func (a Address) Value() (uint16, bool) {
	return a.value, a.known
}

// IsKnown returns true if the address is known.
func (a Address) IsKnown() bool {
	return a.known
}

// Add returns the address plus n, wrapping at 16 bits. An unknown address
// stays unknown.
func (a Address) Add(n int) Address {
	if !a.known {
		return a
	}
	return KnownAddress(uint16(int(a.value) + n))
}

// Branch returns the target of a branch. The base is the number of bytes in
// the branch instruction and the displacement is relative to the end of the
// instruction. The target is unknown if either the address or the
// displacement is unknown.
func (a Address) Branch(base int, displacement Data) Address {
	d, ok := displacement.Signed()
	if !ok {
		return UnknownAddress
	}
	return a.Add(base + d)
}

// String returns the address as four upper case hex digits, or "????".
func (a Address) String() string {
	if !a.known {
		return "????"
	}
	return fmt.Sprintf("%04X", a.value)
}
