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

package instructions

// AddressingMode describes the method of memory addressing used by an
// instruction.
type AddressingMode int

const (
	Implied     AddressingMode = iota
	Accumulator                // A
	Relative                   // relative addressing is used for branch instructions
	Immediate
	ZeroPage
	ZeroPageX        // zpg,X
	ZeroPageY        // zpg,Y
	IndexedIndirect  // (zpg,X)
	IndirectIndexed  // (zpg),Y
	ZeroPageIndirect // (zpg) 65C02 only
	Absolute
	AbsoluteX               // abs,X
	AbsoluteY               // abs,Y
	Indirect                // (abs) only used by JMP
	AbsoluteIndexedIndirect // (abs,X) only used by JMP on the 65C02
	ZeroPageRelative        // zpg,rel used by BBR and BBS

	numAddressingModes
)

type modeInfo struct {
	label    string
	bytes    int
	template string
}

// templates use explicit argument indexes:
//
//	1 mnemonic
//	2 first operand byte
//	3 second operand byte
//	4 branch target
var modes = [numAddressingModes]modeInfo{
	Implied:                 {"Implied", 1, "%[1]s"},
	Accumulator:             {"Accumulator", 1, "%[1]s A"},
	Relative:                {"Relative", 2, "%[1]s %[4]s"},
	Immediate:               {"Immediate", 2, "%[1]s #%[2]s"},
	ZeroPage:                {"ZeroPage", 2, "%[1]s %[2]s"},
	ZeroPageX:               {"ZeroPageX", 2, "%[1]s %[2]s,X"},
	ZeroPageY:               {"ZeroPageY", 2, "%[1]s %[2]s,Y"},
	IndexedIndirect:         {"IndexedIndirect", 2, "%[1]s (%[2]s,X)"},
	IndirectIndexed:         {"IndirectIndexed", 2, "%[1]s (%[2]s),Y"},
	ZeroPageIndirect:        {"ZeroPageIndirect", 2, "%[1]s (%[2]s)"},
	Absolute:                {"Absolute", 3, "%[1]s %[3]s%[2]s"},
	AbsoluteX:               {"AbsoluteX", 3, "%[1]s %[3]s%[2]s,X"},
	AbsoluteY:               {"AbsoluteY", 3, "%[1]s %[3]s%[2]s,Y"},
	Indirect:                {"Indirect", 3, "%[1]s (%[3]s%[2]s)"},
	AbsoluteIndexedIndirect: {"AbsoluteIndexedIndirect", 3, "%[1]s (%[3]s%[2]s,X)"},
	ZeroPageRelative:        {"ZeroPageRelative", 3, "%[1]s %[2]s,%[4]s"},
}

func (m AddressingMode) valid() bool {
	return m >= 0 && m < numAddressingModes
}

func (m AddressingMode) String() string {
	if !m.valid() {
		return "unknown addressing mode"
	}
	return modes[m].label
}

// Bytes returns the length of an instruction using the addressing mode,
// including the opcode.
func (m AddressingMode) Bytes() int {
	if !m.valid() {
		return 0
	}
	return modes[m].bytes
}

// Template returns the format string used to disassemble an instruction with
// the addressing mode. Arguments to the template are strings, in the order:
// mnemonic, first operand, second operand, branch target.
func (m AddressingMode) Template() string {
	if !m.valid() {
		return "%[1]s"
	}
	return modes[m].template
}

// IsRelative returns true if the addressing mode includes a branch
// displacement.
func (m AddressingMode) IsRelative() bool {
	return m == Relative || m == ZeroPageRelative
}
