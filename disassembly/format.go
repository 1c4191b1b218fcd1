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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/instructions"
)

// Format returns the instruction as a single line of text, prefixed with the
// address of the instruction. An interrupt is shown with the address of the
// instruction that was interrupted.
func Format(res *execution.Result) string {
	if res.Interrupt {
		return fmt.Sprintf("%s INTERRUPT", res.Address)
	}
	return fmt.Sprintf("%s %s", res.Address, Instruction(res))
}

// Instruction returns the mnemonic and operands of the instruction.
func Instruction(res *execution.Result) string {
	if res.Defn == nil {
		return res.Mnemonic()
	}
	return fill(res, res.Defn.Mnemonic)
}

// Operand returns the operand part of the instruction. The empty string is
// returned for implied instructions.
func Operand(res *execution.Result) string {
	if res.Defn == nil {
		return ""
	}
	return strings.TrimSpace(fill(res, ""))
}

func fill(res *execution.Result, mnemonic string) string {
	return fmt.Sprintf(res.Defn.AddressingMode.Template(), mnemonic,
		res.Operand1.Hex(), res.Operand2.Hex(), Target(res))
}

// Target returns the destination of a branch instruction. The address is
// unknown if the instruction is not a branch or if the address of the
// instruction is unknown.
func Target(res *execution.Result) bus.Address {
	if res.Defn == nil {
		return bus.UnknownAddress
	}

	switch res.Defn.AddressingMode {
	case instructions.Relative:
		return res.Address.Branch(2, res.Operand1)
	case instructions.ZeroPageRelative:
		return res.Address.Branch(3, res.Operand2)
	}

	return bus.UnknownAddress
}

// BranchTaken returns true if the number of cycles taken by a branch
// instruction shows that the branch succeeded. The second return value is
// false if the instruction is not a branch.
func BranchTaken(res *execution.Result) (bool, bool) {
	if res.Defn == nil || res.Interrupt {
		return false, false
	}

	switch res.Defn.Flow {
	case instructions.Branch:
		return res.NumCycles() > 2, true
	case instructions.BranchZeroPage:
		return res.NumCycles() > 5, true
	}

	return false, false
}
