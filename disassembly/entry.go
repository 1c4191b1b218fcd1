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
	"slices"
	"strings"

	"github.com/jetsetilly/mos6502bus/hardware/cpu/execution"
)

// Entry is a disassembled instruction. The fields are string representations
// of the information in the execution.Result.
type Entry struct {
	// copy of the retired instruction
	Result execution.Result

	Address   string
	Bytecode  string
	Operator  string
	Operand   string
	Cycles    string
	Notes     string
	Registers string
}

// NewEntry creates a new Entry from a retired instruction. The registers
// string is the state of the emulated registers after the instruction, if
// available.
func NewEntry(res *execution.Result, registers string) *Entry {
	e := &Entry{
		Result:    *res,
		Address:   res.Address.String(),
		Operator:  res.Mnemonic(),
		Cycles:    fmt.Sprintf("%d", res.NumCycles()),
		Registers: registers,
	}

	// the Cycles slice in the result is reused by the decoder
	e.Result.Cycles = slices.Clone(res.Cycles)

	if !res.Interrupt {
		e.Operand = Operand(res)
	}

	b := strings.Builder{}
	b.WriteString(res.Opcode.Hex())
	if res.ByteCount > 0 {
		b.WriteString(" ")
		b.WriteString(res.Operand1.Hex())
	}
	if res.ByteCount > 1 {
		b.WriteString(" ")
		b.WriteString(res.Operand2.Hex())
	}
	e.Bytecode = b.String()

	e.Notes = notes(res)

	return e
}

func (e *Entry) String() string {
	return Format(&e.Result)
}

func notes(res *execution.Result) string {
	if res.Interrupt {
		return "interrupted"
	}

	if res.Defn == nil {
		return "unknown opcode"
	}

	if err := res.IsValid(); err != nil {
		return strings.TrimPrefix(err.Error(), "execution: ")
	}

	if taken, ok := BranchTaken(res); ok {
		if taken {
			return "branch taken"
		}
		return "branch not taken"
	}

	return ""
}
