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

import (
	"fmt"

	"github.com/jetsetilly/mos6502bus/curated"
)

// IncompleteTable is the error pattern used when the definitions table does
// not cover every opcode.
const IncompleteTable = "instructions: table is incomplete: %v"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	AddressingMode AddressingMode
	Effect         Category
	Shape          Shape
	Flow           FlowControl
	Operation      Operation
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s effect=%s shape=%s flow=%s op=%s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.AddressingMode,
		defn.Effect, defn.Shape, defn.Flow, defn.Operation)
}

// IsBranch returns true if instruction is a conditional branch of either
// form.
func (defn Definition) IsBranch() bool {
	return defn.Flow == Branch || defn.Flow == BranchZeroPage
}

// OperandCount is the number of bytes following the opcode.
func (defn Definition) OperandCount() int {
	return defn.Bytes - 1
}

// the table is indexed by opcode. built once from the generated table and
// never changed
var definitions [256]Definition

func init() {
	var err error
	definitions, err = build(definitionsTable())
	if err != nil {
		panic(err)
	}
}

func build(table []Definition) ([256]Definition, error) {
	var defs [256]Definition
	var seen [256]bool

	for _, defn := range table {
		if seen[defn.OpCode] {
			return defs, curated.Errorf(IncompleteTable, fmt.Sprintf("duplicate opcode %#02x", defn.OpCode))
		}
		if defn.Bytes != defn.AddressingMode.Bytes() {
			return defs, curated.Errorf(IncompleteTable, fmt.Sprintf("wrong length for opcode %#02x", defn.OpCode))
		}
		seen[defn.OpCode] = true
		defs[defn.OpCode] = defn
	}

	for op, ok := range seen {
		if !ok {
			return defs, curated.Errorf(IncompleteTable, fmt.Sprintf("missing opcode %#02x", op))
		}
	}

	return defs, nil
}

// Lookup returns the definition for the opcode. The table is total over all
// opcode values so there is no failure case.
func Lookup(opcode uint8) *Definition {
	return &definitions[opcode]
}

// Definitions returns a copy of the entire table, in opcode order.
func Definitions() []Definition {
	d := make([]Definition, len(definitions))
	copy(d, definitions[:])
	return d
}
