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

import "fmt"

type widths struct {
	address   int
	bytecode  int
	operator  int
	operand   int
	cycles    int
	notes     int
	registers int
}

type format struct {
	address   string
	bytecode  string
	operator  string
	operand   string
	cycles    string
	notes     string
	registers string
}

type fields struct {
	widths widths
	fmt    format
}

// update width and formatting information for entry fields
func (fld *fields) update(e *Entry) {
	fld.widths.address = max(fld.widths.address, len(e.Address))
	fld.widths.bytecode = max(fld.widths.bytecode, len(e.Bytecode))
	fld.widths.operator = max(fld.widths.operator, len(e.Operator))
	fld.widths.operand = max(fld.widths.operand, len(e.Operand))
	fld.widths.cycles = max(fld.widths.cycles, len(e.Cycles))
	fld.widths.notes = max(fld.widths.notes, len(e.Notes))
	fld.widths.registers = max(fld.widths.registers, len(e.Registers))

	fld.fmt.address = fmt.Sprintf("%%-%ds", fld.widths.address)
	fld.fmt.bytecode = fmt.Sprintf("%%-%ds", fld.widths.bytecode)
	fld.fmt.operator = fmt.Sprintf("%%-%ds", fld.widths.operator)
	fld.fmt.operand = fmt.Sprintf("%%-%ds", fld.widths.operand)
	fld.fmt.cycles = fmt.Sprintf("%%%ds", fld.widths.cycles)
	fld.fmt.notes = fmt.Sprintf("%%-%ds", fld.widths.notes)
	fld.fmt.registers = fmt.Sprintf("%%-%ds", fld.widths.registers)
}

// Field identifies which part of the disassembly entry is of interest.
type Field int

// List of valid fields.
const (
	FldAddress Field = iota
	FldBytecode
	FldOperator
	FldOperand
	FldCycles
	FldNotes
	FldRegisters
)

// GetField returns the formatted field from the specified Entry. The field is
// padded to the width of the widest entry in the listing.
func (l *Listing) GetField(field Field, e *Entry) string {
	switch field {
	case FldAddress:
		return fmt.Sprintf(l.fields.fmt.address, e.Address)
	case FldBytecode:
		return fmt.Sprintf(l.fields.fmt.bytecode, e.Bytecode)
	case FldOperator:
		return fmt.Sprintf(l.fields.fmt.operator, e.Operator)
	case FldOperand:
		return fmt.Sprintf(l.fields.fmt.operand, e.Operand)
	case FldCycles:
		return fmt.Sprintf(l.fields.fmt.cycles, e.Cycles)
	case FldNotes:
		return fmt.Sprintf(l.fields.fmt.notes, e.Notes)
	case FldRegisters:
		return fmt.Sprintf(l.fields.fmt.registers, e.Registers)
	}
	return ""
}
