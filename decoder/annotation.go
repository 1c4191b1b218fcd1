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

import (
	"fmt"

	"github.com/jetsetilly/mos6502bus/bus"
)

// Category of an annotation.
type Category int

// List of valid Category values.
const (
	Data Category = iota
	Fetch
	Op1
	Op2
	MemRead
	MemWrite
	Instruction
	Registers

	numCategories
)

var categoryNames = [numCategories]string{
	Data:        "data",
	Fetch:       "fetch",
	Op1:         "op1",
	Op2:         "op2",
	MemRead:     "memrd",
	MemWrite:    "memwr",
	Instruction: "instr",
	Registers:   "regs",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "unknown category"
	}
	return categoryNames[c]
}

// Row returns the row that an annotation of the category is displayed in.
func (c Category) Row() Row {
	switch c {
	case Data:
		return RowDatabus
	case Fetch, Op1, Op2, MemRead, MemWrite:
		return RowCycle
	case Instruction:
		return RowInstructions
	}
	return RowRegisters
}

// PhaseCategory returns the annotation category for a cycle phase.
func PhaseCategory(phase bus.Phase) Category {
	switch phase {
	case bus.Fetch:
		return Fetch
	case bus.Operand1:
		return Op1
	case bus.Operand2:
		return Op2
	case bus.MemoryWrite:
		return MemWrite
	}
	return MemRead
}

// Row groups annotation categories for display.
type Row int

// List of valid Row values.
const (
	RowDatabus Row = iota
	RowCycle
	RowInstructions
	RowRegisters

	numRows
)

var rowNames = [numRows]string{
	RowDatabus:      "databus",
	RowCycle:        "cycle",
	RowInstructions: "instructions",
	RowRegisters:    "registers",
}

func (r Row) String() string {
	if r < 0 || r >= numRows {
		return "unknown row"
	}
	return rowNames[r]
}

// ParseRow is the inverse of Row.String().
func ParseRow(s string) (Row, bool) {
	for r, n := range rowNames {
		if n == s {
			return Row(r), true
		}
	}
	return RowDatabus, false
}

// Annotation covers the samples from Start up to but not including End.
type Annotation struct {
	Start    int64
	End      int64
	Category Category
	Text     string
}

func (a Annotation) String() string {
	return fmt.Sprintf("%d-%d %s: %s", a.Start, a.End, a.Category, a.Text)
}

// Sink receives annotations in the order in which they are created.
type Sink interface {
	Annotate(Annotation)
}

// SinkFunc is an adaptor that allows a function to be used as a Sink.
type SinkFunc func(Annotation)

// Annotate implements the Sink interface.
func (f SinkFunc) Annotate(a Annotation) {
	f(a)
}
