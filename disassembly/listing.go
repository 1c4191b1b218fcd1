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
	"io"
	"strings"

	"github.com/jetsetilly/mos6502bus/curated"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/execution"
)

// Listing is a list of disassembled instructions in the order in which they
// were retired.
type Listing struct {
	entries []*Entry
	fields  fields
}

// NewListing is the preferred method of initialisation for the Listing type.
func NewListing() *Listing {
	return &Listing{}
}

// Add a retired instruction to the listing.
func (l *Listing) Add(res *execution.Result, registers string) *Entry {
	e := NewEntry(res, registers)
	l.entries = append(l.entries, e)
	l.fields.update(e)
	return e
}

// Len returns the number of entries in the listing.
func (l *Listing) Len() int {
	return len(l.entries)
}

// Entry returns the entry at index i. Returns nil if there is no such entry.
func (l *Listing) Entry(i int) *Entry {
	if i < 0 || i >= len(l.entries) {
		return nil
	}
	return l.entries[i]
}

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode  bool
	Cycles    bool
	Notes     bool
	Registers bool
}

// Write the entire listing to io.Writer.
func (l *Listing) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range l.entries {
		if err := l.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (l *Listing) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	s := strings.Builder{}

	s.WriteString(l.GetField(FldAddress, e))
	s.WriteString(" ")
	if attr.ByteCode {
		s.WriteString(l.GetField(FldBytecode, e))
		s.WriteString(" ")
	}
	s.WriteString(l.GetField(FldOperator, e))
	s.WriteString(" ")
	s.WriteString(l.GetField(FldOperand, e))
	if attr.Cycles {
		s.WriteString(" ")
		s.WriteString(l.GetField(FldCycles, e))
	}
	if attr.Registers {
		s.WriteString(" ")
		s.WriteString(l.GetField(FldRegisters, e))
	}
	if attr.Notes && e.Notes != "" {
		s.WriteString(" ")
		s.WriteString(l.GetField(FldNotes, e))
	}

	_, err := fmt.Fprintln(output, strings.TrimRight(s.String(), " "))
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	return nil
}
