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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/instructions"
)

// Cycle is a single classified bus cycle of an instruction.
type Cycle struct {
	Phase bus.Phase
	Data  bus.Data
}

// Result records the bus activity of a single instruction, from the opcode
// fetch to the cycle before the next opcode fetch.
type Result struct {
	// the definition of the opcode. nil if the opcode byte is unknown
	Defn *instructions.Definition

	// the address of the opcode. may be unknown
	Address bus.Address

	// the opcode and operand bytes. operand bytes not captured are unknown
	Opcode   bus.Data
	Operand1 bus.Data
	Operand2 bus.Data

	// the number of operand bytes captured
	ByteCount int

	// every cycle of the instruction including the opcode fetch. the length
	// of the slice is the number of cycles taken by the instruction
	Cycles []Cycle

	// the timestamps of the opcode fetch and of the cycle after the final
	// cycle of the instruction
	Start int64
	End   int64

	// the instruction was reclassified as a hardware interrupt
	Interrupt bool

	// the address of the next instruction as determined by the PC tracker
	Next bus.Address

	// whether this data has been finalised
	Final bool
}

// Reset the Result for a new instruction.
func (r *Result) Reset() {
	*r = Result{
		Cycles: r.Cycles[:0],
	}
}

// Mnemonic returns the mnemonic for the instruction or "???" if the opcode is
// unknown.
func (r Result) Mnemonic() string {
	if r.Interrupt {
		return "INTERRUPT"
	}
	if r.Defn == nil {
		return "???"
	}
	return r.Defn.Mnemonic
}

// NumCycles returns the number of bus cycles taken by the instruction.
func (r Result) NumCycles() int {
	return len(r.Cycles)
}

// data returns the data values of all cycles of the phase, in order
func (r Result) data(phase bus.Phase) []bus.Data {
	var d []bus.Data
	for _, c := range r.Cycles {
		if c.Phase == phase {
			d = append(d, c.Data)
		}
	}
	return d
}

// Reads returns the values of every MemoryRead cycle.
func (r Result) Reads() []bus.Data {
	return r.data(bus.MemoryRead)
}

// Writes returns the values of every MemoryWrite cycle.
func (r Result) Writes() []bus.Data {
	return r.data(bus.MemoryWrite)
}

// Write returns the value of the nth MemoryWrite cycle. Returns an unknown
// value if there are not enough write cycles.
func (r Result) Write(n int) bus.Data {
	w := r.Writes()
	if n < 0 || n >= len(w) {
		return bus.Unknown
	}
	return w[n]
}

// ReadFromEnd returns the value of the nth last MemoryRead cycle, counting
// from one. Returns an unknown value if there are not enough read cycles.
func (r Result) ReadFromEnd(n int) bus.Data {
	rd := r.Reads()
	if n < 1 || n > len(rd) {
		return bus.Unknown
	}
	return rd[len(rd)-n]
}

// LastReadBeforeWrite returns the value of the last MemoryRead cycle before
// the first MemoryWrite cycle. This is the value being modified by a read
// modify write instruction.
func (r Result) LastReadBeforeWrite() bus.Data {
	d := bus.Unknown
	for _, c := range r.Cycles {
		switch c.Phase {
		case bus.MemoryWrite:
			return d
		case bus.MemoryRead:
			d = c.Data
		}
	}
	return d
}

// WriteCount returns the number of MemoryWrite cycles.
func (r Result) WriteCount() int {
	n := 0
	for _, c := range r.Cycles {
		if c.Phase == bus.MemoryWrite {
			n++
		}
	}
	return n
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s", r.Address, r.Opcode.Hex()))
	if r.ByteCount > 0 {
		s.WriteString(fmt.Sprintf(" %s", r.Operand1.Hex()))
	}
	if r.ByteCount > 1 {
		s.WriteString(fmt.Sprintf(" %s", r.Operand2.Hex()))
	}
	s.WriteString(fmt.Sprintf(" %s [%d]", r.Mnemonic(), r.NumCycles()))
	for _, c := range r.Cycles {
		s.WriteString(fmt.Sprintf(" %s:%s", c.Phase, c.Data))
	}
	return s.String()
}
