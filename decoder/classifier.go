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
	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/instructions"
)

// Classifier decides the phase of each bus cycle.
type Classifier struct {
	phase bus.Phase

	// the definition of the most recently fetched opcode. nil if the opcode
	// is not known
	defn *instructions.Definition

	// number of operand bytes still to be fetched
	remaining int

	// number of write cycles since the most recent opcode fetch
	writes int

	acc accumulator
}

// NewClassifier is the preferred method of initialisation for the Classifier
// type.
func NewClassifier() *Classifier {
	cls := &Classifier{
		phase: bus.MemoryRead,
	}
	cls.acc.reset()
	return cls
}

// Phase returns the phase of the most recently classified cycle.
func (cls *Classifier) Phase() bus.Phase {
	return cls.phase
}

// Definition returns the definition of the most recently fetched opcode.
func (cls *Classifier) Definition() *instructions.Definition {
	return cls.defn
}

// Writes returns the number of write cycles since the most recent opcode
// fetch.
func (cls *Classifier) Writes() int {
	return cls.writes
}

// Classify the sample. The rules are applied in order and the first rule
// to match decides the phase.
func (cls *Classifier) Classify(s bus.Sample) bus.Phase {
	switch {
	case s.Sync:
		cls.fetch(s.Data)

	case !s.Read:
		cls.phase = bus.MemoryWrite
		cls.writes++

	case cls.phase == bus.Fetch && cls.remaining > 0:
		cls.phase = bus.Operand1
		cls.remaining--

	case cls.phase == bus.Operand1 && cls.remaining > 0:
		if cls.deferred() {
			// JSR reads the stack before pushing the return address
			cls.phase = bus.MemoryRead
		} else {
			cls.phase = bus.Operand2
			cls.remaining--
		}

	case cls.deferred() && cls.remaining > 0:
		cls.phase = bus.Operand2
		cls.remaining--

	default:
		cls.phase = bus.MemoryRead
		cls.acc.push(s.Data)
	}

	return cls.phase
}

func (cls *Classifier) fetch(opcode bus.Data) {
	cls.phase = bus.Fetch
	cls.writes = 0
	cls.acc.reset()

	if v, ok := opcode.Value(); ok {
		cls.defn = instructions.Lookup(v)
		cls.remaining = cls.defn.OperandCount()
	} else {
		cls.defn = nil
		cls.remaining = 0
	}
}

func (cls *Classifier) deferred() bool {
	return cls.defn != nil && cls.defn.Shape == instructions.DeferredOperand
}
