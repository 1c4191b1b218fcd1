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

package emulator

import (
	"fmt"

	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/registers"
)

// Emulator models the registers of the CPU.
type Emulator struct {
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// a store or push has contradicted the model since the last call to
	// Snapshot()
	failed bool
}

// NewEmulator is the preferred method of initialisation for the Emulator
// type. All registers and flags are unknown.
func NewEmulator() *Emulator {
	em := &Emulator{}
	em.Reset()
	return em
}

// Reset forgets the value of every register and flag.
func (em *Emulator) Reset() {
	em.A = registers.NewRegister("A")
	em.X = registers.NewRegister("X")
	em.Y = registers.NewRegister("Y")
	em.SP = registers.NewRegister("SP")
	em.Status = registers.NewStatusRegister()
	em.failed = false
}

func (em *Emulator) String() string {
	return fmt.Sprintf("%s %s %s %s %s", em.A, em.X, em.Y, em.SP, em.Status)
}

// Failed returns true if the model has been contradicted since the last call
// to Snapshot().
func (em *Emulator) Failed() bool {
	return em.failed
}

// Snapshot returns the state of the model. If the model has been
// contradicted since the last call to Snapshot() then the string is suffixed
// with "prediction failed". The failure flag is cleared.
func (em *Emulator) Snapshot() string {
	s := em.String()
	if em.failed {
		s = fmt.Sprintf("%s prediction failed", s)
	}
	em.failed = false
	return s
}

// Operand selects the value from the bus activity of an instruction that the
// transfer function of the instruction operates on.
func Operand(res *execution.Result) bus.Data {
	if res.Interrupt {
		return res.Write(2)
	}

	defn := res.Defn
	if defn == nil {
		return bus.Unknown
	}

	switch {
	case defn.Flow == instructions.Break:
		// the pushed status register
		return res.Write(2)
	case defn.Flow == instructions.ReturnInterrupt:
		// the pulled status register. followed by the return address
		return res.ReadFromEnd(3)
	case defn.Shape == instructions.EarlyWrite:
		return res.Write(0)
	case defn.AddressingMode == instructions.Immediate:
		return res.Operand1
	case defn.Effect == instructions.Modify:
		return res.LastReadBeforeWrite()
	}

	return res.ReadFromEnd(1)
}

// Execute applies the effect of the instruction to the model.
func (em *Emulator) Execute(res *execution.Result) {
	if res.Interrupt {
		em.Interrupt(Operand(res))
		return
	}

	// without the opcode nothing can be assumed about the effect of the
	// instruction
	if res.Defn == nil {
		em.Reset()
		return
	}

	em.transfer(res.Defn.Operation, Operand(res))
}

// Interrupt applies the effect of a hardware interrupt or BRK to the model.
// The value is the status register as pushed to the stack.
func (em *Emulator) Interrupt(status bus.Data) {
	em.SP.Add(-3)
	em.checkStatus(status)
	em.Status.Load(status)
	em.Status.InterruptDisable = registers.Set
	em.Status.DecimalMode = registers.Clear
}

// store checks a register against the value written to the bus
func (em *Emulator) store(r *registers.Register, v bus.Data) {
	if !r.Check(v) {
		em.failed = true
	}
}

// checkStatus checks the status register against the value written to the
// bus
func (em *Emulator) checkStatus(v bus.Data) {
	if !em.Status.Check(v) {
		em.failed = true
	}
}
