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
	"github.com/jetsetilly/mos6502bus/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/instructions"
)

// number of writes that indicate a hardware interrupt. the return address
// and the status register are pushed to the stack
const interruptWrites = 3

// Assembler collects the cycles of an instruction and tracks the program
// counter from one instruction to the next.
type Assembler struct {
	// the address of the next instruction to be fetched
	pc bus.Address

	// the instruction being assembled
	res execution.Result

	// an instruction has been fetched and not yet retired
	pending bool

	// timestamp of the most recent sample
	last int64
}

// NewAssembler is the preferred method of initialisation for the Assembler
// type. The address of the first instruction can be unknown.
func NewAssembler(pc bus.Address) *Assembler {
	return &Assembler{
		pc: pc,
	}
}

// PC returns the address of the next instruction.
func (asm *Assembler) PC() bus.Address {
	return asm.pc
}

// Pending returns true if an instruction is being assembled.
func (asm *Assembler) Pending() bool {
	return asm.pending
}

// Last returns the timestamp of the most recent sample.
func (asm *Assembler) Last() int64 {
	return asm.last
}

// Begin a new instruction. The sample is the opcode fetch.
func (asm *Assembler) Begin(s bus.Sample, defn *instructions.Definition) {
	asm.res.Reset()
	asm.res.Defn = defn
	asm.res.Address = asm.pc
	asm.res.Opcode = s.Data
	asm.res.Start = s.Timestamp
	asm.pending = true
}

// Record a classified cycle. Cycles before the first opcode fetch are not
// part of any instruction and are ignored.
func (asm *Assembler) Record(s bus.Sample, phase bus.Phase) {
	asm.last = s.Timestamp

	if !asm.pending {
		return
	}

	switch phase {
	case bus.Operand1:
		asm.res.Operand1 = s.Data
		asm.res.ByteCount++
	case bus.Operand2:
		asm.res.Operand2 = s.Data
		asm.res.ByteCount++
	}

	asm.res.Cycles = append(asm.res.Cycles, execution.Cycle{Phase: phase, Data: s.Data})
}

// Finish the instruction being assembled. The end timestamp is the first
// timestamp after the instruction. The returned Result is only valid until
// the next call to Begin().
func (asm *Assembler) Finish(end int64, acc accumulator) *execution.Result {
	res := &asm.res
	res.End = end
	res.Final = true
	res.Interrupt = isInterrupt(res)
	res.Next = asm.next(res, acc)

	asm.pc = res.Next
	asm.pending = false

	return res
}

// a BRK and a hardware interrupt both push three bytes to the stack. no
// other instruction writes three times
func isInterrupt(res *execution.Result) bool {
	return res.Defn != nil && !res.Opcode.Is(0x00) && res.WriteCount() == interruptWrites
}

// next returns the address of the instruction that follows
func (asm *Assembler) next(res *execution.Result, acc accumulator) bus.Address {
	if res.Interrupt {
		return acc.upper()
	}

	defn := res.Defn
	if defn == nil {
		return bus.UnknownAddress
	}

	switch defn.Flow {
	case instructions.ReturnInterrupt, instructions.Break, instructions.JumpIndirect:
		return acc.upper()

	case instructions.Jump, instructions.Call:
		return bus.AddressFromBytes(res.Operand1, res.Operand2)

	case instructions.Branch:
		if res.NumCycles() > 2 {
			return res.Address.Branch(2, res.Operand1)
		}

	case instructions.BranchZeroPage:
		if res.NumCycles() > 5 {
			return res.Address.Branch(3, res.Operand2)
		}

	case instructions.Return:
		return acc.lower().Add(1)
	}

	return res.Address.Add(defn.Bytes)
}
