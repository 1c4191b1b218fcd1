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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/disassembly"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502bus/test"
)

// result builds a retired instruction at the address with the operands and
// the number of cycles
func result(address bus.Address, opcode uint8, operands []bus.Data, cycles int) *execution.Result {
	res := &execution.Result{
		Defn:    instructions.Lookup(opcode),
		Address: address,
		Opcode:  bus.Known(opcode),
		Final:   true,
	}

	res.Cycles = append(res.Cycles, execution.Cycle{Phase: bus.Fetch, Data: res.Opcode})
	for i, o := range operands {
		switch i {
		case 0:
			res.Operand1 = o
			res.Cycles = append(res.Cycles, execution.Cycle{Phase: bus.Operand1, Data: o})
		case 1:
			res.Operand2 = o
			res.Cycles = append(res.Cycles, execution.Cycle{Phase: bus.Operand2, Data: o})
		}
		res.ByteCount++
	}
	for len(res.Cycles) < cycles {
		res.Cycles = append(res.Cycles, execution.Cycle{Phase: bus.MemoryRead, Data: bus.Known(0x00)})
	}

	res.Start = 100
	res.End = res.Start + int64(len(res.Cycles))

	return res
}

func known(v ...uint8) []bus.Data {
	d := make([]bus.Data, len(v))
	for i := range v {
		d[i] = bus.Known(v[i])
	}
	return d
}

func TestFormat(t *testing.T) {
	pc := bus.KnownAddress(0x1000)

	res := result(pc, 0xa9, known(0x42), 2)
	test.ExpectEquality(t, disassembly.Format(res), "1000 LDA #42")

	res = result(pc, 0xa5, known(0x8f), 3)
	test.ExpectEquality(t, disassembly.Format(res), "1000 LDA 8F")

	res = result(bus.UnknownAddress, 0x4c, known(0x00, 0x20), 3)
	test.ExpectEquality(t, disassembly.Format(res), "???? JMP 2000")

	res = result(pc, 0x6c, known(0xfc, 0xff), 5)
	test.ExpectEquality(t, disassembly.Format(res), "1000 JMP (FFFC)")

	res = result(pc, 0xea, nil, 2)
	test.ExpectEquality(t, disassembly.Format(res), "1000 NOP")

	res = result(pc, 0xa9, []bus.Data{bus.Unknown}, 2)
	test.ExpectEquality(t, disassembly.Format(res), "1000 LDA #??")
}

func TestBranchFormat(t *testing.T) {
	pc := bus.KnownAddress(0x1000)

	res := result(pc, 0xd0, known(0xfe), 3)
	test.ExpectEquality(t, disassembly.Format(res), "1000 BNE 1000")
	taken, ok := disassembly.BranchTaken(res)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, taken)

	res = result(pc, 0xd0, known(0x10), 2)
	test.ExpectEquality(t, disassembly.Format(res), "1000 BNE 1012")
	taken, ok = disassembly.BranchTaken(res)
	test.ExpectSuccess(t, ok)
	test.ExpectFailure(t, taken)

	// branch target can't be known if the address of the branch isn't known
	res = result(bus.UnknownAddress, 0xd0, known(0x10), 2)
	test.ExpectEquality(t, disassembly.Format(res), "???? BNE ????")

	// zero page relative
	res = result(pc, 0x0f, known(0x10, 0x05), 6)
	test.ExpectEquality(t, disassembly.Format(res), "1000 BBR0 10,1008")
	taken, ok = disassembly.BranchTaken(res)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, taken)

	// not a branch
	res = result(pc, 0xea, nil, 2)
	_, ok = disassembly.BranchTaken(res)
	test.ExpectFailure(t, ok)
}

func TestFormatSpecial(t *testing.T) {
	res := result(bus.KnownAddress(0x1234), 0xa9, known(0x42), 7)
	res.Interrupt = true
	test.ExpectEquality(t, disassembly.Format(res), "1234 INTERRUPT")

	res = &execution.Result{
		Address: bus.UnknownAddress,
		Opcode:  bus.Unknown,
	}
	test.ExpectEquality(t, disassembly.Format(res), "???? ???")
	test.ExpectEquality(t, disassembly.Operand(res), "")
}

func TestEntry(t *testing.T) {
	res := result(bus.KnownAddress(0x1000), 0x4c, known(0x00, 0x20), 3)
	e := disassembly.NewEntry(res, "")
	test.ExpectEquality(t, e.Address, "1000")
	test.ExpectEquality(t, e.Bytecode, "4C 00 20")
	test.ExpectEquality(t, e.Operator, "JMP")
	test.ExpectEquality(t, e.Operand, "2000")
	test.ExpectEquality(t, e.Cycles, "3")
	test.ExpectEquality(t, e.Notes, "")
	test.ExpectEquality(t, e.String(), "1000 JMP 2000")

	// the entry is not affected by changes to the original result
	res.Cycles[0].Data = bus.Unknown
	test.ExpectEquality(t, e.Result.Cycles[0].Data, bus.Known(0x4c))

	// truncated instruction
	res = result(bus.KnownAddress(0x1000), 0x4c, known(0x00), 2)
	e = disassembly.NewEntry(res, "")
	test.ExpectInequality(t, e.Notes, "")

	res = result(bus.KnownAddress(0x1000), 0xd0, known(0x00), 2)
	e = disassembly.NewEntry(res, "")
	test.ExpectEquality(t, e.Notes, "branch not taken")
}

func TestListing(t *testing.T) {
	l := disassembly.NewListing()
	l.Add(result(bus.KnownAddress(0x1000), 0xa9, known(0x42), 2), "A=42")
	l.Add(result(bus.KnownAddress(0x1002), 0x4c, known(0x00, 0x20), 3), "A=42")
	test.ExpectEquality(t, l.Len(), 2)
	test.ExpectEquality(t, l.Entry(2) == nil, true)

	w := &test.Writer{}

	err := l.Write(w, disassembly.WriteAttr{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "1000 LDA #42\n1002 JMP 2000\n")

	w.Clear()
	err = l.Write(w, disassembly.WriteAttr{ByteCode: true, Cycles: true})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "1000 A9 42    LDA #42  2\n1002 4C 00 20 JMP 2000 3\n")

	w.Clear()
	err = l.Write(w, disassembly.WriteAttr{Registers: true})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "1000 LDA #42  A=42\n1002 JMP 2000 A=42\n")
}
