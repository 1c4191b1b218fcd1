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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502bus/test"
)

// a read-modify-write instruction on the NMOS 6502 writes the unmodified
// value before writing the modified value
func incZeroPage() execution.Result {
	return execution.Result{
		Defn:      instructions.Lookup(0xe6),
		Address:   bus.KnownAddress(0x0200),
		Opcode:    bus.Known(0xe6),
		Operand1:  bus.Known(0x80),
		ByteCount: 1,
		Cycles: []execution.Cycle{
			{Phase: bus.Fetch, Data: bus.Known(0xe6)},
			{Phase: bus.Operand1, Data: bus.Known(0x80)},
			{Phase: bus.MemoryRead, Data: bus.Known(0x41)},
			{Phase: bus.MemoryWrite, Data: bus.Known(0x41)},
			{Phase: bus.MemoryWrite, Data: bus.Known(0x42)},
		},
		Start: 10,
		End:   15,
		Final: true,
	}
}

func TestBusRecord(t *testing.T) {
	r := incZeroPage()
	test.ExpectEquality(t, r.NumCycles(), 5)
	test.ExpectEquality(t, r.WriteCount(), 2)
	test.ExpectEquality(t, len(r.Reads()), 1)
	test.ExpectEquality(t, r.LastReadBeforeWrite(), bus.Known(0x41))
	test.ExpectEquality(t, r.Write(1), bus.Known(0x42))
	test.ExpectEquality(t, r.Write(2), bus.Unknown)
	test.ExpectEquality(t, r.ReadFromEnd(1), bus.Known(0x41))
	test.ExpectEquality(t, r.ReadFromEnd(2), bus.Unknown)
	test.ExpectEquality(t, r.Mnemonic(), "INC")
}

func TestValidity(t *testing.T) {
	r := incZeroPage()
	test.ExpectSuccess(t, r.IsValid())

	r.Final = false
	test.ExpectFailure(t, r.IsValid())

	// truncated instruction
	r = incZeroPage()
	r.ByteCount = 0
	test.ExpectFailure(t, r.IsValid())

	// unknown opcode
	r = incZeroPage()
	r.Defn = nil
	test.ExpectFailure(t, r.IsValid())
	test.ExpectEquality(t, r.Mnemonic(), "???")

	// an interrupt must have exactly three writes
	r = incZeroPage()
	r.Interrupt = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = append(r.Cycles, execution.Cycle{Phase: bus.MemoryWrite, Data: bus.Known(0x30)})
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.Mnemonic(), "INTERRUPT")
}

func TestReset(t *testing.T) {
	r := incZeroPage()
	r.Reset()
	test.ExpectEquality(t, r.NumCycles(), 0)
	test.ExpectEquality(t, r.Final, false)
	test.ExpectEquality(t, r.Address, bus.UnknownAddress)
}
