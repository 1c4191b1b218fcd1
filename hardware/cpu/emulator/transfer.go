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
	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/registers"
)

func (em *Emulator) transfer(op instructions.Operation, v bus.Data) {
	switch op {
	case instructions.NoOperation:

	case instructions.OpADC:
		em.add(v, false)
	case instructions.OpSBC:
		em.add(v, true)

	case instructions.OpAND:
		em.logical(v, func(a, b uint8) uint8 { return a & b })
	case instructions.OpEOR:
		em.logical(v, func(a, b uint8) uint8 { return a ^ b })
	case instructions.OpORA:
		em.logical(v, func(a, b uint8) uint8 { return a | b })

	case instructions.OpASLA:
		em.A.Load(em.shift(em.A.Data(), shiftLeft, false))
	case instructions.OpASL:
		em.shift(v, shiftLeft, false)
	case instructions.OpLSRA:
		em.A.Load(em.shift(em.A.Data(), shiftRight, false))
	case instructions.OpLSR:
		em.shift(v, shiftRight, false)
	case instructions.OpROLA:
		em.A.Load(em.shift(em.A.Data(), shiftLeft, true))
	case instructions.OpROL:
		em.shift(v, shiftLeft, true)
	case instructions.OpRORA:
		em.A.Load(em.shift(em.A.Data(), shiftRight, true))
	case instructions.OpROR:
		em.shift(v, shiftRight, true)

	case instructions.OpBIT:
		em.Status.Negative = registers.FlagFromBit(v, 7)
		em.Status.Overflow = registers.FlagFromBit(v, 6)
		em.Status.Zero = em.test(v)
	case instructions.OpBITImmediate, instructions.OpTSBTRB:
		em.Status.Zero = em.test(v)

	case instructions.OpBRK:
		em.Interrupt(v)

	case instructions.OpCLC:
		em.Status.Carry = registers.Clear
	case instructions.OpCLD:
		em.Status.DecimalMode = registers.Clear
	case instructions.OpCLI:
		em.Status.InterruptDisable = registers.Clear
	case instructions.OpCLV:
		em.Status.Overflow = registers.Clear
	case instructions.OpSEC:
		em.Status.Carry = registers.Set
	case instructions.OpSED:
		em.Status.DecimalMode = registers.Set
	case instructions.OpSEI:
		em.Status.InterruptDisable = registers.Set

	case instructions.OpCMP:
		em.compare(em.A.Data(), v)
	case instructions.OpCPX:
		em.compare(em.X.Data(), v)
	case instructions.OpCPY:
		em.compare(em.Y.Data(), v)

	case instructions.OpDECA:
		em.increment(&em.A, -1)
	case instructions.OpDEX:
		em.increment(&em.X, -1)
	case instructions.OpDEY:
		em.increment(&em.Y, -1)
	case instructions.OpINCA:
		em.increment(&em.A, 1)
	case instructions.OpINX:
		em.increment(&em.X, 1)
	case instructions.OpINY:
		em.increment(&em.Y, 1)
	case instructions.OpDEC:
		em.Status.SetNZ(offset(v, -1))
	case instructions.OpINC:
		em.Status.SetNZ(offset(v, 1))

	case instructions.OpJSR:
		em.SP.Add(-2)
	case instructions.OpRTS:
		em.SP.Add(2)
	case instructions.OpRTI:
		em.Status.Load(v)
		em.SP.Add(3)

	case instructions.OpLDA:
		em.load(&em.A, v)
	case instructions.OpLDX:
		em.load(&em.X, v)
	case instructions.OpLDY:
		em.load(&em.Y, v)

	case instructions.OpSTA:
		em.store(&em.A, v)
	case instructions.OpSTX:
		em.store(&em.X, v)
	case instructions.OpSTY:
		em.store(&em.Y, v)

	case instructions.OpPHA:
		em.SP.Add(-1)
		em.store(&em.A, v)
	case instructions.OpPHX:
		em.SP.Add(-1)
		em.store(&em.X, v)
	case instructions.OpPHY:
		em.SP.Add(-1)
		em.store(&em.Y, v)
	case instructions.OpPHP:
		em.SP.Add(-1)
		em.checkStatus(v)
		if v.IsKnown() {
			em.Status.Load(v)
		}

	case instructions.OpPLA:
		em.load(&em.A, v)
		em.SP.Add(1)
	case instructions.OpPLX:
		em.load(&em.X, v)
		em.SP.Add(1)
	case instructions.OpPLY:
		em.load(&em.Y, v)
		em.SP.Add(1)
	case instructions.OpPLP:
		em.Status.Load(v)
		em.SP.Add(1)

	case instructions.OpTAX:
		em.load(&em.X, em.A.Data())
	case instructions.OpTAY:
		em.load(&em.Y, em.A.Data())
	case instructions.OpTXA:
		em.load(&em.A, em.X.Data())
	case instructions.OpTYA:
		em.load(&em.A, em.Y.Data())
	case instructions.OpTSX:
		em.load(&em.X, em.SP.Data())
	case instructions.OpTXS:
		em.SP.Load(em.X.Data())

	default:
		panic("emulator: unhandled operation " + op.String())
	}
}

// load value into register and set the N and Z flags
func (em *Emulator) load(r *registers.Register, v bus.Data) {
	r.Load(v)
	em.Status.SetNZ(v)
}

func (em *Emulator) increment(r *registers.Register, n int) {
	r.Add(n)
	em.Status.SetNZ(r.Data())
}

// offset adds n to a known value
func offset(v bus.Data, n int) bus.Data {
	if b, ok := v.Value(); ok {
		return bus.Known(uint8(int(b) + n))
	}
	return bus.Unknown
}

func (em *Emulator) logical(v bus.Data, f func(a, b uint8) uint8) {
	a, aok := em.A.Data().Value()
	b, bok := v.Value()
	if aok && bok {
		em.load(&em.A, bus.Known(f(a, b)))
		return
	}
	em.A.Forget()
	em.Status.ForgetNZ()
}

// test returns the state of the zero flag for the BIT family of instructions
func (em *Emulator) test(v bus.Data) registers.Flag {
	a, aok := em.A.Data().Value()
	b, bok := v.Value()
	if aok && bok {
		return registers.FlagFrom(a&b == 0)
	}
	return registers.UnknownFlag
}

func (em *Emulator) compare(r bus.Data, v bus.Data) {
	a, aok := r.Value()
	b, bok := v.Value()
	if aok && bok {
		em.Status.Carry = registers.FlagFrom(a >= b)
		em.Status.SetNZ(bus.Known(a - b))
		return
	}
	em.Status.ForgetNZC()
}

// add implements ADC and SBC. the overflow flag is not modelled and decimal
// mode arithmetic results in unknown values
func (em *Emulator) add(v bus.Data, subtract bool) {
	em.Status.Overflow = registers.UnknownFlag

	if decimal, ok := em.Status.DecimalMode.Value(); ok && decimal {
		em.A.Forget()
		em.Status.ForgetNZC()
		return
	}

	a, aok := em.A.Data().Value()
	b, bok := v.Value()
	c, cok := em.Status.Carry.Bit()
	if !aok || !bok || !cok {
		em.A.Forget()
		em.Status.ForgetNZC()
		return
	}

	if subtract {
		b = ^b
	}

	r := uint16(a) + uint16(b) + uint16(c)
	em.Status.Carry = registers.FlagFrom(r > 0xff)
	em.load(&em.A, bus.Known(uint8(r)))
}

type shiftDirection int

const (
	shiftLeft shiftDirection = iota
	shiftRight
)

// shift implements the shift and rotate instructions. the result is returned
// and the N, Z and C flags are set
func (em *Emulator) shift(v bus.Data, dir shiftDirection, rotate bool) bus.Data {
	b, ok := v.Value()

	var in uint8
	if rotate {
		var cok bool
		in, cok = em.Status.Carry.Bit()
		ok = ok && cok
	}

	if !ok {
		em.Status.ForgetNZC()
		return bus.Unknown
	}

	var r uint8
	switch dir {
	case shiftLeft:
		em.Status.Carry = registers.FlagFrom(b&0x80 == 0x80)
		r = b<<1 | in
	case shiftRight:
		em.Status.Carry = registers.FlagFrom(b&0x01 == 0x01)
		r = b>>1 | in<<7
	}

	em.Status.SetNZ(bus.Known(r))
	return bus.Known(r)
}
