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
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/capture"
	"github.com/jetsetilly/mos6502bus/curated"
	"github.com/jetsetilly/mos6502bus/disassembly"
	"github.com/jetsetilly/mos6502bus/environment"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/emulator"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502bus/logger"
)

// RetireFunc is called with every retired instruction. The Result is only
// valid for the duration of the call.
type RetireFunc func(res *execution.Result, registers string)

// Stats about the decoding so far.
type Stats struct {
	Samples      int
	Instructions int
	Interrupts   int
	Unknown      int
	Failures     int
}

func (st Stats) String() string {
	return fmt.Sprintf("%d samples, %d instructions, %d interrupts, %d unknown opcodes, %d prediction failures",
		st.Samples, st.Instructions, st.Interrupts, st.Unknown, st.Failures)
}

// Decoder turns bus samples into annotations.
type Decoder struct {
	env *environment.Environment

	cls *Classifier
	asm *Assembler

	// nil if register emulation is disabled
	em *emulator.Emulator

	// emit register annotations
	registers bool

	retire RetireFunc

	stats Stats
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// Emulation and the start address are taken from the preferences in the
// environment.
func NewDecoder(env *environment.Environment) *Decoder {
	pc := bus.UnknownAddress
	if v := env.Prefs.StartPC.Get().(int); v >= 0 {
		pc = bus.KnownAddress(uint16(v))
	}

	dec := &Decoder{
		env:       env,
		cls:       NewClassifier(),
		asm:       NewAssembler(pc),
		registers: env.Prefs.Registers.Get().(bool),
	}

	if env.Prefs.Emulate.Get().(bool) {
		dec.em = emulator.NewEmulator()
	}

	return dec
}

// SetRetire sets the function to be called when an instruction is retired.
func (dec *Decoder) SetRetire(f RetireFunc) {
	dec.retire = f
}

// Emulator returns the register emulator. Returns nil if emulation is not
// enabled.
func (dec *Decoder) Emulator() *emulator.Emulator {
	return dec.em
}

// PC returns the address of the next instruction.
func (dec *Decoder) PC() bus.Address {
	return dec.asm.PC()
}

// Stats returns the statistics for the decoding so far.
func (dec *Decoder) Stats() Stats {
	return dec.stats
}

// Step consumes a single sample. Samples must be supplied in order of
// increasing timestamp.
func (dec *Decoder) Step(s bus.Sample, sink Sink) {
	dec.stats.Samples++

	// the previous instruction is complete when the next opcode is fetched.
	// it must be retired before the classifier forgets about it
	if s.Sync && dec.asm.Pending() {
		dec.finish(s.Timestamp, sink)
	}

	phase := dec.cls.Classify(s)
	if phase == bus.Fetch {
		dec.asm.Begin(s, dec.cls.Definition())
	}
	dec.asm.Record(s, phase)

	sink.Annotate(Annotation{
		Start:    s.Timestamp,
		End:      s.Timestamp + 1,
		Category: Data,
		Text:     s.Data.String(),
	})
	sink.Annotate(Annotation{
		Start:    s.Timestamp,
		End:      s.Timestamp + 1,
		Category: PhaseCategory(phase),
		Text:     phase.String(),
	})
}

// Flush retires the instruction in progress, if any. It should be called at
// the end of the capture.
func (dec *Decoder) Flush(sink Sink) {
	if !dec.asm.Pending() {
		return
	}
	dec.finish(dec.asm.Last()+1, sink)
}

func (dec *Decoder) finish(end int64, sink Sink) {
	res := dec.asm.Finish(end, dec.cls.acc)

	dec.stats.Instructions++

	switch {
	case res.Interrupt:
		dec.stats.Interrupts++
		logger.Logf(dec.env, "decoder", "interrupt at %s", res.Address)
	case res.Defn == nil:
		dec.stats.Unknown++
		logger.Logf(dec.env, "decoder", "unknown opcode at %d", res.Start)
	default:
		if err := res.IsValid(); err != nil {
			logger.Logf(dec.env, "decoder", "%v (at %d)", err, res.Start)
		}
	}

	var registers string
	if dec.em != nil {
		dec.em.Execute(res)
		if dec.em.Failed() {
			dec.stats.Failures++
			logger.Logf(dec.env, "decoder", "prediction failed at %s", res.Address)
		}
		registers = dec.em.Snapshot()
	}

	sink.Annotate(Annotation{
		Start:    res.Start,
		End:      res.End,
		Category: Instruction,
		Text:     disassembly.Format(res),
	})

	if dec.em != nil && dec.registers {
		sink.Annotate(Annotation{
			Start:    res.Start,
			End:      res.End,
			Category: Registers,
			Text:     registers,
		})
	}

	if dec.retire != nil {
		dec.retire(res, registers)
	}
}

// Run pulls samples from the source until the end of the capture. The
// instruction in progress at the end of the capture is flushed.
func (dec *Decoder) Run(src capture.Source, sink Sink) error {
	for {
		s, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				dec.Flush(sink)
				return nil
			}
			return curated.Errorf("decoder: %v", err)
		}
		dec.Step(s, sink)
	}
}
