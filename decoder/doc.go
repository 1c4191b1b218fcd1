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

// Package decoder reconstructs the activity of the CPU from a capture of the
// data bus and the RNW and SYNC control lines.
//
// Each bus sample is classified by the Classifier as one of the cycle phases
// in the bus package (opcode fetch, operand fetch, memory read or memory
// write). The classification relies only on the control lines and on the
// length of the most recently fetched instruction.
//
// The Assembler collects the cycles of an instruction into an
// execution.Result. The instruction is retired when the next opcode fetch is
// seen or when the capture ends. At that point the address of the next
// instruction is calculated. The address bus is not observed and so the
// program counter is tracked from the instruction length and from the values
// read during jumps, calls, returns and interrupts.
//
// The Decoder ties the two together and emits Annotations to a Sink. For
// every sample there is an annotation for the data on the bus and an
// annotation for the phase of the cycle. For every retired instruction there
// is an annotation with the disassembly. If register emulation is enabled
// then there is also an annotation with the state of the emulated registers.
//
// Decoding is synchronous and driven by the samples. The Run() function
// pulls samples from a capture.Source until the end of the capture. The
// Annotations() function wraps the same loop as an iterator.
package decoder
