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

// Package emulator makes a best effort reconstruction of the registers and
// flags of the CPU from the bus activity of each instruction.
//
// Only the data bus is observed and so the emulator can never be sure of the
// state of the CPU. Every register and flag starts in an unknown state and
// becomes known only when an instruction establishes it from a known value.
// For example, LDA #$42 results in A=42 N=0 Z=0 whatever the previous state.
//
// Instructions that write a register to the bus (stores and pushes) allow the
// model to be checked. If the value on the bus is different to a known
// register value then the prediction has failed. The failure is sticky until
// the next call to Snapshot(). The model continues with the observed value.
package emulator
