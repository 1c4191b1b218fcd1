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

// Package bus defines the values observed on the bus of a 6502 family CPU
// during a logic capture.
//
// The address bus is not observed. A Sample contains only the data bus, the
// read/write strobe and the SYNC (opcode fetch) strobe. Any data line may be
// at an unassigned level, in which case the Data value of the Sample is
// indeterminate. Indeterminate data is never an error. It propagates through
// the decoder as an unknown value and is rendered with a placeholder.
//
// The Address type is used for program counter values. The program counter is
// derived from the data bus and so may also be unknown.
package bus
