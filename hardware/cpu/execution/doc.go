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

// Package execution tracks the result of an instruction as it is seen on the
// bus. The Result type is built by the decoder, one bus cycle at a time, and
// then used to produce the disassembly and to drive the emulator.
//
// The validity of a Result can be checked with the IsValid() function. A
// Result is always usable even when it is not valid. For example, an
// instruction that was cut short by the end of the capture is not valid.
package execution
