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

// Package disassembly turns the instructions retired by the decoder into
// text.
//
// The Format() function produces the single line of text used by the
// instruction annotation. The line is the address of the instruction followed
// by the mnemonic and operands, as described by the template of the
// instruction's addressing mode. For example:
//
//	1000 LDA #42
//	1002 BNE 0FF0
//	????  JMP (FFFC)
//
// A Listing collects entries for each retired instruction and writes them in
// columns. The width of each column is the width of the widest entry.
package disassembly
