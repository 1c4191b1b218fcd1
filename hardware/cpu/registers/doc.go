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

// Package registers implements the registers of the 6502 as modelled by the
// emulator. The emulator cannot observe the registers directly and so every
// register and flag can be in an unknown state.
//
// Unknown values propagate. Any operation with an unknown input produces an
// unknown result, unless the result does not depend on that input. For
// example, loading a known value into a register whose value is unknown
// results in a known value.
package registers
