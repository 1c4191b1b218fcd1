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

// Package performance contains helper functions relating to the performance
// of the decoder.
//
// RunProfiler() wraps a function with the profiles selected by the Profile
// argument. The profiles are written to files in the current directory, named
// with the supplied filename header. For example:
//
//	decode_cpu.profile
//	decode_mem.profile
//	decode_trace.profile
//
// The profiles can be viewed with the "go tool pprof" and "go tool trace"
// commands.
package performance
