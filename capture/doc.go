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

// Package capture is the harness side of the decoder. It reads logic
// captures from disk and turns them into a stream of bus samples.
//
// A capture is a sequence of rows. Each row holds the logic level of every
// column (channel) in the capture. The Channels type maps the logical lines
// of the CPU (D0 to D7, RNW, SYNC and optionally PHI2) to capture columns.
//
// A Sampler reads rows from a RowReader and delivers bus samples according to
// the sampling policy:
//
//	every   every row is a bus cycle
//	change  a row is a bus cycle only if one of the mapped lines has changed
//	clock   a bus cycle ends on the falling edge of PHI2
//
// Two capture formats are supported. The CSV format is the output of
// sigrok-cli with the csv output module. The WAV format stores one capture
// column in each audio channel.
//
// Any Source can be wrapped with WithContext() so that the capture ends
// cleanly when the context is cancelled.
package capture
