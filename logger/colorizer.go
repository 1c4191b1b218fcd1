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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/mos6502bus/colorterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is written in a dim pen and the detail in the normal pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	n := 0

	// the count returned is the number of bytes consumed from p not the
	// number of bytes written to the underlying writer
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}

		n += len(l)

		if tag, detail, ok := strings.Cut(l, ": "); ok {
			l = ansi.DimPens["cyan"] + tag + ansi.NormalPen + ": " + detail
		}

		if _, err := io.WriteString(c.out, l); err != nil {
			return n, err
		}
	}

	return n, nil
}
