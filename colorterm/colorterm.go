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

// Package colorterm decides whether output is going to a real terminal and
// supplies the pens used to colour the decoder output when it is.
package colorterm

import (
	"io"
	"os"

	"github.com/jetsetilly/mos6502bus/colorterm/ansi"
	"golang.org/x/term"
)

// the width assumed when the output is not a terminal or when the terminal
// geometry cannot be queried
const defaultWidth = 80

// Terminal wraps an output file and records whether colour output should be
// used with it.
type Terminal struct {
	output   *os.File
	realTerm bool
	colour   bool
}

// NewTerminal is the preferred method of initialisation for the Terminal type.
// Colour is only used if the output is a real terminal and the useColour
// argument is true.
func NewTerminal(output *os.File, useColour bool) *Terminal {
	t := &Terminal{
		output:   output,
		realTerm: isTerminal(output),
	}
	t.colour = useColour && t.realTerm
	return t
}

// IsRealTerminal returns true if the output file is a terminal device.
func (t *Terminal) IsRealTerminal() bool {
	return t.realTerm
}

// Colour returns true if output is to be coloured.
func (t *Terminal) Colour() bool {
	return t.colour
}

// Width returns the number of columns in the terminal.
func (t *Terminal) Width() int {
	if !t.realTerm {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(t.output.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Write implements the io.Writer interface.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.output.Write(p)
}

// Print writes the string s in the named pen. The pen name is one of the keys
// in the ansi.Pens table. An empty or unknown pen name writes the string
// without colour.
func (t *Terminal) Print(pen string, s string) {
	Print(t, t.colour, pen, s)
}

// Print writes the string s to w in the named pen if colour is true.
func Print(w io.Writer, colour bool, pen string, s string) {
	if !colour {
		io.WriteString(w, s)
		return
	}
	p, ok := ansi.Pens[pen]
	if !ok {
		io.WriteString(w, s)
		return
	}
	io.WriteString(w, p)
	io.WriteString(w, s)
	io.WriteString(w, ansi.NormalPen)
}
