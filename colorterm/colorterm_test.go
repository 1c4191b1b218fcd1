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

package colorterm_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502bus/colorterm"
	"github.com/jetsetilly/mos6502bus/colorterm/ansi"
	"github.com/jetsetilly/mos6502bus/test"
)

func TestPrint(t *testing.T) {
	w := &strings.Builder{}
	colorterm.Print(w, false, "red", "hello")
	test.ExpectEquality(t, w.String(), "hello")

	w.Reset()
	colorterm.Print(w, true, "red", "hello")
	test.ExpectEquality(t, w.String(), ansi.Pens["red"]+"hello"+ansi.NormalPen)

	w.Reset()
	colorterm.Print(w, true, "no such pen", "hello")
	test.ExpectEquality(t, w.String(), "hello")
}

// a regular file is never a terminal and so colour is never used
func TestRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "colorterm")
	test.DemandSuccess(t, err)
	defer f.Close()

	term := colorterm.NewTerminal(f, true)
	test.ExpectFailure(t, term.IsRealTerminal())
	test.ExpectFailure(t, term.Colour())
	test.ExpectEquality(t, term.Width(), 80)
}
