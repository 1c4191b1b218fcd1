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

package instructions

import (
	"testing"

	"github.com/jetsetilly/mos6502bus/curated"
	"github.com/jetsetilly/mos6502bus/test"
)

func TestBuild(t *testing.T) {
	_, err := build(definitionsTable())
	test.ExpectSuccess(t, err)

	// missing opcode
	_, err = build(definitionsTable()[1:])
	test.ExpectSuccess(t, curated.Is(err, IncompleteTable))

	// duplicate opcode
	tbl := definitionsTable()
	tbl = append(tbl, tbl[0])
	_, err = build(tbl)
	test.ExpectSuccess(t, curated.Is(err, IncompleteTable))

	// length inconsistent with addressing mode
	tbl = definitionsTable()
	tbl[0xa9].Bytes = 3
	_, err = build(tbl)
	test.ExpectSuccess(t, curated.Is(err, IncompleteTable))
}
