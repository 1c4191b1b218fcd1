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

package capture

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/curated"
)

// Row of a capture. One logic level for each column.
type Row []bus.Level

func (r Row) String() string {
	s := strings.Builder{}
	for _, l := range r {
		s.WriteString(l.String())
	}
	return s.String()
}

// Equal returns true if the columns are at the same level in both rows.
func (r Row) Equal(o Row, columns []int) bool {
	for _, c := range columns {
		if r[c] != o[c] {
			return false
		}
	}
	return true
}

// RowReader is implemented by the capture file formats.
type RowReader interface {
	// NextRow returns the next row of the capture and its timestamp. The
	// io.EOF error indicates the end of the capture.
	NextRow() (int64, Row, error)
}

// ParseLevel converts a capture field to a logic level. The second return
// value is false if the field is not a logic level.
func ParseLevel(s string) (bus.Level, bool) {
	switch strings.TrimSpace(s) {
	case "0":
		return bus.Low, true
	case "1":
		return bus.High, true
	case "X", "x", "-", "?":
		return bus.Unassigned, true
	}
	return bus.Unassigned, false
}

// SliceRows is a RowReader for rows already in memory. The index of the row
// is the timestamp.
type SliceRows struct {
	rows []Row
	idx  int
}

// NewSliceRows is the preferred method of initialisation for the SliceRows
// type.
func NewSliceRows(rows []Row) *SliceRows {
	return &SliceRows{rows: rows}
}

// ParseRows is a convenience function that creates a SliceRows instance from
// strings of level characters. For example "0101XX".
func ParseRows(rows ...string) (*SliceRows, error) {
	sr := &SliceRows{}
	for i, r := range rows {
		row := make(Row, 0, len(r))
		for _, c := range r {
			l, ok := ParseLevel(string(c))
			if !ok {
				return nil, curated.Errorf(BadLevel, fmt.Sprintf("%q in row %d", c, i))
			}
			row = append(row, l)
		}
		sr.rows = append(sr.rows, row)
	}
	return sr, nil
}

// NextRow implements the RowReader interface.
func (sr *SliceRows) NextRow() (int64, Row, error) {
	if sr.idx >= len(sr.rows) {
		return 0, nil, io.EOF
	}
	r := sr.rows[sr.idx]
	sr.idx++
	return int64(sr.idx - 1), r, nil
}
