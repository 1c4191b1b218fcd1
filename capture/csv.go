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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/mos6502bus/curated"
)

// CSVReader reads the output of sigrok-cli's csv output module. Lines
// beginning with a semicolon are comments. The first row can optionally be a
// header of channel names. Every other row is a list of logic levels, one for
// each column.
//
// The index of the row in the capture (not counting comments or the header)
// is the timestamp.
type CSVReader struct {
	r *csv.Reader

	// number of leading fields that are not logic levels. sigrok-cli will
	// output a time column if the time option is given
	skip int

	header  []string
	columns int

	// the first row is read by NewCSVReader()
	first Row

	row int64
}

// NewCSVReader is the preferred method of initialisation for the CSVReader
// type. The skip argument is the number of leading columns to ignore.
func NewCSVReader(r io.Reader, skip int) (*CSVReader, error) {
	c := &CSVReader{
		r:    csv.NewReader(r),
		skip: skip,
	}
	c.r.Comment = ';'
	c.r.TrimLeadingSpace = true

	rec, err := c.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, curated.Errorf(UnsupportedFormat, "csv: empty capture")
		}
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("csv: %v", err))
	}

	if len(rec) <= skip {
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("csv: too few fields (%d)", len(rec)))
	}
	c.columns = len(rec) - skip

	row, err := c.parse(rec)
	if err != nil {
		// not a row of logic levels so treat it as the header
		c.header = make([]string, 0, c.columns)
		for _, f := range rec[skip:] {
			c.header = append(c.header, strings.TrimSpace(f))
		}
	} else {
		c.first = row
	}

	return c, nil
}

// Columns returns the number of logic columns in the capture.
func (c *CSVReader) Columns() int {
	return c.columns
}

// Header returns the channel names from the header row. Returns nil if the
// capture has no header.
func (c *CSVReader) Header() []string {
	return c.header
}

func (c *CSVReader) parse(rec []string) (Row, error) {
	row := make(Row, 0, len(rec)-c.skip)
	for i, f := range rec[c.skip:] {
		l, ok := ParseLevel(f)
		if !ok {
			return nil, curated.Errorf(BadLevel, fmt.Sprintf("%q in column %d of row %d", f, i, c.row))
		}
		row = append(row, l)
	}
	return row, nil
}

// NextRow implements the RowReader interface.
func (c *CSVReader) NextRow() (int64, Row, error) {
	if c.first != nil {
		row := c.first
		c.first = nil
		c.row++
		return 0, row, nil
	}

	rec, err := c.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil, io.EOF
		}
		return 0, nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("csv: %v", err))
	}

	row, err := c.parse(rec)
	if err != nil {
		return 0, nil, err
	}

	ts := c.row
	c.row++

	return ts, row, nil
}
