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
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/mos6502bus/curated"
	"github.com/jetsetilly/mos6502bus/logger"
)

// Reader is implemented by CSVReader and WAVReader.
type Reader interface {
	RowReader
	Columns() int
}

// File is a capture opened from disk.
type File struct {
	Reader
	f *os.File
}

// Open a capture file. The format is decided by the file extension: .csv or
// .wav. The skip argument is only used by the CSV format.
func Open(filename string, skip int) (*File, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv", ".wav":
	default:
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("extension %q", ext))
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("capture: %v", err)
	}

	cf := &File{f: f}

	switch ext {
	case ".csv":
		cf.Reader, err = NewCSVReader(f, skip)
	case ".wav":
		cf.Reader, err = NewWAVReader(f)
	}
	if err != nil {
		f.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "capture", "%s: %d columns", filepath.Base(filename), cf.Columns())

	return cf, nil
}

// Close the capture file.
func (cf *File) Close() error {
	if err := cf.f.Close(); err != nil {
		return curated.Errorf("capture: %v", err)
	}
	return nil
}
