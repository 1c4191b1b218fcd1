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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/curated"
	"github.com/jetsetilly/mos6502bus/logger"
)

// the levels used when writing a WAV file. WAV files are always written
// with 8 bit samples
const (
	wavBitDepth = 8
	wavLow      = 0x00
	wavHigh     = 0xff
)

// the minimum number of columns in a WAV capture
const minWAVColumns = 8

// WAVReader reads a capture stored as a multi-channel WAV file. Each channel
// of the WAV is one column of the capture. A sample above half of full scale
// is high, otherwise it is low.
//
// The index of the sample frame is the timestamp.
type WAVReader struct {
	data       []int
	columns    int
	bitDepth   int
	sampleRate int

	frame int
}

// NewWAVReader is the preferred method of initialisation for the WAVReader
// type. The entire file is decoded immediately.
func NewWAVReader(r io.ReadSeeker) (*WAVReader, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, curated.Errorf(UnsupportedFormat, "wav: error decoding")
	}

	if !dec.IsValidFile() {
		return nil, curated.Errorf(UnsupportedFormat, "wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("wav: %v", err))
	}

	w := &WAVReader{
		data:       buf.Data,
		columns:    int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		sampleRate: int(dec.SampleRate),
	}

	if w.columns < minWAVColumns {
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("wav: %d channels is too few", w.columns))
	}

	logger.Logf(logger.Allow, "capture", "wav: %d channels, %d bit", w.columns, w.bitDepth)
	logger.Logf(logger.Allow, "capture", "wav: sample rate: %dHz", w.sampleRate)

	return w, nil
}

// Columns returns the number of columns (channels) in the capture.
func (w *WAVReader) Columns() int {
	return w.columns
}

// SampleRate returns the sample rate of the capture in Hz.
func (w *WAVReader) SampleRate() int {
	return w.sampleRate
}

func (w *WAVReader) level(v int) bus.Level {
	// 8 bit WAV samples are unsigned. larger sample sizes are signed
	threshold := 1 << (w.bitDepth - 2)
	if w.bitDepth <= 8 {
		threshold = 0x7f
	}
	if v > threshold {
		return bus.High
	}
	return bus.Low
}

// NextRow implements the RowReader interface.
func (w *WAVReader) NextRow() (int64, Row, error) {
	i := w.frame * w.columns
	if i+w.columns > len(w.data) {
		return 0, nil, io.EOF
	}

	row := make(Row, w.columns)
	for c := range row {
		row[c] = w.level(w.data[i+c])
	}

	ts := int64(w.frame)
	w.frame++

	return ts, row, nil
}

// WriteWAV encodes the rows of a capture as a WAV file. Each column is one
// channel of the WAV. Unassigned levels are written as low. Returns the
// number of rows written.
func WriteWAV(ws io.WriteSeeker, rows RowReader, columns int, sampleRate int) (int, error) {
	if columns < minWAVColumns {
		return 0, curated.Errorf(UnsupportedFormat, fmt.Sprintf("wav: %d columns is too few", columns))
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: columns,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: wavBitDepth,
	}

	var n int
	var unassigned int

	for {
		_, row, err := rows.NextRow()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return n, err
		}

		if len(row) < columns {
			return n, curated.Errorf(UnsupportedFormat, fmt.Sprintf("wav: row %d has %d columns", n, len(row)))
		}

		for _, l := range row[:columns] {
			switch l {
			case bus.High:
				buf.Data = append(buf.Data, wavHigh)
			case bus.Unassigned:
				unassigned++
				fallthrough
			default:
				buf.Data = append(buf.Data, wavLow)
			}
		}
		n++
	}

	if unassigned > 0 {
		logger.Logf(logger.Allow, "capture", "wav: %d unassigned levels written as low", unassigned)
	}

	enc := wav.NewEncoder(ws, sampleRate, wavBitDepth, columns, 1)
	if err := enc.Write(buf); err != nil {
		return n, curated.Errorf("capture: wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		return n, curated.Errorf("capture: wav: %v", err)
	}

	return n, nil
}

// WavWriter buffers the rows of a capture and writes them to disk as a WAV
// file. The rows are held in memory in their entirety and written on the
// call to Write().
type WavWriter struct {
	filename   string
	columns    int
	sampleRate int
	buffer     []Row
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string, columns int, sampleRate int) (*WavWriter, error) {
	if columns < minWAVColumns {
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("wav: %d columns is too few", columns))
	}
	return &WavWriter{
		filename:   filename,
		columns:    columns,
		sampleRate: sampleRate,
	}, nil
}

// AddRow adds a row to the buffer.
func (aw *WavWriter) AddRow(row Row) {
	aw.buffer = append(aw.buffer, row)
}

// Len returns the number of rows in the buffer.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Write the buffered rows to disk.
func (aw *WavWriter) Write() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("capture: wav: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("capture: wav: %v", err)
		}
	}()

	logger.Logf(logger.Allow, "capture", "writing capture to %s", aw.filename)

	_, err = WriteWAV(f, NewSliceRows(aw.buffer), aw.columns, aw.sampleRate)
	return err
}
