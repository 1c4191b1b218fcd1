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
	"context"
	"io"

	"github.com/jetsetilly/mos6502bus/bus"
)

// Source supplies bus samples in order of increasing timestamp. The io.EOF
// error indicates the end of the capture.
type Source interface {
	Next() (bus.Sample, error)
}

// SliceSource is a Source for samples already in memory.
type SliceSource struct {
	samples []bus.Sample
	idx     int
}

// NewSliceSource is the preferred method of initialisation for the
// SliceSource type.
func NewSliceSource(samples []bus.Sample) *SliceSource {
	return &SliceSource{samples: samples}
}

// Next implements the Source interface.
func (src *SliceSource) Next() (bus.Sample, error) {
	if src.idx >= len(src.samples) {
		return bus.Sample{}, io.EOF
	}
	s := src.samples[src.idx]
	src.idx++
	return s, nil
}

type contextSource struct {
	ctx context.Context
	src Source
}

// WithContext returns a Source that ends the capture when the context is
// cancelled. The cancellation is reported as io.EOF so that the decoder
// flushes the final instruction.
func WithContext(ctx context.Context, src Source) Source {
	return &contextSource{ctx: ctx, src: src}
}

// Next implements the Source interface.
func (src *contextSource) Next() (bus.Sample, error) {
	select {
	case <-src.ctx.Done():
		return bus.Sample{}, io.EOF
	default:
	}
	return src.src.Next()
}
