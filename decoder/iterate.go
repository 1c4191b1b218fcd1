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

package decoder

import (
	"errors"
	"io"
	"iter"

	"github.com/jetsetilly/mos6502bus/capture"
	"github.com/jetsetilly/mos6502bus/curated"
)

// Annotations returns the annotations for the samples in the source as a
// sequence. The sequence is lazy, samples are only pulled from the source as
// annotations are consumed. The sequence can only be iterated once.
//
// An error from the source ends the sequence with a zero Annotation and the
// error.
func Annotations(dec *Decoder, src capture.Source) iter.Seq2[Annotation, error] {
	return func(yield func(Annotation, error) bool) {
		var pending []Annotation
		sink := SinkFunc(func(a Annotation) {
			pending = append(pending, a)
		})

		drain := func() bool {
			for _, a := range pending {
				if !yield(a, nil) {
					return false
				}
			}
			pending = pending[:0]
			return true
		}

		for {
			s, err := src.Next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					dec.Flush(sink)
					drain()
					return
				}
				yield(Annotation{}, curated.Errorf("decoder: %v", err))
				return
			}

			dec.Step(s, sink)
			if !drain() {
				return
			}
		}
	}
}
