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

	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/curated"
	"github.com/jetsetilly/mos6502bus/preferences"
)

// Policy decides which rows of a capture are bus cycles.
type Policy int

// List of valid Policy values.
const (
	PolicyEvery Policy = iota
	PolicyChange
	PolicyClock
)

func (p Policy) String() string {
	switch p {
	case PolicyEvery:
		return preferences.PolicyEvery
	case PolicyChange:
		return preferences.PolicyChange
	case PolicyClock:
		return preferences.PolicyClock
	}
	return "unknown policy"
}

// ParsePolicy is the inverse of Policy.String().
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case preferences.PolicyEvery:
		return PolicyEvery, nil
	case preferences.PolicyChange:
		return PolicyChange, nil
	case preferences.PolicyClock:
		return PolicyClock, nil
	}
	return PolicyEvery, curated.Errorf("capture: unknown sampling policy (%s)", s)
}

// Sampler implements the Source interface for a capture. The rows of the
// capture are filtered by the sampling policy.
type Sampler struct {
	rows    RowReader
	ch      Channels
	policy  Policy
	columns int
	watched []int

	// the previous row read from the capture
	prev   Row
	prevTS int64
}

// NewSampler is the preferred method of initialisation for the Sampler type.
// The channels are validated against the number of columns in the capture.
func NewSampler(rows RowReader, columns int, ch Channels, policy Policy) (*Sampler, error) {
	if err := ch.Validate(columns); err != nil {
		return nil, err
	}

	if policy == PolicyClock && !ch.HasClock() {
		return nil, curated.Errorf(ChannelMissing, "PHI2 is required by the clock policy")
	}

	return &Sampler{
		rows:    rows,
		ch:      ch,
		policy:  policy,
		columns: columns,
		watched: ch.watched(),
	}, nil
}

func (smp *Sampler) next() (int64, Row, error) {
	ts, row, err := smp.rows.NextRow()
	if err != nil {
		return ts, row, err
	}
	if len(row) < smp.columns {
		return ts, row, curated.Errorf(UnsupportedFormat, fmt.Sprintf("row %d has %d columns (expected %d)", ts, len(row), smp.columns))
	}
	return ts, row, nil
}

// Next implements the Source interface.
func (smp *Sampler) Next() (bus.Sample, error) {
	for {
		ts, row, err := smp.next()
		if err != nil {
			return bus.Sample{}, err
		}

		prev, prevTS := smp.prev, smp.prevTS
		smp.prev, smp.prevTS = row, ts

		switch smp.policy {
		case PolicyEvery:
			return smp.ch.Sample(ts, row)

		case PolicyChange:
			if prev == nil || !row.Equal(prev, smp.watched) {
				return smp.ch.Sample(ts, row)
			}

		case PolicyClock:
			// the bus is valid at the end of the PHI2 high phase. the sample
			// is the last row before the falling edge
			if prev != nil && prev[smp.ch.Phi2] == bus.High && row[smp.ch.Phi2] == bus.Low {
				return smp.ch.Sample(prevTS, prev)
			}
		}
	}
}
