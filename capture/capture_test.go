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

package capture_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/capture"
	"github.com/jetsetilly/mos6502bus/curated"
	"github.com/jetsetilly/mos6502bus/preferences"
	"github.com/jetsetilly/mos6502bus/test"
)

// row returns a capture row for the default channel mapping. extra columns
// are appended to the row
func row(data uint8, read bool, sync bool, extra ...string) string {
	s := strings.Builder{}
	for i := range 8 {
		if data&(1<<i) != 0 {
			s.WriteString("1")
		} else {
			s.WriteString("0")
		}
	}
	if read {
		s.WriteString("1")
	} else {
		s.WriteString("0")
	}
	if sync {
		s.WriteString("1")
	} else {
		s.WriteString("0")
	}
	for _, e := range extra {
		s.WriteString(e)
	}
	return s.String()
}

// drain collects samples from a source until the end of the capture
func drain(t *testing.T, src capture.Source) []bus.Sample {
	t.Helper()
	var samples []bus.Sample
	for {
		s, err := src.Next()
		if errors.Is(err, io.EOF) {
			return samples
		}
		test.DemandSuccess(t, err)
		samples = append(samples, s)
	}
}

func TestSliceSource(t *testing.T) {
	src := capture.NewSliceSource([]bus.Sample{
		{Timestamp: 0, Data: bus.Known(0xa9), Read: true, Sync: true},
		{Timestamp: 1, Data: bus.Known(0x42), Read: true},
	})

	samples := drain(t, src)
	test.ExpectEquality(t, len(samples), 2)
	test.ExpectEquality(t, samples[1].Data, bus.Known(0x42))

	_, err := src.Next()
	test.ExpectEquality(t, err, io.EOF)
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	src := capture.WithContext(ctx, capture.NewSliceSource([]bus.Sample{
		{Timestamp: 0}, {Timestamp: 1}, {Timestamp: 2},
	}))

	_, err := src.Next()
	test.ExpectSuccess(t, err)

	cancel()
	_, err = src.Next()
	test.ExpectEquality(t, err, io.EOF)
}

func TestChannels(t *testing.T) {
	ch := capture.DefaultChannels()
	test.ExpectSuccess(t, ch.Validate(10))
	test.ExpectFailure(t, ch.HasClock())

	err := ch.Validate(9)
	test.ExpectSuccess(t, curated.Is(err, capture.ChannelMissing))

	ch, err = capture.ParseChannels("D0=10, rnw=11,phi2=12", ch)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ch.Data[0], 10)
	test.ExpectEquality(t, ch.RNW, 11)
	test.ExpectEquality(t, ch.Phi2, 12)
	test.ExpectSuccess(t, ch.HasClock())
	test.ExpectSuccess(t, ch.Validate(13))

	err = ch.Validate(12)
	test.ExpectSuccess(t, curated.Is(err, capture.ChannelMissing))

	// duplicate column
	dup, err := capture.ParseChannels("sync=1", capture.DefaultChannels())
	test.ExpectSuccess(t, err)
	err = dup.Validate(10)
	test.ExpectSuccess(t, curated.Is(err, capture.BadChannels))

	// malformed assignments leave the mapping unchanged
	for _, s := range []string{"d8=1", "rnw", "rnw=x", "a0=1", "sync=-2"} {
		bad, err := capture.ParseChannels(s, capture.DefaultChannels())
		test.ExpectSuccess(t, curated.Is(err, capture.BadChannels), s)
		test.ExpectEquality(t, bad, capture.DefaultChannels(), s)
	}

	// empty string changes nothing
	same, err := capture.ParseChannels("", capture.DefaultChannels())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, same, capture.DefaultChannels())
}

func TestSample(t *testing.T) {
	ch := capture.DefaultChannels()

	rows, err := capture.ParseRows(row(0xa9, true, true), "1001X10110", "000000001X", "0000000000")
	test.DemandSuccess(t, err)

	_, r, err := rows.NextRow()
	test.DemandSuccess(t, err)
	s, err := ch.Sample(7, r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, bus.Sample{Timestamp: 7, Data: bus.Known(0xa9), Read: true, Sync: true})

	// unassigned data line
	_, r, err = rows.NextRow()
	test.DemandSuccess(t, err)
	s, err = ch.Sample(8, r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Data, bus.Unknown)
	test.ExpectEquality(t, s.Data.String(), "??")

	// unassigned control line
	_, r, err = rows.NextRow()
	test.DemandSuccess(t, err)
	_, err = ch.Sample(9, r)
	test.ExpectSuccess(t, curated.Is(err, capture.BadLevel))

	// write cycle
	_, r, err = rows.NextRow()
	test.DemandSuccess(t, err)
	s, err = ch.Sample(10, r)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, s.Read)
	test.ExpectFailure(t, s.Sync)

	_, err = capture.ParseRows("01a")
	test.ExpectSuccess(t, curated.Is(err, capture.BadLevel))
}

func TestPolicyEvery(t *testing.T) {
	rows, err := capture.ParseRows(
		row(0xa9, true, true),
		row(0xa9, true, true),
		row(0x42, true, false),
	)
	test.DemandSuccess(t, err)

	smp, err := capture.NewSampler(rows, 10, capture.DefaultChannels(), capture.PolicyEvery)
	test.DemandSuccess(t, err)

	samples := drain(t, smp)
	test.ExpectEquality(t, len(samples), 3)
	test.ExpectEquality(t, samples[2].Timestamp, int64(2))
}

func TestPolicyChange(t *testing.T) {
	rows, err := capture.ParseRows(
		row(0xa9, true, true, "0"),
		row(0xa9, true, true, "1"),
		row(0x42, true, false, "1"),
		row(0x42, true, false, "0"),
		row(0x42, false, false, "0"),
	)
	test.DemandSuccess(t, err)

	// the eleventh column is not mapped so changes to it are ignored
	smp, err := capture.NewSampler(rows, 11, capture.DefaultChannels(), capture.PolicyChange)
	test.DemandSuccess(t, err)

	samples := drain(t, smp)
	test.DemandEquality(t, len(samples), 3)
	test.ExpectEquality(t, samples[0].Timestamp, int64(0))
	test.ExpectEquality(t, samples[1].Timestamp, int64(2))
	test.ExpectEquality(t, samples[2].Timestamp, int64(4))
}

func TestPolicyClock(t *testing.T) {
	ch, err := capture.ParseChannels("phi2=10", capture.DefaultChannels())
	test.DemandSuccess(t, err)

	rows, err := capture.ParseRows(
		row(0x00, true, false, "0"),
		row(0xa9, true, true, "1"),
		row(0xa9, true, true, "0"),
		row(0x00, true, false, "0"),
		row(0x42, true, false, "1"),
		row(0x42, true, false, "1"),
		row(0x00, true, false, "0"),
		row(0x00, true, false, "1"),
	)
	test.DemandSuccess(t, err)

	smp, err := capture.NewSampler(rows, 11, ch, capture.PolicyClock)
	test.DemandSuccess(t, err)

	samples := drain(t, smp)
	test.DemandEquality(t, len(samples), 2)
	test.ExpectEquality(t, samples[0], bus.Sample{Timestamp: 1, Data: bus.Known(0xa9), Read: true, Sync: true})
	test.ExpectEquality(t, samples[1], bus.Sample{Timestamp: 5, Data: bus.Known(0x42), Read: true})

	// clock policy requires PHI2
	_, err = capture.NewSampler(rows, 11, capture.DefaultChannels(), capture.PolicyClock)
	test.ExpectSuccess(t, curated.Is(err, capture.ChannelMissing))
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []capture.Policy{capture.PolicyEvery, capture.PolicyChange, capture.PolicyClock} {
		q, err := capture.ParsePolicy(p.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, q, p)
	}
	_, err := capture.ParsePolicy("sometimes")
	test.ExpectFailure(t, err)
}

const sigrokCSV = `; CSV, generated by libsigrok 0.5.2
; Channels (10/10): D0, D1, D2, D3, D4, D5, D6, D7, RNW, SYNC
; Samplerate: 1 MHz
time,D0,D1,D2,D3,D4,D5,D6,D7,RNW,SYNC
0.000000,1,0,0,1,0,1,0,1,1,1
0.000001,0,1,0,0,0,0,1,0,1,0
0.000002,X,X,X,X,X,X,X,X,1,0
`

func TestCSV(t *testing.T) {
	c, err := capture.NewCSVReader(strings.NewReader(sigrokCSV), 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Columns(), 10)
	test.DemandEquality(t, len(c.Header()), 10)
	test.ExpectEquality(t, c.Header()[8], "RNW")

	smp, err := capture.NewSampler(c, c.Columns(), capture.DefaultChannels(), capture.PolicyEvery)
	test.DemandSuccess(t, err)

	samples := drain(t, smp)
	test.DemandEquality(t, len(samples), 3)
	test.ExpectEquality(t, samples[0], bus.Sample{Timestamp: 0, Data: bus.Known(0xa9), Read: true, Sync: true})
	test.ExpectEquality(t, samples[1], bus.Sample{Timestamp: 1, Data: bus.Known(0x42), Read: true})
	test.ExpectEquality(t, samples[2], bus.Sample{Timestamp: 2, Data: bus.Unknown, Read: true})
}

func TestCSVWithoutHeader(t *testing.T) {
	c, err := capture.NewCSVReader(strings.NewReader("1,0,1,0,1,0,1,0,1,1\n0,0,0,0,0,0,0,0,1,0\n"), 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(c.Header()), 0)

	ts, r, err := c.NextRow()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ts, int64(0))
	test.ExpectEquality(t, r.String(), "1010101011")

	ts, r, err = c.NextRow()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ts, int64(1))
	test.ExpectEquality(t, r.String(), "0000000010")

	_, _, err = c.NextRow()
	test.ExpectEquality(t, err, io.EOF)
}

func TestCSVErrors(t *testing.T) {
	_, err := capture.NewCSVReader(strings.NewReader("; nothing but a comment\n"), 0)
	test.ExpectSuccess(t, curated.Is(err, capture.UnsupportedFormat))

	c, err := capture.NewCSVReader(strings.NewReader("1,0\n0,2\n"), 0)
	test.DemandSuccess(t, err)
	_, _, err = c.NextRow()
	test.ExpectSuccess(t, err)
	_, _, err = c.NextRow()
	test.ExpectSuccess(t, curated.Is(err, capture.BadLevel))

	// inconsistent number of fields
	c, err = capture.NewCSVReader(strings.NewReader("1,0\n0,1,1\n"), 0)
	test.DemandSuccess(t, err)
	_, _, err = c.NextRow()
	test.ExpectSuccess(t, err)
	_, _, err = c.NextRow()
	test.ExpectSuccess(t, curated.Is(err, capture.UnsupportedFormat))
}

func TestWAV(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "capture.wav")

	rows := []string{
		row(0xa9, true, true),
		row(0x42, true, false),
		"XXXXXXXX10",
	}

	aw, err := capture.NewWavWriter(filename, 10, 1000000)
	test.DemandSuccess(t, err)

	src, err := capture.ParseRows(rows...)
	test.DemandSuccess(t, err)
	for {
		_, r, err := src.NextRow()
		if errors.Is(err, io.EOF) {
			break
		}
		aw.AddRow(r)
	}
	test.ExpectEquality(t, aw.Len(), 3)
	test.DemandSuccess(t, aw.Write())

	cf, err := capture.Open(filename, 0)
	test.DemandSuccess(t, err)
	defer cf.Close()
	test.ExpectEquality(t, cf.Columns(), 10)

	ts, r, err := cf.NextRow()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ts, int64(0))
	test.ExpectEquality(t, r.String(), rows[0])

	_, r, err = cf.NextRow()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.String(), rows[1])

	// unassigned levels are written as low
	_, r, err = cf.NextRow()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.String(), "0000000010")

	_, _, err = cf.NextRow()
	test.ExpectEquality(t, err, io.EOF)

	_, err = capture.NewWavWriter(filename, 4, 1000)
	test.ExpectSuccess(t, curated.Is(err, capture.UnsupportedFormat))
}

func TestOpenUnsupported(t *testing.T) {
	_, err := capture.Open("capture.vcd", 0)
	test.ExpectSuccess(t, curated.Is(err, capture.UnsupportedFormat))
}

func TestChannelsPrefs(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, capture.ChannelsFromPrefs(p), capture.DefaultChannels())

	ch, err := capture.ParseChannels("d3=12,phi2=10", capture.DefaultChannels())
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ch.Store(p))
	test.ExpectEquality(t, p.Data[3].Get().(int), 12)
	test.ExpectEquality(t, capture.ChannelsFromPrefs(p), ch)
}
