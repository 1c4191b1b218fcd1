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
	"strconv"
	"strings"

	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/curated"
	"github.com/jetsetilly/mos6502bus/preferences"
)

// Error patterns.
const (
	ChannelMissing    = "capture: channel missing: %v"
	BadChannels       = "capture: bad channel mapping: %v"
	BadLevel          = "capture: bad logic level: %v"
	UnsupportedFormat = "capture: unsupported format: %v"
)

// NoChannel indicates that an optional line is not present in the capture.
const NoChannel = -1

// Channels maps the lines of the CPU to capture columns.
type Channels struct {
	// index 0 is D0
	Data [8]int

	RNW  int
	Sync int

	// optional. NoChannel if not present
	Phi2 int
}

// DefaultChannels returns the default mapping. D0 to D7 are columns 0 to 7,
// RNW is column 8 and SYNC is column 9. There is no PHI2.
func DefaultChannels() Channels {
	ch := Channels{
		RNW:  8,
		Sync: 9,
		Phi2: NoChannel,
	}
	for i := range ch.Data {
		ch.Data[i] = i
	}
	return ch
}

// ChannelsFromPrefs returns the mapping stored in the preferences.
func ChannelsFromPrefs(p *preferences.Preferences) Channels {
	var ch Channels
	for i := range ch.Data {
		ch.Data[i] = p.Data[i].Get().(int)
	}
	ch.RNW = p.RNW.Get().(int)
	ch.Sync = p.Sync.Get().(int)
	ch.Phi2 = p.Phi2.Get().(int)
	return ch
}

func (ch Channels) String() string {
	s := strings.Builder{}
	for i, c := range ch.Data {
		s.WriteString(fmt.Sprintf("d%d=%d,", i, c))
	}
	s.WriteString(fmt.Sprintf("rnw=%d,sync=%d,phi2=%d", ch.RNW, ch.Sync, ch.Phi2))
	return s.String()
}

// Set the column for the named line. Line names are case insensitive: d0 to
// d7, rnw, sync and phi2.
func (ch *Channels) Set(line string, column int) error {
	if column < NoChannel {
		return curated.Errorf(BadChannels, fmt.Sprintf("column %d for %s", column, line))
	}

	line = strings.ToLower(strings.TrimSpace(line))
	switch line {
	case "rnw":
		ch.RNW = column
	case "sync":
		ch.Sync = column
	case "phi2":
		ch.Phi2 = column
	default:
		n, ok := strings.CutPrefix(line, "d")
		if !ok {
			return curated.Errorf(BadChannels, fmt.Sprintf("unknown line %s", line))
		}
		i, err := strconv.Atoi(n)
		if err != nil || i < 0 || i >= len(ch.Data) {
			return curated.Errorf(BadChannels, fmt.Sprintf("unknown line %s", line))
		}
		ch.Data[i] = column
	}

	return nil
}

// ParseChannels applies a list of assignments to the base mapping. The list
// is of the form "d0=3,rnw=8". An empty string leaves the mapping unchanged.
func ParseChannels(s string, base Channels) (Channels, error) {
	ch := base
	for a := range strings.SplitSeq(s, ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}

		line, col, ok := strings.Cut(a, "=")
		if !ok {
			return base, curated.Errorf(BadChannels, fmt.Sprintf("malformed assignment %q", a))
		}

		c, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return base, curated.Errorf(BadChannels, fmt.Sprintf("malformed assignment %q", a))
		}

		if err := ch.Set(line, c); err != nil {
			return base, err
		}
	}
	return ch, nil
}

// Validate the mapping against the number of columns in a capture. The data,
// RNW and SYNC lines must be present. No two lines can share a column.
func (ch Channels) Validate(columns int) error {
	seen := make(map[int]string)

	check := func(name string, c int, required bool) error {
		if c == NoChannel && !required {
			return nil
		}
		if c < 0 || c >= columns {
			return curated.Errorf(ChannelMissing, fmt.Sprintf("%s (column %d of %d)", name, c, columns))
		}
		if other, ok := seen[c]; ok {
			return curated.Errorf(BadChannels, fmt.Sprintf("%s and %s share column %d", other, name, c))
		}
		seen[c] = name
		return nil
	}

	for i, c := range ch.Data {
		if err := check(fmt.Sprintf("D%d", i), c, true); err != nil {
			return err
		}
	}
	if err := check("RNW", ch.RNW, true); err != nil {
		return err
	}
	if err := check("SYNC", ch.Sync, true); err != nil {
		return err
	}
	return check("PHI2", ch.Phi2, false)
}

// HasClock returns true if the PHI2 line is mapped.
func (ch Channels) HasClock() bool {
	return ch.Phi2 != NoChannel
}

// the columns that are compared by the change policy
func (ch Channels) watched() []int {
	w := make([]int, 0, 11)
	w = append(w, ch.Data[:]...)
	w = append(w, ch.RNW, ch.Sync)
	if ch.HasClock() {
		w = append(w, ch.Phi2)
	}
	return w
}

// Sample creates a bus sample from a row of the capture. The row must have
// been validated against the mapping. An unassigned data line results in an
// unknown data value but an unassigned control line is an error.
func (ch Channels) Sample(timestamp int64, row Row) (bus.Sample, error) {
	var lines [8]bus.Level
	for i, c := range ch.Data {
		lines[i] = row[c]
	}

	s := bus.Sample{
		Timestamp: timestamp,
		Data:      bus.ReduceLines(lines),
	}

	switch row[ch.RNW] {
	case bus.High:
		s.Read = true
	case bus.Low:
		s.Read = false
	default:
		return s, curated.Errorf(BadLevel, fmt.Sprintf("RNW unassigned at %d", timestamp))
	}

	switch row[ch.Sync] {
	case bus.High:
		s.Sync = true
	case bus.Low:
		s.Sync = false
	default:
		return s, curated.Errorf(BadLevel, fmt.Sprintf("SYNC unassigned at %d", timestamp))
	}

	return s, nil
}

// Store the mapping in the preferences.
func (ch Channels) Store(p *preferences.Preferences) error {
	for i, c := range ch.Data {
		if err := p.Data[i].Set(c); err != nil {
			return err
		}
	}
	if err := p.RNW.Set(ch.RNW); err != nil {
		return err
	}
	if err := p.Sync.Set(ch.Sync); err != nil {
		return err
	}
	return p.Phi2.Set(ch.Phi2)
}
