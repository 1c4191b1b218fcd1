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

package bus

import "fmt"

// Level is the logic level of a single line in the capture.
type Level int

// List of valid Level values.
const (
	Low Level = iota
	High
	Unassigned
)

func (l Level) String() string {
	switch l {
	case Low:
		return "0"
	case High:
		return "1"
	}
	return "X"
}

// ReduceLines converts the levels of the eight data lines into a Data value.
// Index 0 of the array is D0, the least significant bit. If any line is not
// at a logic level then the Data value is indeterminate.
func ReduceLines(lines [8]Level) Data {
	var v uint8
	for i, l := range lines {
		switch l {
		case High:
			v |= 1 << i
		case Low:
		default:
			return Unknown
		}
	}
	return Known(v)
}

// Sample is the state of the bus for a single cycle. Samples are immutable
// once created.
type Sample struct {
	// monotonically increasing. usually the sample number in the capture
	Timestamp int64

	// the value of the data bus
	Data Data

	// the RNW line. true for a read cycle and false for a write cycle
	Read bool

	// the SYNC line. true during an opcode fetch
	Sync bool
}

func (s Sample) String() string {
	rw := "W"
	if s.Read {
		rw = "R"
	}
	sync := ""
	if s.Sync {
		sync = " SYNC"
	}
	return fmt.Sprintf("%d: %s %s%s", s.Timestamp, s.Data, rw, sync)
}

// Phase is the classification of a bus cycle.
type Phase int

// List of valid Phase values.
const (
	Fetch Phase = iota
	Operand1
	Operand2
	MemoryRead
	MemoryWrite
)

func (p Phase) String() string {
	switch p {
	case Fetch:
		return "Fetch"
	case Operand1:
		return "Op1"
	case Operand2:
		return "Op2"
	case MemoryRead:
		return "Mem Rd"
	case MemoryWrite:
		return "Mem Wr"
	}
	return "unknown phase"
}
