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

package logger_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502bus/colorterm/ansi"
	"github.com/jetsetilly/mos6502bus/logger"
	"github.com/jetsetilly/mos6502bus/test"
)

// test central logger and the use of the Tail() function
func TestCentralLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "decoder", "interrupt at fffe")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "decoder: interrupt at fffe\n")

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	w.Reset()

	log.Log(logger.Allow, "capture", "capture.csv: 10 columns")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "decoder: interrupt at fffe\ncapture: capture.csv: 10 columns\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "decoder: interrupt at fffe\ncapture: capture.csv: 10 columns\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "decoder: interrupt at fffe\ncapture: capture.csv: 10 columns\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "capture: capture.csv: 10 columns\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

// test permissions by randomising whether logging is allowed or not. there's no
// need to do the randomisation but it's as good a demonstration as anything
// else I can think of
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	fmt.Println(w.String())
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	// test "wrapping" of errors using the %v verb
	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	fmt.Println(w.String())
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

// the Log() function explicitly handles Stringer types
type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\n")
}

// for explicitly unsupported types, the Log() function will log the detail
// argument using the %v verb from the fmt package
func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

// adjacent entries with the same tag and detail are folded into a single entry
func TestRepeatedLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail (repeat x3)\n")

	w.Reset()
	log.Log(logger.Allow, "tag", "other")
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "tag: other\n")
}

// the logger never holds more than the maximum number of entries
func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	for i := range 5 {
		log.Logf(logger.Allow, "tag", "%d", i)
	}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 2\ntag: 3\ntag: 4\n")
	test.ExpectEquality(t, len(log.Entries()), 3)
}

// echoed entries are written as they are logged. WriteRecent() only writes
// entries that have not been written by a previous call
func TestEchoAndRecent(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &strings.Builder{}
	log.SetEcho(echo)

	log.Log(logger.Allow, "tag", "first")
	test.ExpectEquality(t, echo.String(), "tag: first\n")

	w := &strings.Builder{}
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: first\n")

	log.Log(logger.Allow, "tag", "second")
	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: second\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "third")
	test.ExpectEquality(t, echo.String(), "tag: first\ntag: second\n")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	n, err := c.Write([]byte("tag: detail\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("tag: detail\n"))
	test.ExpectEquality(t, w.String(), ansi.DimPens["cyan"]+"tag"+ansi.NormalPen+": detail\n")
}
