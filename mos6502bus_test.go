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

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502bus/capture"
	"github.com/jetsetilly/mos6502bus/test"
)

// captureRow returns a line of CSV in the default channel order: D0 to D7,
// RNW and then SYNC
func captureRow(data uint8, rnw bool, sync bool) string {
	f := make([]string, 0, 10)
	for i := range 8 {
		f = append(f, fmt.Sprintf("%d", (data>>i)&0x01))
	}
	for _, b := range []bool{rnw, sync} {
		if b {
			f = append(f, "1")
		} else {
			f = append(f, "0")
		}
	}
	return strings.Join(f, ",")
}

// writeCapture creates a CSV capture of LDA #$42 followed by JMP $2000
func writeCapture(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	rows := []string{
		captureRow(0xa9, true, true),
		captureRow(0x42, true, false),
		captureRow(0x4c, true, true),
		captureRow(0x00, true, false),
		captureRow(0x20, true, false),
	}

	filename := filepath.Join(dir, "capture.csv")
	err := os.WriteFile(filename, []byte(strings.Join(rows, "\n")+"\n"), 0o600)
	test.DemandSuccess(t, err)

	return filename, filepath.Join(dir, "preferences")
}

func TestParseStartPC(t *testing.T) {
	for s, expected := range map[string]int{
		"":       -1,
		"?":      -1,
		"1000":   0x1000,
		"$fffc":  0xfffc,
		"0xABCD": 0xabcd,
	} {
		pc, err := parseStartPC(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, pc, expected, s)
	}

	_, err := parseStartPC("10000")
	test.ExpectFailure(t, err)
	_, err = parseStartPC("zz")
	test.ExpectFailure(t, err)
}

func TestParseRows(t *testing.T) {
	rows, err := parseRows("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rows == nil, true)

	rows, err = parseRows("instructions, registers")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(rows), 2)

	_, err = parseRows("instructions,nonsense")
	test.ExpectFailure(t, err)
}

func TestDecode(t *testing.T) {
	filename, prefsFile := writeCapture(t)

	w := &test.Writer{}
	v := launch(context.Background(), []string{"DECODE", "-prefsfile", prefsFile, "-pc", "1000", "-rows", "instructions", filename}, w)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, w.String(),
		"         0          2 instructions instr 1000 LDA #42\n"+
			"         2          5 instructions instr 1002 JMP 2000\n")

	// the decode mode is the default
	w.Clear()
	v = launch(context.Background(), []string{"-prefsfile", prefsFile, "-rows", "cycle", filename}, w)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, strings.Count(w.String(), "\n"), 5)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "         0          1 cycle        fetch Fetch\n"))
}

func TestDecodeCancelled(t *testing.T) {
	filename, prefsFile := writeCapture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &test.Writer{}
	v := launch(ctx, []string{"DECODE", "-prefsfile", prefsFile, filename}, w)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestDisasm(t *testing.T) {
	filename, prefsFile := writeCapture(t)

	w := &test.Writer{}
	v := launch(context.Background(), []string{"DISASM", "-prefsfile", prefsFile, "-pc", "$1000", "-bytecode", filename}, w)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, w.String(), "1000 A9 42    LDA #42  2\n1002 4C 00 20 JMP 2000 3\n")
}

func TestSavePreferences(t *testing.T) {
	filename, prefsFile := writeCapture(t)

	w := &test.Writer{}
	v := launch(context.Background(), []string{"DISASM", "-prefsfile", prefsFile, "-pc", "1000", "-save", filename}, w)
	test.ExpectEquality(t, v, 0)

	// the start address is now remembered
	w.Clear()
	v = launch(context.Background(), []string{"DISASM", "-prefsfile", prefsFile, "-cycles=false", filename}, w)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, w.String(), "1000 LDA #42\n1002 JMP 2000\n")
}

func TestCommandLinePreferences(t *testing.T) {
	filename, prefsFile := writeCapture(t)

	w := &test.Writer{}
	v := launch(context.Background(), []string{"DISASM", "-prefsfile", prefsFile, "-prefs", "decode.startpc::4096", "-cycles=false", filename}, w)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, w.String(), "1000 LDA #42\n1002 JMP 2000\n")

	w.Clear()
	v = launch(context.Background(), []string{"DISASM", "-prefsfile", prefsFile, "-prefs", "decode.startpc", filename}, w)
	test.ExpectEquality(t, v, 20)
}

func TestConvert(t *testing.T) {
	filename, _ := writeCapture(t)
	wavFile := filepath.Join(t.TempDir(), "capture.wav")

	w := &test.Writer{}
	v := launch(context.Background(), []string{"CONVERT", filename, wavFile}, w)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, w.String(), fmt.Sprintf("5 rows written to %s\n", wavFile))

	cf, err := capture.Open(wavFile, 0)
	test.DemandSuccess(t, err)
	defer cf.Close()
	test.ExpectEquality(t, cf.Columns(), 10)

	_, row, err := cf.NextRow()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, row.String(), "1001010111")
}

func TestTable(t *testing.T) {
	w := &test.Writer{}
	v := launch(context.Background(), []string{"TABLE"}, w)
	test.ExpectEquality(t, v, 0)

	lines := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	test.ExpectEquality(t, len(lines), 256)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0x00], "00 BRK"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[0xa9], "a9 LDA"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[0xff], "ff BBS7"))
}

func TestErrors(t *testing.T) {
	w := &test.Writer{}
	v := launch(context.Background(), []string{"DECODE"}, w)
	test.ExpectEquality(t, v, 20)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in DECODE mode: capture file required"))

	w.Clear()
	v = launch(context.Background(), []string{"-nonsense"}, w)
	test.ExpectEquality(t, v, 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "flag provided but not defined: -nonsense"))

	w.Clear()
	v = launch(context.Background(), []string{"DECODE", "-rows", "nonsense", "capture.csv"}, w)
	test.ExpectEquality(t, v, 20)

	w.Clear()
	v = launch(context.Background(), []string{"TABLE", "extra"}, w)
	test.ExpectEquality(t, v, 20)
}

func TestVersion(t *testing.T) {
	w := &test.Writer{}
	v := launch(context.Background(), []string{"VERSION"}, w)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "mos6502bus "))
}
