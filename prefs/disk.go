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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/mos6502bus/curated"
)

// Sentinal error patterns.
const (
	NoPrefsFile = "prefs: no prefs file (%s)"
	BadPrefsKey = "prefs: key %q already added to disk"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the prefs file.
const separator = " :: "

// Disk represents preference values as stored on disk. Values are added
// to the Disk with Add() and will be written to and read from the prefs file
// with Save() and Load().
//
// Entries in the prefs file that have not been added to the Disk are
// preserved when the file is saved. This means more than one Disk can share
// the same prefs file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for prefs file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key is
// the name of the value in the prefs file and must be unique.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(BadPrefsKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their default values.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// readFile reads the key/value pairs in the prefs file. A missing file is
// reported with the NoPrefsFile error.
func (dsk *Disk) readFile() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	kv := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line == WarningBoilerPlate {
			continue
		}

		k, v, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}

		kv[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return kv, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	kv, err := dsk.readFile()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		kv = make(map[string]string)
	}

	// entries in this Disk take precedence over what is in the file
	for k, p := range dsk.entries {
		kv[k] = p.String()
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, kv[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values found in the current command line
// group (see PushCommandLineStack()) override the values found on disk.
//
// If saveOnFail is true and the prefs file does not exist then the current
// values are written to a new prefs file. The NoPrefsFile error is still
// returned.
func (dsk *Disk) Load(saveOnFail bool) error {
	kv, err := dsk.readFile()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFail {
			if serr := dsk.Save(); serr != nil {
				return serr
			}
		}
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
	}

	for k, v := range kv {
		if p, ok := dsk.entries[k]; ok {
			if serr := p.Set(v); serr != nil {
				return fmt.Errorf("prefs: %s: %w", k, serr)
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if serr := p.Set(v); serr != nil {
				return fmt.Errorf("prefs: %s: %w", k, serr)
			}
		}
	}

	return err
}
