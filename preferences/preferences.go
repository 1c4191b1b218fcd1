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

// Package preferences collates the preference values used when decoding a bus
// capture. The values are stored on disk with the prefs package.
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502bus/curated"
	"github.com/jetsetilly/mos6502bus/logger"
	"github.com/jetsetilly/mos6502bus/paths"
	"github.com/jetsetilly/mos6502bus/prefs"
)

// the name of the preferences file in the resource directory
const prefsFile = "preferences"

// Sampling policies. See the capture package for details.
const (
	PolicyEvery  = "every"
	PolicyChange = "change"
	PolicyClock  = "clock"
)

// Preferences defines and collates all the preference values used by the
// decoder and the capture harness.
type Preferences struct {
	dsk *prefs.Disk

	// the capture column for each data line. index 0 is D0
	Data [8]prefs.Int

	// the capture column of the read/write line. high for read
	RNW prefs.Int

	// the capture column of the SYNC line. high during opcode fetch
	Sync prefs.Int

	// the capture column of the PHI2 clock. a value of -1 indicates that the
	// clock line is not present in the capture
	Phi2 prefs.Int

	// run the register emulation alongside the decoder
	Emulate prefs.Bool

	// emit register annotations (requires Emulate)
	Registers prefs.Bool

	// how capture rows are turned into bus samples: every, change or clock
	Policy prefs.String

	// the program counter at the start of the capture. a value of -1
	// indicates that the program counter is unknown until it is established
	// by a jump, call or return
	StartPC prefs.Int
}

func (p *Preferences) String() string {
	s := strings.Builder{}
	for i := range p.Data {
		s.WriteString(fmt.Sprintf("D%d=%s ", i, p.Data[i].String()))
	}
	s.WriteString(fmt.Sprintf("RNW=%s SYNC=%s PHI2=%s ", p.RNW.String(), p.Sync.String(), p.Phi2.String()))
	s.WriteString(fmt.Sprintf("emulate=%s registers=%s policy=%s startpc=%s",
		p.Emulate.String(), p.Registers.String(), p.Policy.String(), p.StartPC.String()))
	return s.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The preferences are loaded from the default location.
func NewPreferences() (*Preferences, error) {
	return NewPreferencesFromFile(paths.ResourcePath("", prefsFile))
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit path
// to the preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	for i := range p.Data {
		p.Data[i].SetDefault(i)
	}
	p.RNW.SetDefault(8)
	p.Sync.SetDefault(9)
	p.Phi2.SetDefault(-1)
	p.Emulate.SetDefault(false)
	p.Registers.SetDefault(true)
	p.Policy.SetDefault(PolicyEvery)
	p.StartPC.SetDefault(-1)

	p.Policy.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case PolicyEvery, PolicyChange, PolicyClock:
			return nil
		}
		return curated.Errorf("preferences: unknown sampling policy (%v)", v)
	})

	p.StartPC.SetHookPre(func(v prefs.Value) error {
		if pc := v.(int); pc < -1 || pc > 0xffff {
			return curated.Errorf("preferences: start PC out of range (%v)", v)
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for i := range p.Data {
		if err := p.dsk.Add(fmt.Sprintf("channels.d%d", i), &p.Data[i]); err != nil {
			return nil, err
		}
	}
	if err := p.dsk.Add("channels.rnw", &p.RNW); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("channels.sync", &p.Sync); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("channels.phi2", &p.Phi2); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("decode.emulate", &p.Emulate); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("decode.registers", &p.Registers); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("decode.policy", &p.Policy); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("decode.startpc", &p.StartPC); err != nil {
		return nil, err
	}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
		logger.Logf(logger.Allow, "prefs", "no preferences file at %s", pth)
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() error {
	return p.dsk.Reset()
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return err
	}
	logger.Log(logger.Allow, "prefs", "preferences saved")
	return nil
}
