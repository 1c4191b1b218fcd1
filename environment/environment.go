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

// Package environment provides the context for a decoding session.
package environment

import (
	"github.com/jetsetilly/mos6502bus/preferences"
)

// Label is used to name the environment
type Label string

// MainDecoder is the label of the environment used for decoding a capture
// from the command line.
const MainDecoder = Label("")

// Environment is used to provide context for a decoder. Particularly useful
// when more than one decoder is in use, for example in testing.
type Environment struct {
	Label Label

	// the decoder preferences
	Prefs *preferences.Preferences

	// whether logging is allowed. only the main decoder logs by default
	quiet bool
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can by nil, in which case a new Preferences instance
// will be created from the default preferences file.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
		quiet: label != MainDecoder,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return !env.quiet
}

// SetQuiet prevents the environment from creating new log entries.
func (env *Environment) SetQuiet(quiet bool) {
	env.quiet = quiet
}

// IsMainDecoder returns true if the environment is intended for the main
// decoder
func (env *Environment) IsMainDecoder() bool {
	return env.Label == MainDecoder
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() error {
	return env.Prefs.SetDefaults()
}
