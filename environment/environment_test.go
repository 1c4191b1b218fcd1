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

package environment_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502bus/environment"
	"github.com/jetsetilly/mos6502bus/logger"
	"github.com/jetsetilly/mos6502bus/preferences"
	"github.com/jetsetilly/mos6502bus/test"
)

func TestPermission(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	log := logger.NewLogger(10)
	w := &strings.Builder{}

	env, err := environment.NewEnvironment(environment.MainDecoder, p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.IsMainDecoder())
	log.Log(env, "test", "main")

	other, err := environment.NewEnvironment("other", p)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.IsMainDecoder())
	log.Log(other, "test", "other")

	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: main\n")

	env.SetQuiet(true)
	log.Log(env, "test", "quiet")
	w.Reset()
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: main\n")
}

func TestNormalise(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(environment.MainDecoder, p)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, env.Prefs.Emulate.Set(true))
	test.ExpectSuccess(t, env.Normalise())
	test.ExpectEquality(t, env.Prefs.Emulate.Get().(bool), false)
}
