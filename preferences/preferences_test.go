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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mos6502bus/preferences"
	"github.com/jetsetilly/mos6502bus/prefs"
	"github.com/jetsetilly/mos6502bus/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	for i := range p.Data {
		test.ExpectEquality(t, p.Data[i].Get().(int), i)
	}
	test.ExpectEquality(t, p.RNW.Get().(int), 8)
	test.ExpectEquality(t, p.Sync.Get().(int), 9)
	test.ExpectEquality(t, p.Phi2.Get().(int), -1)
	test.ExpectEquality(t, p.Emulate.Get().(bool), false)
	test.ExpectEquality(t, p.Registers.Get().(bool), true)
	test.ExpectEquality(t, p.Policy.String(), preferences.PolicyEvery)
	test.ExpectEquality(t, p.StartPC.Get().(int), -1)
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Policy.Set("sometimes"))
	test.ExpectEquality(t, p.Policy.String(), preferences.PolicyEvery)
	test.ExpectSuccess(t, p.Policy.Set(preferences.PolicyClock))

	test.ExpectFailure(t, p.StartPC.Set(0x10000))
	test.ExpectFailure(t, p.StartPC.Set(-2))
	test.ExpectSuccess(t, p.StartPC.Set("4096"))
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Emulate.Set(true))
	test.ExpectSuccess(t, p.Sync.Set(11))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Emulate.Get().(bool), true)
	test.ExpectEquality(t, q.Sync.Get().(int), 11)

	// command line overrides
	test.ExpectSuccess(t, prefs.PushCommandLineStack("decode.policy::change"))
	q, err = preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Policy.String(), preferences.PolicyChange)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
