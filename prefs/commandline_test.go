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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/mos6502bus/curated"
	"github.com/jetsetilly/mos6502bus/prefs"
	"github.com/jetsetilly/mos6502bus/test"
)

func TestCommandLineEntries(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectSuccess(t, prefs.PushCommandLineStack("decode.emulate::true"))
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "decode.emulate::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// white space around keys and values is removed. entries are returned in
	// key order
	test.ExpectSuccess(t, prefs.PushCommandLineStack("  decode.policy :: clock ; channels.sync::9;"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "channels.sync::9; decode.policy::clock")

	// a value can be empty
	test.ExpectSuccess(t, prefs.PushCommandLineStack("decode.startpc::"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "decode.startpc::")

	// malformed entries
	err := prefs.PushCommandLineStack("decode.emulate")
	test.ExpectSuccess(t, curated.Is(err, prefs.BadCommandLine))
	err = prefs.PushCommandLineStack("channels.sync::9; ::true")
	test.ExpectSuccess(t, curated.Is(err, prefs.BadCommandLine))
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineRetrieval(t *testing.T) {
	ok, _ := prefs.GetCommandLinePref("channels.rnw")
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, prefs.PushCommandLineStack("channels.rnw::8; channels.phi2::10"))

	ok, v := prefs.GetCommandLinePref("channels.rnw")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "8")

	// entries can only be retrieved once
	ok, _ = prefs.GetCommandLinePref("channels.rnw")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "channels.phi2::10")
}

func TestCommandLineGroups(t *testing.T) {
	test.ExpectSuccess(t, prefs.PushCommandLineStack("channels.d0::0"))
	test.ExpectSuccess(t, prefs.PushCommandLineStack("channels.d0::7"))

	// only the top group is consulted
	ok, v := prefs.GetCommandLinePref("channels.d0")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "7")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "channels.d0::0")
}
