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

package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502bus/version"
	"github.com/jetsetilly/mos6502bus/test"
)

func TestVersion(t *testing.T) {
	v, r, _ := version.Version()
	test.ExpectInequality(t, v, "")
	test.ExpectInequality(t, r, "")
	test.ExpectSuccess(t, strings.HasPrefix(version.String(), version.ApplicationName))
	test.ExpectInequality(t, version.GoVersion(), "")

	// tests are never built as a release
	_, _, release := version.Version()
	test.ExpectFailure(t, release)
	test.ExpectSuccess(t, strings.HasSuffix(version.String(), ")"))
}
