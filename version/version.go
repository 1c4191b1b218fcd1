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

// Package version reports the name and version of the application. The
// version number is set by the linker when building a release, for example:
//
//	go build -ldflags "-X github.com/jetsetilly/mos6502bus/version.number=v0.1.0"
//
// Otherwise the version is taken from the version control information
// embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the application.
const ApplicationName = "mos6502bus"

// set by the linker for release builds
var number string

// the values returned by Version(). see the comments for that function
var (
	version   string
	revision  string
	goVersion string
)

// String returns the application name and version in a form suitable for
// display. The revision is included if this is not a release version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version is "unreleased" if the application was built from a
// repository without a version number and "local" if there is no version
// control information at all, as happens with "go run".
//
// The revision is suffixed with "+dirty" if the source had uncommitted
// changes.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// GoVersion returns the version of the Go toolchain used to build the
// application.
func GoVersion() string {
	return goVersion
}

// vcsInfo extracts the version control settings from the build information
func vcsInfo(info *debug.BuildInfo) (present bool, rev string, modified bool) {
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			present = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return present, rev, modified
}

func init() {
	var present bool
	var rev string
	var modified bool

	goVersion = "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		present, rev, modified = vcsInfo(info)
		goVersion = info.GoVersion
	}

	switch {
	case rev == "":
		revision = "no revision information"
	case modified:
		revision = rev + "+dirty"
	default:
		revision = rev
	}

	switch {
	case number != "":
		version = number
	case present:
		version = "unreleased"
	default:
		version = "local"
	}
}
