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
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/mos6502bus/curated"
)

// BadCommandLine is returned by PushCommandLineStack() when an entry is not a
// key::value pair.
const BadCommandLine = "prefs: bad command line entry (%s)"

// group is one set of preferences given on the command line. values are kept
// as strings and converted by the Set() function of the preference
type group map[string]string

// String returns the entries in key order, in the same form as accepted by
// PushCommandLineStack().
func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, g[k]))
	}
	return strings.Join(s, "; ")
}

// the top of the stack is the last group pushed
var commandLine []group

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	return len(commandLine)
}

// PushCommandLineStack parses a list of key::value pairs separated by
// semi-colons and pushes them onto the stack as a new group. For example:
//
//	decode.emulate::true; channels.sync::9
//
// Empty entries are ignored. Nothing is pushed if any entry is malformed.
func PushCommandLineStack(prefs string) error {
	g := make(group)

	for entry := range strings.SplitSeq(prefs, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, value, ok := strings.Cut(entry, "::")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return curated.Errorf(BadCommandLine, entry)
		}

		g[key] = strings.TrimSpace(value)
	}

	commandLine = append(commandLine, g)

	return nil
}

// PopCommandLineStack removes the group at the top of the stack. Returns the
// entries in the group that were never retrieved with GetCommandLinePref().
func PopCommandLineStack() string {
	if len(commandLine) == 0 {
		return ""
	}

	g := commandLine[len(commandLine)-1]
	commandLine = commandLine[:len(commandLine)-1]

	return g.String()
}

// GetCommandLinePref returns the value for the key in the group at the top
// of the stack. An entry can only be retrieved once.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLine) == 0 {
		return false, nil
	}

	g := commandLine[len(commandLine)-1]

	v, ok := g[key]
	if !ok {
		return false, nil
	}
	delete(g, key)

	return true, v
}
