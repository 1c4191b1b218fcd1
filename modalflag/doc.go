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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select a mode of operation, each mode with its own set of
// flags and arguments.
//
// Unlike flag.FlagSet, the arguments are supplied once with NewArgs() and
// each call to Parse() consumes the flags for the current mode. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("decode", "disasm", "convert")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After the first call to Parse() the Mode() function returns the selected
// mode, always in upper case. The first mode in the list given to
// AddSubModes() is the default and is selected when the first non-flag
// argument is not a mode name.
//
// Each mode then calls NewMode() to begin a new set of flags before calling
// Parse() again:
//
//	switch md.Mode() {
//	case "DECODE":
//		md.NewMode()
//		emulate := md.AddBool("emulate", false, "emulate register values")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		decode(*emulate, md.RemainingArgs())
//	}
//
// Modes can be nested as deeply as required. The Path() function returns the
// route taken through the modes, separated by a slash.
package modalflag
