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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. Errorf() takes a pattern and the values for the pattern
// in the same way as the Errorf() function in the fmt package.
//
// The pattern is what distinguishes one curated error from another. Patterns
// that callers need to test for are stored as exported constants in the
// package that creates the error. For example, the capture package exports
// BadLevel:
//
//	const BadLevel = "capture: bad logic level: %v"
//
//	err := curated.Errorf(capture.BadLevel, "column 3 of row 10")
//
//	if curated.Is(err, capture.BadLevel) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere in
// the error chain. The decoder wraps errors from the capture as they are
// returned:
//
//	f := curated.Errorf("decoder: %v", err)
//
//	if curated.Has(f, capture.BadLevel) {
//		fmt.Println("true")
//	}
//
//	if curated.Is(f, capture.BadLevel) {
//		fmt.Println("true")
//	}
//
// Only the first test prints 'true'. Error f has the pattern "decoder: %v"
// and BadLevel is wrapped inside it.
//
// IsAny() returns true if the error was created by Errorf(). An error that
// is not curated is unexpected and is likely to have come from the standard
// library or from a third-party package without being wrapped.
//
// Error chains are composed of parts separated by the sub-string ": ". The
// Error() function removes duplicate adjacent parts so that a package can
// wrap an error without checking whether the package name is already at the
// head of the chain:
//
//	decoder: decoder: capture: bad logic level: "2" in column 3 of row 10
//
// is printed as:
//
//	decoder: capture: bad logic level: "2" in column 3 of row 10
//
// Curated errors also implement Unwrap() so the first error value given to
// Errorf() can be found with the errors.Is() and errors.As() functions of the
// standard library. The io.EOF returned at the end of a capture is checked
// for in this way.
package curated
