// This file is part of symtbl.
//
// symtbl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// symtbl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with symtbl.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is remembered and is
// what identifies the error:
//
//	const DuplicateName = "duplicate name: %s"
//
//	e := curated.Errorf(DuplicateName, "LOOP")
//
//	if curated.Is(e, DuplicateName) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A curated error that has another error among its values is
// considered to wrap that error.
//
//	f := curated.Errorf("line %d: %v", 10, e)
//
//	if curated.Has(f, DuplicateName) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of this as the difference between 'expected'
// and 'unexpected' errors.
//
// The Error() function implementation for curated errors ensures that the
// error chain does not contain duplicate adjacent parts, where parts are
// separated by the sub-string ': '. For example, an error wrapped as
// "error: %v" around an error "error: not yet implemented" will print as:
//
//	error: not yet implemented
//
// and not:
//
//	error: error: not yet implemented
//
// Sentinel patterns should be stored as exported const strings by the package
// that creates them.
package curated
