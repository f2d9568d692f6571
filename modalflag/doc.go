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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given with NewArgs() and parsed with Parse(). Non-flag
// arguments can be retrieved afterwards with RemainingArgs() or GetArg():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("LABELS", "ASSEMBLE")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, each with its own flags and arguments. The
// first sub-mode given to AddSubModes() is the default and is selected when
// the first argument is not a recognised mode. Sub-mode comparisons are case
// insensitive.
//
// After a mode has been selected, NewMode() begins a new set of flags for
// that mode and the next call to Parse() continues from where the previous
// one stopped. The Mode() function returns the most recently selected mode
// and Path() returns every mode selected so far, separated by a slash.
//
// Help messages, requested with -help, are printed to the Output field of the
// Modes type. The flag package's help output is supplemented with the list
// of sub-modes and any text given to AdditionalHelp().
package modalflag
