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

package symbols

// SetExit replaces the function called after an allocation failure. The
// returned function restores the original.
func SetExit(f func(int)) func() {
	o := exit
	exit = f
	return func() { exit = o }
}

// SetMakeEntries replaces the function used to create table storage. The
// returned function restores the original.
func SetMakeEntries(f func(int) []Symbol) func() {
	o := makeEntries
	makeEntries = f
	return func() { makeEntries = o }
}
