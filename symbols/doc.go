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

// Package symbols implements the symbol table used by the assembler. A Table
// is an ordered list of Symbol entries, each entry being a name and a word
// aligned 32 bit address. Entries are kept in the order they were inserted
// and that order is reproduced when the table is serialised.
//
// A Table is created with NewTable(). The Mode argument decides whether
// duplicate names are allowed (NonUnique) or rejected (UniqueName). The mode
// cannot be changed after creation.
//
//	tbl := symbols.NewTable(symbols.UniqueName, nil)
//	defer tbl.Destroy()
//
//	err := tbl.Insert("LOOP", 0)
//	addr, ok := tbl.Lookup("LOOP")
//
// Errors returned by Insert() are curated errors and can be tested with the
// AddressMisaligned and DuplicateName patterns:
//
//	if curated.Is(err, symbols.DuplicateName) {
//		...
//	}
//
// A failed lookup is not an error. Lookup() returns false in the second
// return value.
//
// Serialize() writes the table in the two column format:
//
//	<decimal address><TAB><name><NEWLINE>
//
// one line for each entry. An empty table writes nothing.
//
// The only unrecoverable condition is failing to allocate storage for the
// table. In that case the failure is logged and the program exits.
//
// A Table is not safe for concurrent use. Different tables share no state.
package symbols
