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

// Package logger is the logging collaborator for the symbol tables and the
// assembler. Entries are made up of a tag and a detail string. Consecutive
// identical entries are collapsed into a single entry with a repeat count.
//
// A Logger instance can be created with NewLogger() but for most purposes the
// central logger, accessed through the package level functions, is all that
// is needed.
//
// Whether an entry is made is controlled by the Permission argument. The
// Allow value can be used when an entry should always be made.
package logger
