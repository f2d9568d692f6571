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

import (
	"fmt"

	"github.com/jetsetilly/symtbl/logger"
)

// Mode is the uniqueness policy of a Table.
type Mode int

// List of valid Mode values.
const (
	// duplicate names are permitted
	NonUnique Mode = iota

	// duplicate names are rejected
	UniqueName
)

func (m Mode) String() string {
	switch m {
	case NonUnique:
		return "non-unique"
	case UniqueName:
		return "unique name"
	}
	return fmt.Sprintf("invalid mode (%d)", int(m))
}

func (m Mode) valid() bool {
	return m == NonUnique || m == UniqueName
}

// Symbol is a single entry in the table.
type Symbol struct {
	Name    string
	Address uint32
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d\t%s", s.Address, s.Name)
}

// Patterns for the curated errors created by the symbols package. The
// patterns are also the detail string of the log entries.
const (
	AllocationFailure = "Error: allocation failed"
	AddressMisaligned = "Error: address is not a multiple of 4."
	DuplicateName     = "Error: name '%s' already exists in table."
	SerializeError    = "symbols: serialize: %v"
)

// tag used for all log entries made by the package
const logTag = "symbols"

// Logger is the logging collaborator of a Table. The logger.Logger type
// satisfies this interface.
type Logger interface {
	Logf(perm logger.Permission, tag string, detail string, args ...any)
}
