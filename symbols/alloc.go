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
	"math"
	"os"

	"github.com/jetsetilly/symtbl/curated"
	"github.com/jetsetilly/symtbl/logger"
)

// exit is called after an allocation failure has been logged. replaced during
// testing.
var exit = os.Exit

// makeEntries creates the backing storage for a table. replaced during
// testing.
var makeEntries = func(capacity int) []Symbol {
	return make([]Symbol, 0, capacity)
}

// allocate returns empty storage with room for capacity entries. the second
// return value is false if the storage could not be created.
func allocate(capacity int) (entries []Symbol, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			entries = nil
			ok = false
		}
	}()
	return makeEntries(capacity), true
}

// grow doubles the capacity of the table. existing entries are copied to the
// new storage in the same order.
func (t *Table) grow() {
	c := cap(t.entries)
	if c > math.MaxInt/2 {
		t.allocationFailed()
	}

	entries, ok := allocate(c * 2)
	if !ok {
		t.allocationFailed()
	}

	t.entries = append(entries, t.entries...)
}

// allocationFailed is the only unrecoverable error. it does not return.
func (t *Table) allocationFailed() {
	t.log.Logf(logger.Allow, logTag, AllocationFailure)
	exit(1)

	// exit() only returns when it has been replaced for testing
	panic(curated.Errorf(AllocationFailure))
}
