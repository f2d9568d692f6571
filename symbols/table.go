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
	"io"
	"strconv"
	"strings"

	"github.com/dolthub/swiss"
	"github.com/jetsetilly/symtbl/curated"
	"github.com/jetsetilly/symtbl/logger"
)

// the number of entries a new table has room for before growing.
const initialCapacity = 8

// Table maps symbol names to addresses. Entries are kept in insertion order.
type Table struct {
	mode Mode
	log  Logger

	// the length of the entries slice is the number of symbols in the table.
	// the capacity is managed by the grow() function
	entries []Symbol

	// position in entries of the first symbol with a given name
	index *swiss.Map[string, int]

	destroyed bool
}

// NewTable is the preferred method of initialisation for the Table type. The
// mode must be NonUnique or UniqueName. A nil Logger means that the central
// logger is used.
func NewTable(mode Mode, log Logger) *Table {
	if !mode.valid() {
		panic(fmt.Sprintf("symbols: %s", mode))
	}

	if log == nil {
		log = logger.Central()
	}

	t := &Table{
		mode: mode,
		log:  log,
	}

	entries, ok := allocate(initialCapacity)
	if !ok {
		t.allocationFailed()
	}
	t.entries = entries
	t.index = swiss.NewMap[string, int](initialCapacity)

	return t
}

// assertLive panics if the table has been destroyed.
func (t *Table) assertLive() {
	if t.destroyed {
		panic("symbols: use of destroyed table")
	}
}

// Mode returns the uniqueness policy of the table.
func (t *Table) Mode() Mode {
	t.assertLive()
	return t.mode
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	t.assertLive()
	return len(t.entries)
}

// Cap returns the number of entries the table can hold before it grows.
func (t *Table) Cap() int {
	t.assertLive()
	return cap(t.entries)
}

// Insert adds a new symbol to the end of the table. The address must be a
// multiple of four and, if the table was created with the UniqueName mode, the
// name must not already be in the table.
//
// The name is copied so the caller is free to reuse whatever storage it came
// from.
//
// A failed insertion leaves the table unchanged. The returned error will be a
// curated error with either the AddressMisaligned or DuplicateName pattern.
func (t *Table) Insert(name string, addr uint32) error {
	t.assertLive()

	if addr%4 != 0 {
		t.log.Logf(logger.Allow, logTag, AddressMisaligned)
		return curated.Errorf(AddressMisaligned)
	}

	_, found := t.index.Get(name)
	if found && t.mode == UniqueName {
		t.log.Logf(logger.Allow, logTag, DuplicateName, name)
		return curated.Errorf(DuplicateName, name)
	}

	if len(t.entries) == cap(t.entries) {
		t.grow()
	}

	name = strings.Clone(name)
	t.entries = append(t.entries, Symbol{Name: name, Address: addr})
	if !found {
		t.index.Put(name, len(t.entries)-1)
	}

	return nil
}

// Lookup returns the address of the symbol with the specified name. If there
// is more than one symbol with the name then the address of the first one
// inserted is returned. The second return value is false if the name is not
// in the table.
func (t *Table) Lookup(name string) (uint32, bool) {
	t.assertLive()

	i, ok := t.index.Get(name)
	if !ok {
		return 0, false
	}
	return t.entries[i].Address, true
}

// Symbols returns a copy of every entry in the table, in insertion order.
func (t *Table) Symbols() []Symbol {
	t.assertLive()

	c := make([]Symbol, len(t.entries))
	copy(c, t.entries)
	return c
}

// Serialize writes one line for every entry in the table, in insertion order.
// Each line is the decimal address, a tab character and the name. An empty
// table writes nothing.
//
// The writer is not closed or flushed. An error from the writer stops the
// serialisation and is returned as a curated error with the SerializeError
// pattern.
func (t *Table) Serialize(output io.Writer) error {
	t.assertLive()

	// line buffer is reused for every entry
	var b []byte

	for _, s := range t.entries {
		b = strconv.AppendUint(b[:0], uint64(s.Address), 10)
		b = append(b, '\t')
		b = append(b, s.Name...)
		b = append(b, '\n')

		n, err := output.Write(b)
		if err == nil && n < len(b) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return curated.Errorf(SerializeError, err)
		}
	}

	return nil
}

// Destroy releases all storage used by the table. Calling Destroy() more than
// once is allowed but no other function should be called on a destroyed
// table.
func (t *Table) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true

	clear(t.entries)
	t.entries = nil
	t.index.Clear()
	t.index = nil
}
