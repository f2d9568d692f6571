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

package symbols_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/symtbl/logger"
	"github.com/jetsetilly/symtbl/symbols"
	"github.com/jetsetilly/symtbl/test"
)

func TestList(t *testing.T) {
	tbl := symbols.NewTable(symbols.UniqueName, logger.NewLogger(10))
	defer tbl.Destroy()

	test.ExpectSuccess(t, tbl.Insert("START", 0))
	test.ExpectSuccess(t, tbl.Insert("LOOP", 0x40))

	w := &test.Writer{}
	tbl.List(w)
	s := w.String()

	test.ExpectSuccess(t, strings.Contains(s, "Address"))
	test.ExpectSuccess(t, strings.Contains(s, "START"))
	test.ExpectSuccess(t, strings.Contains(s, "0x00000040"))
	test.ExpectSuccess(t, strings.Index(s, "START") < strings.Index(s, "LOOP"))
}

func TestVisualise(t *testing.T) {
	tbl := symbols.NewTable(symbols.NonUnique, logger.NewLogger(10))
	defer tbl.Destroy()

	test.ExpectSuccess(t, tbl.Insert("START", 0))

	w := &test.Writer{}
	tbl.Visualise(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
