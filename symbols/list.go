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

	"github.com/bradleyjkemp/memviz"
	"github.com/olekukonko/tablewriter"
)

// List writes a human readable listing of the table. Unlike Serialize() the
// format of the listing is not fixed and should not be parsed.
func (t *Table) List(output io.Writer) {
	t.assertLive()

	tw := tablewriter.NewWriter(output)
	tw.SetHeader([]string{"#", "Address", "Symbol"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, s := range t.entries {
		tw.Append([]string{
			strconv.Itoa(i),
			fmt.Sprintf("%#08x", s.Address),
			s.Name,
		})
	}
	tw.SetCaption(true, fmt.Sprintf("%d symbols (%s)", len(t.entries), t.mode))
	tw.Render()
}

// Visualise writes a graphviz description of the table's entries and how
// they are stored.
func (t *Table) Visualise(output io.Writer) {
	t.assertLive()

	v := struct {
		Mode     string
		Capacity int
		Entries  []Symbol
	}{
		Mode:     t.mode.String(),
		Capacity: cap(t.entries),
		Entries:  t.entries,
	}

	memviz.Map(output, &v)
}
