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

package assembler

import (
	"bytes"

	"github.com/jetsetilly/symtbl/symbols"
)

// Program is the result of assembling a source.
type Program struct {
	// label definitions. created with the UniqueName mode
	Symbols *symbols.Table

	// references to labels not in the Symbols table. created with the
	// NonUnique mode
	Relocations *symbols.Table

	// every label reference in the source, in order
	References []Reference

	// the number of instructions in the source
	Instructions int
}

// Assemble runs both passes over the source. The log argument is given to the
// symbol and relocation tables and can be nil.
//
// Pass two is not run if pass one fails. The returned Program is never nil
// and should be destroyed by the caller even when an error is returned.
func Assemble(src []byte, log symbols.Logger) (*Program, error) {
	p := &Program{
		Symbols:     symbols.NewTable(symbols.UniqueName, log),
		Relocations: symbols.NewTable(symbols.NonUnique, log),
	}

	var err error

	p.Instructions, err = PassOne(bytes.NewReader(src), p.Symbols)
	if err != nil {
		return p, err
	}

	p.References, err = PassTwo(bytes.NewReader(src), p.Symbols, p.Relocations)
	if err != nil {
		return p, err
	}

	return p, nil
}

// Destroy the tables used by the program.
func (p *Program) Destroy() {
	p.Symbols.Destroy()
	p.Relocations.Destroy()
}
