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
	"io"

	"github.com/jetsetilly/symtbl/curated"
	"github.com/jetsetilly/symtbl/symbols"
)

// PassOne records the address of every label in the source in the symbol
// table. Processing continues after an error so that every problem is found.
//
// The number of instructions found is returned along with any error.
func PassOne(r io.Reader, symtbl *symbols.Table) (int, error) {
	errs := errorList{pass: "pass one"}
	count := 0

	err := scan(r, func(l line) {
		if l.hasLabel {
			if !validLabel(l.label) {
				errs.add(l.num, curated.Errorf(InvalidLabel, l.label))
			} else if err := symtbl.Insert(l.label, uint32(count*instructionSize)); err != nil {
				errs.add(l.num, err)
			}
		}
		if l.mnemonic != "" {
			count++
		}
	})
	if err != nil {
		return count, curated.Errorf(ReadError, errs.pass, err)
	}

	return count, errs.result()
}

// Reference is a use of a label by an instruction.
type Reference struct {
	// line number of the instruction
	Line int

	// address of the instruction
	Address uint32

	// the label named by the instruction
	Label string

	// the address of the label. only valid if Resolved is true
	Target   uint32
	Resolved bool
}

// PassTwo finds every instruction that refers to a label. Labels that are in
// the symbol table are resolved. References to labels that are not in the
// symbol table are added to the relocation table, with the address of the
// referring instruction.
func PassTwo(r io.Reader, symtbl *symbols.Table, reltbl *symbols.Table) ([]Reference, error) {
	errs := errorList{pass: "pass two"}
	var refs []Reference
	count := 0

	err := scan(r, func(l line) {
		if l.mnemonic == "" {
			return
		}

		addr := uint32(count * instructionSize)
		count++

		label, ok := l.target()
		if !ok {
			return
		}

		ref := Reference{
			Line:    l.num,
			Address: addr,
			Label:   label,
		}
		ref.Target, ref.Resolved = symtbl.Lookup(label)
		if !ref.Resolved {
			if err := reltbl.Insert(label, addr); err != nil {
				errs.add(l.num, err)
			}
		}

		refs = append(refs, ref)
	})
	if err != nil {
		return refs, curated.Errorf(ReadError, errs.pass, err)
	}

	return refs, errs.result()
}
