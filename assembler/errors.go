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
	"github.com/jetsetilly/symtbl/curated"
)

// Patterns for the curated errors created by the assembler package.
const (
	SourceError  = "line %d: %v"
	InvalidLabel = "invalid label name '%s'"
	PassFailed   = "%s: %v (and %d more errors)"
	ReadError    = "%s: reading source: %v"
)

// errorList collects errors during a pass so that every problem in the source
// is reported, not just the first.
type errorList struct {
	pass string
	errs []error
}

func (e *errorList) add(num int, err error) {
	e.errs = append(e.errs, curated.Errorf(SourceError, num, err))
}

// result returns nil if no errors have been added. otherwise the first error
// is returned, wrapped in an error that includes the number of other errors.
func (e *errorList) result() error {
	switch len(e.errs) {
	case 0:
		return nil
	case 1:
		return curated.Errorf("%s: %v", e.pass, e.errs[0])
	}
	return curated.Errorf(PassFailed, e.pass, e.errs[0], len(e.errs)-1)
}
