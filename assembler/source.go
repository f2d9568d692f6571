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
	"bufio"
	"io"
	"strings"
)

// the size in bytes of every instruction.
const instructionSize = 4

// line is a single line of source after comments have been removed and the
// label and instruction have been separated.
type line struct {
	num int

	// label defined on this line. empty if there is no label
	label    string
	hasLabel bool

	// mnemonic and operands of the instruction. mnemonic is empty if there
	// is no instruction on the line
	mnemonic string
	operands []string
}

// scan splits the source into lines and calls f for each one. numbering of
// lines begins at 1.
func scan(r io.Reader, f func(l line)) error {
	s := bufio.NewScanner(r)
	num := 0
	for s.Scan() {
		num++
		f(split(num, s.Text()))
	}
	return s.Err()
}

func split(num int, text string) line {
	l := line{num: num}

	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return l
	}

	if strings.HasSuffix(fields[0], ":") {
		l.label = strings.TrimSuffix(fields[0], ":")
		l.hasLabel = true
		fields = fields[1:]
	}

	if len(fields) == 0 {
		return l
	}

	l.mnemonic = strings.ToLower(fields[0])

	// operands are separated by commas. whitespace around the commas is
	// optional
	ops := strings.Join(fields[1:], " ")
	if ops != "" {
		for _, o := range strings.Split(ops, ",") {
			l.operands = append(l.operands, strings.TrimSpace(o))
		}
	}

	return l
}

// validLabel returns true if s begins with a letter or underscore and
// contains only letters, digits and underscores.
func validLabel(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// instructions whose final operand can be a label
var branches = map[string]bool{
	"j":   true,
	"jal": true,
	"b":   true,
	"beq": true,
	"bne": true,
	"blt": true,
	"bgt": true,
	"ble": true,
	"bge": true,
	"la":  true,
}

// target returns the label referred to by the instruction. the second return
// value is false if the instruction does not refer to a label.
func (l line) target() (string, bool) {
	if !branches[l.mnemonic] || len(l.operands) == 0 {
		return "", false
	}
	t := l.operands[len(l.operands)-1]
	if !validLabel(t) {
		return "", false
	}
	return t, true
}
