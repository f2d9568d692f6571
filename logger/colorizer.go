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

package logger

import (
	"bytes"
	"io"

	"github.com/fatih/color"
)

// Colorizer applies basic colouring rules to logging output. The tag part of
// an entry is printed in a dim colour and entries with a detail beginning
// with "Error" are printed in red.
type Colorizer struct {
	out io.Writer
	tag *color.Color
	err *color.Color
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out: out,
		tag: color.New(color.Faint),
		err: color.New(color.FgRed),
	}
}

// Write implements the io.Writer interface. Each call is expected to contain
// exactly one log entry, which is how the Logger type writes to echo.
func (c Colorizer) Write(p []byte) (int, error) {
	tag, detail, ok := bytes.Cut(p, []byte(": "))
	if !ok {
		return c.out.Write(p)
	}

	if _, err := c.tag.Fprintf(c.out, "%s: ", tag); err != nil {
		return 0, err
	}

	var err error
	if bytes.HasPrefix(detail, []byte("Error")) {
		_, err = c.err.Fprint(c.out, string(detail))
	} else {
		_, err = c.out.Write(detail)
	}
	if err != nil {
		return len(tag) + 2, err
	}

	return len(p), nil
}
