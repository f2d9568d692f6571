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

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/symtbl/assembler"
	"github.com/jetsetilly/symtbl/logger"
	"github.com/jetsetilly/symtbl/modalflag"
	"github.com/jetsetilly/symtbl/statsview"
	"github.com/jetsetilly/symtbl/symbols"
	"github.com/jetsetilly/symtbl/version"
)

// exit values returned by launch()
const (
	exitOK       = 0
	exitArgError = 10
	exitModeErr  = 20
)

const formatHelp = `Tables are written one symbol per line: the decimal address, a tab and the
symbol name. Use -list for a human readable listing instead.`

const relocsHelp = `Without -relocs the relocation table is written to stdout immediately after
the symbol table, with no separator. Use -relocs to keep the tables apart.`

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit().
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("LABELS", "ASSEMBLE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitArgError
	}

	switch md.Mode() {
	case "LABELS":
		err = labels(md, stdout, stderr)

	case "ASSEMBLE":
		err = assemble(md, stdout, stderr)

	case "VERSION":
		fmt.Fprintln(stdout, version.String())
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md, err)
		return exitModeErr
	}

	return exitOK
}

// flags common to all modes
type options struct {
	output    *string
	log       *bool
	color     *bool
	list      *bool
	memviz    *string
	statsview *bool
}

func addOptions(md *modalflag.Modes) options {
	md.AdditionalHelp(formatHelp)
	return options{
		output:    md.AddString("o", "", "write symbol table to file (default stdout)"),
		log:       md.AddBool("log", false, "echo log to stderr"),
		color:     md.AddBool("color", false, "colorize echoed log"),
		list:      md.AddBool("list", false, "write human readable listing of tables"),
		memviz:    md.AddString("memviz", "", "write graphviz description of symbol table to file"),
		statsview: md.AddBool("statsview", false, "run stats server"),
	}
}

// prepare sets up logging and the stats server according to the options.
// the returned function should be called when the mode has finished.
func (opts options) prepare(stderr io.Writer) func() {
	if *opts.statsview {
		statsview.Launch(stderr)
	}

	if *opts.log {
		if *opts.color {
			logger.SetEcho(logger.NewColorizer(stderr))
		} else {
			logger.SetEcho(stderr)
		}
	}

	return func() {
		logger.SetEcho(nil)
	}
}

// readSource reads the single file named in the remaining arguments.
func readSource(md *modalflag.Modes) ([]byte, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("source file required for %s mode", md)
	case 1:
		return os.ReadFile(md.GetArg(0))
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

// writeTable writes the table to the named file, or to def if filename is
// empty. the file is created or truncated.
func writeTable(tbl *symbols.Table, filename string, def io.Writer, list bool) (rerr error) {
	output := def
	if filename != "" {
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer func() {
			err := f.Close()
			if rerr == nil {
				rerr = err
			}
		}()
		output = f
	}

	if list {
		tbl.List(output)
		return nil
	}
	return tbl.Serialize(output)
}

func visualise(tbl *symbols.Table, filename string) error {
	if filename == "" {
		return nil
	}

	var b bytes.Buffer
	tbl.Visualise(&b)
	return os.WriteFile(filename, b.Bytes(), 0644)
}

func labels(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	src, err := readSource(md)
	if err != nil {
		return err
	}

	defer opts.prepare(stderr)()

	tbl := symbols.NewTable(symbols.UniqueName, nil)
	defer tbl.Destroy()

	_, err = assembler.PassOne(bytes.NewReader(src), tbl)
	if err != nil {
		return err
	}

	err = writeTable(tbl, *opts.output, stdout, *opts.list)
	if err != nil {
		return err
	}

	return visualise(tbl, *opts.memviz)
}

func assemble(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	opts := addOptions(md)
	relocs := md.AddString("relocs", "", "write relocation table to file (default stdout)")
	md.AdditionalHelp(formatHelp + "\n\n" + relocsHelp)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	src, err := readSource(md)
	if err != nil {
		return err
	}

	defer opts.prepare(stderr)()

	prog, err := assembler.Assemble(src, nil)
	defer prog.Destroy()
	if err != nil {
		return err
	}

	err = writeTable(prog.Symbols, *opts.output, stdout, *opts.list)
	if err != nil {
		return err
	}

	err = writeTable(prog.Relocations, *relocs, stdout, *opts.list)
	if err != nil {
		return err
	}

	return visualise(prog.Symbols, *opts.memviz)
}
