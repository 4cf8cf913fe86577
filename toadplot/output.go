// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/amphibian-go/toadplot/frame"
	"github.com/amphibian-go/toadplot/scoreplot"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

var errTerminal = errors.New("refusing to write PNG to a terminal; use -o or --format svg")

// output holds the flags that say where and how a subcommand writes
// its result.
type output struct {
	path   string
	format string
	table  bool
}

func (o *output) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.path, "output", "o", "", "write output to `file` (default: stdout)")
	f.StringVar(&o.format, "format", "", "image `format`, png or svg (default: from the -o extension, else png)")
	f.BoolVar(&o.table, "table", false, "print the aggregated table instead of a plot")
}

func (o *output) imageFormat() (scoreplot.Format, error) {
	s := o.format
	if s == "" {
		s = strings.ToLower(strings.TrimPrefix(filepath.Ext(o.path), "."))
		if s == "" {
			s = "png"
		}
	}
	return scoreplot.ParseFormat(s)
}

// readTable reads a CSV table from path, or from standard input if
// path is "-".
func (a *app) readTable(path string) (*table.Table, error) {
	r := a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	t, err := frame.ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("read table", "path", path, "rows", t.Len(), "columns", len(t.Columns()))
	return t, nil
}

// emit writes res as o says. Each element of a Tuple goes to its own
// file, named after the -o file with the element's name appended.
func (a *app) emit(res scoreplot.Result, o *output) error {
	tup, ok := res.(scoreplot.Tuple)
	if !ok {
		if o.path == "" {
			return a.write(a.stdout, res, o)
		}
		return a.writeFile(o.path, res, o)
	}

	if o.path == "" {
		return fmt.Errorf("%d results need an output file (-o)", len(tup))
	}
	ext := filepath.Ext(o.path)
	stem := strings.TrimSuffix(o.path, ext)
	for _, n := range tup {
		path := stem + "-" + n.Name + ext
		if _, ok := n.Value.(scoreplot.Frame); ok {
			path = stem + "-" + n.Name + ".txt"
		}
		if err := a.writeFile(path, n.Value, o); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) writeFile(path string, res scoreplot.Result, o *output) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.write(f, res, o); err != nil {
		f.Close()
		return err
	}
	a.log.Debug("wrote output", "path", path)
	return f.Close()
}

func (a *app) write(w io.Writer, res scoreplot.Result, o *output) error {
	switch res := res.(type) {
	case *scoreplot.Axes:
		format, err := o.imageFormat()
		if err != nil {
			return err
		}
		if format == scoreplot.PNG && isTerminal(w) {
			return errTerminal
		}
		return res.Render(w, format)
	case scoreplot.Frame:
		table.Fprint(w, res.Table)
		return nil
	}
	return fmt.Errorf("cannot write %T", res)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(int(f.Fd()))
}
