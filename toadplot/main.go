// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command toadplot draws diagnostic charts for binary scoring models
// from CSV tables.
//
// Each subcommand reads one CSV file with a header row (or standard
// input if the file is "-") and writes a PNG or SVG chart:
//
//	toadplot badrate -x month --by grade --freq M loans.csv -o rate.png
//	toadplot corr features.csv -o corr.svg
//	toadplot prop -c grade -c region loans.csv -o prop.png
//	toadplot roc --score score loans.csv -o roc.png
//	toadplot bin -x score_bin loans.csv -o bins.png
//
// With --table, the aggregated table behind a chart is printed
// instead. When a subcommand produces several charts, they are
// written next to the -o file with the chart's name appended, as in
// rate-count.png.
//
// "toadplot script FILE" runs one toadplot command line per line of
// FILE, in parallel.
package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/amphibian-go/toadplot/scoreplot"
	"github.com/amphibian-go/toadplot/theme"
	"github.com/spf13/cobra"
)

func main() {
	log.SetPrefix("toadplot: ")
	log.SetFlags(0)

	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		log.Fatal(err)
	}
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	config     string
	debug      bool
	cpuProfile string
	memProfile string

	log     *slog.Logger
	plotter *scoreplot.Plotter
	cpuFile *os.File
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "toadplot",
		Short:         "Plot scoring model diagnostics from CSV tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	f := cmd.PersistentFlags()
	f.StringVar(&a.config, "config", "", "read the plot theme from YAML `file`")
	f.BoolVar(&a.debug, "debug", false, "log aggregation details to stderr")
	f.StringVar(&a.cpuProfile, "cpuprofile", "", "write CPU profile to `file`")
	f.StringVar(&a.memProfile, "memprofile", "", "write heap profile to `file`")

	cmd.AddCommand(
		newBadRateCmd(a),
		newCorrCmd(a),
		newPropCmd(a),
		newROCCmd(a),
		newBinCmd(a),
		newScriptCmd(a),
	)
	return cmd
}

// setup starts profiling and builds the logger and plotter. A plotter
// inherited from a parent invocation is kept unless --config is given.
func (a *app) setup() error {
	if a.cpuProfile != "" {
		f, err := os.Create(a.cpuProfile)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return err
		}
		a.cpuFile = f
	}

	if a.log == nil {
		level := slog.LevelInfo
		if a.debug {
			level = slog.LevelDebug
		}
		a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	}

	if a.plotter != nil && a.config == "" {
		return nil
	}
	th := theme.Default()
	if a.config != "" {
		var err error
		th, err = theme.Load(a.config)
		if err != nil {
			return err
		}
		a.log.Debug("loaded theme", "config", a.config, "font", th.FontName())
	}
	a.plotter = scoreplot.New(th, scoreplot.WithLogger(a.log))
	return nil
}

// close stops the CPU profile and writes the heap profile, if they
// were requested.
func (a *app) close() {
	if a.cpuFile != nil {
		pprof.StopCPUProfile()
		a.cpuFile.Close()
		a.cpuFile = nil
	}
	if a.memProfile != "" {
		runtime.GC()
		f, err := os.Create(a.memProfile)
		if err != nil {
			log.Print(err)
			return
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
