// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/amphibian-go/toadplot/frame"
	"github.com/amphibian-go/toadplot/roc"
	"github.com/amphibian-go/toadplot/scoreplot"
	"github.com/spf13/cobra"
)

func newBadRateCmd(a *app) *cobra.Command {
	var (
		o   output
		opt scoreplot.BadRateOptions
	)
	cmd := &cobra.Command{
		Use:   "badrate [flags] FILE",
		Short: "Plot the bad rate of each x value, optionally per group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTable(args[0])
			if err != nil {
				return err
			}
			if o.table {
				agg, err := scoreplot.AggregateBadRate(t, opt)
				if err != nil {
					return err
				}
				return a.emit(scoreplot.Frame{Table: agg}, &o)
			}
			res, err := a.plotter.BadRate(t, opt)
			if err != nil {
				return err
			}
			return a.emit(res, &o)
		},
	}
	o.addFlags(cmd)
	f := cmd.Flags()
	f.StringVarP(&opt.X, "x", "x", "", "x axis `column`")
	f.StringVar(&opt.Target, "target", "target", "0/1 target `column`")
	f.StringVar(&opt.By, "by", "", "draw one line per value of `column`")
	f.StringVar(&opt.Freq, "freq", "", "bin x as a date into periods of `freq`, such as D, W, M, 2M, Q, or Y")
	f.StringVar(&opt.Format, "time-format", "", "Go time `layout` of x (default: guess)")
	f.BoolVar(&opt.ReturnCounts, "counts", false, "also plot group counts")
	f.BoolVar(&opt.ReturnProportion, "proportion", false, "also plot each group's share of its x value")
	f.BoolVar(&opt.ReturnFrame, "frame", false, "write the aggregated table instead of the bad rate chart")
	cmd.MarkFlagRequired("x")
	return cmd
}

func newCorrCmd(a *app) *cobra.Command {
	var (
		o    output
		opt  scoreplot.CorrOptions
		size []float64
	)
	cmd := &cobra.Command{
		Use:   "corr [flags] FILE",
		Short: "Plot the correlation matrix of the numeric columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(size) != 0 {
				if len(size) != 2 {
					return fmt.Errorf("--size wants a width and a height, got %d values", len(size))
				}
				opt.FigSize = [2]float64{size[0], size[1]}
			}
			t, err := a.readTable(args[0])
			if err != nil {
				return err
			}
			if o.table {
				ct, err := corrTable(t)
				if err != nil {
					return err
				}
				return a.emit(scoreplot.Frame{Table: ct}, &o)
			}
			res, err := a.plotter.Corr(t, opt)
			if err != nil {
				return err
			}
			return a.emit(res, &o)
		},
	}
	o.addFlags(cmd)
	cmd.Flags().Float64SliceVar(&size, "size", nil, "figure `width,height` in inches (default 20,15)")
	return cmd
}

// corrTable returns the correlation matrix of t as a table with one
// row per numeric column. The row names go in a "column" column,
// renamed if t already has a column by that name.
func corrTable(t *table.Table) (*table.Table, error) {
	names, m, err := scoreplot.CorrMatrix(t)
	if err != nil {
		return nil, err
	}
	label := "column"
	if t.Column(label) != nil {
		label = frame.UniqueName(t, label)
	}
	b := new(table.Builder).Add(label, names)
	for j, name := range names {
		col := make([]float64, len(names))
		for i := range names {
			col[i] = m[i][j]
		}
		b.Add(name, col)
	}
	return b.Done(), nil
}

func newPropCmd(a *app) *cobra.Command {
	var (
		o       output
		columns []string
		keys    []string
	)
	cmd := &cobra.Command{
		Use:   "prop [flags] FILE",
		Short: "Plot the share of each distinct value of some columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTable(args[0])
			if err != nil {
				return err
			}
			if len(columns) == 0 {
				columns = t.Columns()
			}
			var ss []scoreplot.Series
			for _, name := range columns {
				col, err := frame.Column(t, name)
				if err != nil {
					return err
				}
				ss = append(ss, scoreplot.Series{Name: name, Values: col})
			}
			if o.table {
				pt, err := scoreplot.ProportionTable(ss, keys)
				if err != nil {
					return err
				}
				return a.emit(scoreplot.Frame{Table: pt}, &o)
			}
			res, err := a.plotter.Proportion(ss, keys)
			if err != nil {
				return err
			}
			return a.emit(res, &o)
		},
	}
	o.addFlags(cmd)
	f := cmd.Flags()
	f.StringArrayVarP(&columns, "column", "c", nil, "plot `column`; may be repeated (default: all columns)")
	f.StringSliceVar(&keys, "keys", nil, "legend `labels` for the columns, in order")
	return cmd
}

func newROCCmd(a *app) *cobra.Command {
	var (
		o      output
		score  string
		target string
	)
	cmd := &cobra.Command{
		Use:   "roc [flags] FILE",
		Short: "Plot the ROC curve of a score column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTable(args[0])
			if err != nil {
				return err
			}
			scores, err := frame.Floats(t, score)
			if err != nil {
				return err
			}
			labels, err := frame.Floats(t, target)
			if err != nil {
				return err
			}
			if o.table {
				fpr, tpr, thresholds, err := roc.Curve(scores, labels)
				if err != nil {
					return err
				}
				rt := new(table.Builder).
					Add("fpr", fpr).
					Add("tpr", tpr).
					Add("threshold", thresholds).
					Done()
				return a.emit(scoreplot.Frame{Table: rt}, &o)
			}
			res, err := a.plotter.ROC(scores, labels)
			if err != nil {
				return err
			}
			return a.emit(res, &o)
		},
	}
	o.addFlags(cmd)
	f := cmd.Flags()
	f.StringVar(&score, "score", "score", "model score `column`")
	f.StringVar(&target, "target", "target", "0/1 target `column`")
	return cmd
}

func newBinCmd(a *app) *cobra.Command {
	var (
		o      output
		x      string
		target string
	)
	cmd := &cobra.Command{
		Use:   "bin [flags] FILE",
		Short: "Plot the share of rows and the bad rate of each bin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTable(args[0])
			if err != nil {
				return err
			}
			if o.table {
				agg, err := scoreplot.AggregateBins(t, x, target)
				if err != nil {
					return err
				}
				return a.emit(scoreplot.Frame{Table: agg}, &o)
			}
			res, err := a.plotter.Bin(t, x, target)
			if err != nil {
				return err
			}
			return a.emit(res, &o)
		},
	}
	o.addFlags(cmd)
	f := cmd.Flags()
	f.StringVarP(&x, "x", "x", "", "bin `column`")
	f.StringVar(&target, "target", "target", "0/1 target `column`")
	cmd.MarkFlagRequired("x")
	return cmd
}
