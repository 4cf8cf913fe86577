// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newScriptCmd(a *app) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "script [flags] FILE",
		Short: "Run the toadplot command on each line of FILE in parallel",
		Long: `Script runs each line of FILE as the arguments to toadplot, with
shell-style quoting. Blank lines and lines starting with # are
skipped. Every line shares the theme given by --config; a line may
name its own. Lines run concurrently, so they cannot read standard
input ("-") or set --cpuprofile or --memprofile.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readScript(args[0])
			if err != nil {
				return err
			}
			return a.runScript(cmd, lines, jobs)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(-1), "run at most `n` lines at once")
	return cmd
}

type scriptLine struct {
	num  int
	args []string
}

// readScript splits each command line of the script at path into
// arguments.
func readScript(path string) ([]scriptLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []scriptLine
	scanner := bufio.NewScanner(f)
	for num := 1; scanner.Scan(); num++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shellquote.Split(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, num, err)
		}
		if len(args) > 0 && args[0] == "script" {
			return nil, fmt.Errorf("%s:%d: script cannot run scripts", path, num)
		}
		if err := checkScriptArgs(args); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, num, err)
		}
		lines = append(lines, scriptLine{num, args})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// checkScriptArgs rejects arguments that would make concurrent lines
// share standard input or the process-wide profiler.
func checkScriptArgs(args []string) error {
	for _, arg := range args {
		if arg == "-" {
			return errors.New("script lines cannot read standard input")
		}
		name, _, _ := strings.Cut(arg, "=")
		if name == "--cpuprofile" || name == "--memprofile" {
			return fmt.Errorf("script lines cannot set %s; pass it to script instead", name)
		}
	}
	return nil
}

// runScript runs each line as its own toadplot invocation. Each line's
// standard output is buffered and copied to a.stdout once it is done.
func (a *app) runScript(cmd *cobra.Command, lines []scriptLine, jobs int) error {
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(cmd.Context())
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, line := range lines {
		line := line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var out bytes.Buffer
			child := &app{
				stdin:   a.stdin,
				stdout:  &out,
				stderr:  a.stderr,
				log:     a.log.With("line", line.num),
				plotter: a.plotter,
			}
			root := newRootCmd(child)
			root.SetArgs(line.args)
			err := root.ExecuteContext(ctx)
			child.close()
			if err != nil {
				return fmt.Errorf("line %d: %w", line.num, err)
			}
			mu.Lock()
			defer mu.Unlock()
			_, err = a.stdout.Write(out.Bytes())
			return err
		})
	}
	return g.Wait()
}
