// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amphibian-go/toadplot/scoreplot"
	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loansCSV = `date,grade,bin,score,target
2024-01-05,A,low,0.9,1
2024-01-20,B,low,0.8,1
2024-01-31,A,mid,0.35,0
2024-03-02,B,mid,0.4,1
2024-03-15,A,high,0.1,0
2024-03-28,B,high,0.2,0
`

// run runs toadplot with args and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{stdin: strings.NewReader(stdin), stdout: &out, stderr: io.Discard}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.Execute()
	a.close()
	return out.String(), err
}

func writeLoans(t *testing.T) (dir, path string) {
	dir = t.TempDir()
	path = filepath.Join(dir, "loans.csv")
	require.NoError(t, os.WriteFile(path, []byte(loansCSV), 0o666))
	return dir, path
}

func TestBadRatePNG(t *testing.T) {
	out, err := run(t, loansCSV, "badrate", "-x", "date", "--by", "grade", "--freq", "M", "-")
	require.NoError(t, err)

	img, err := png.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestBadRateTable(t *testing.T) {
	_, path := writeLoans(t)
	out, err := run(t, "", "badrate", "-x", "date", "--freq", "M", "--table", path)
	require.NoError(t, err)
	header := strings.Fields(strings.SplitN(out, "\n", 2)[0])
	assert.Equal(t, []string{"date", "sum", "count", "badrate"}, header)
	// January, an empty February, and March.
	assert.Equal(t, 4, strings.Count(strings.TrimSpace(out), "\n")+1)
}

func TestBadRateTuple(t *testing.T) {
	dir, path := writeLoans(t)
	outPath := filepath.Join(dir, "rate.svg")
	_, err := run(t, "", "badrate", "-x", "date", "--by", "grade", "--counts", "--proportion", "-o", outPath, path)
	require.NoError(t, err)

	for _, name := range []string{"rate-badrate.svg", "rate-count.svg", "rate-prop.svg"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "<svg", name)
	}
	assert.NoFileExists(t, outPath)
}

func TestBadRateFrame(t *testing.T) {
	dir, path := writeLoans(t)
	outPath := filepath.Join(dir, "rate.png")
	_, err := run(t, "", "badrate", "-x", "grade", "--counts", "--frame", "-o", outPath, path)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "rate-badrate.png"))
	assert.FileExists(t, filepath.Join(dir, "rate-count.png"))
	data, err := os.ReadFile(filepath.Join(dir, "rate-frame.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "badrate")
}

func TestTupleNeedsOutput(t *testing.T) {
	_, err := run(t, loansCSV, "badrate", "-x", "grade", "--counts", "-")
	assert.ErrorContains(t, err, "output file")
}

func TestMissingFlags(t *testing.T) {
	_, err := run(t, loansCSV, "badrate", "-")
	assert.Error(t, err)
	_, err = run(t, loansCSV, "bin", "-")
	assert.Error(t, err)
	_, err = run(t, loansCSV, "roc", "--score", "nope", "-")
	assert.Error(t, err)
	_, err = run(t, loansCSV, "badrate", "-x", "grade", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestCorrTable(t *testing.T) {
	out, err := run(t, loansCSV, "corr", "--table", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"column", "score", "target"}, strings.Fields(lines[0]))
	assert.Equal(t, "score", strings.Fields(lines[1])[0])
	assert.Equal(t, "1", strings.Fields(lines[1])[1])
}

func TestCorrSize(t *testing.T) {
	dir, path := writeLoans(t)
	outPath := filepath.Join(dir, "corr.png")
	_, err := run(t, "", "corr", "--size", "4,3", "-o", outPath, path)
	require.NoError(t, err)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	_, err = run(t, "", "corr", "--size", "4", "-o", outPath, path)
	assert.ErrorContains(t, err, "--size")
}

func TestPropTable(t *testing.T) {
	out, err := run(t, loansCSV, "prop", "-c", "grade", "-c", "bin", "--keys", "g,b", "--table", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"keys", "value", "proportion"}, strings.Fields(lines[0]))
	// Two grades and three bins.
	assert.Len(t, lines, 6)
	assert.Equal(t, "g", strings.Fields(lines[1])[0])
	assert.Equal(t, "b", strings.Fields(lines[5])[0])
}

func TestROC(t *testing.T) {
	out, err := run(t, loansCSV, "roc", "--table", "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"fpr", "tpr", "threshold"}, strings.Fields(strings.SplitN(out, "\n", 2)[0]))

	out, err = run(t, loansCSV, "roc", "--format", "svg", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "AUC")
}

func TestBin(t *testing.T) {
	out, err := run(t, loansCSV, "bin", "-x", "bin", "--table", "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"bin", "sum", "count", "badrate", "prop"}, strings.Fields(strings.SplitN(out, "\n", 2)[0]))

	dir, path := writeLoans(t)
	outPath := filepath.Join(dir, "bins.svg")
	_, err = run(t, "", "bin", "-x", "bin", "-o", outPath, path)
	require.NoError(t, err)
	assert.FileExists(t, outPath)
}

func TestConfig(t *testing.T) {
	dir, path := writeLoans(t)
	cfg := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("font: liberation-serif\nfig_size: [4, 3]\ndpi: 50\n"), 0o666))

	out, err := run(t, "", "--config", cfg, "roc", path)
	require.NoError(t, err)
	img, err := png.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	_, err = run(t, "", "--config", filepath.Join(dir, "missing.yaml"), "roc", path)
	assert.Error(t, err)
}

func TestImageFormat(t *testing.T) {
	for _, test := range []struct {
		path, format string
		want         scoreplot.Format
		err          bool
	}{
		{"", "", scoreplot.PNG, false},
		{"a.png", "", scoreplot.PNG, false},
		{"a.SVG", "", scoreplot.SVG, false},
		{"a.png", "svg", scoreplot.SVG, false},
		{"a.jpg", "", 0, true},
		{"", "gif", 0, true},
	} {
		o := output{path: test.path, format: test.format}
		got, err := o.imageFormat()
		if test.err {
			assert.Error(t, err, "%+v", test)
			continue
		}
		require.NoError(t, err, "%+v", test)
		assert.Equal(t, test.want, got, "%+v", test)
	}
}

func TestScript(t *testing.T) {
	dir, path := writeLoans(t)
	rate := filepath.Join(dir, "my rate.svg")
	roc := filepath.Join(dir, "roc.png")
	script := strings.Join([]string{
		"# bad rate by month",
		shellquote.Join("badrate", "-x", "date", "--freq", "M", "-o", rate, path),
		"",
		shellquote.Join("roc", "-o", roc, path),
		shellquote.Join("bin", "-x", "bin", "--table", path),
	}, "\n")
	scriptPath := filepath.Join(dir, "plots.txt")
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o666))

	out, err := run(t, "", "script", "-j", "2", scriptPath)
	require.NoError(t, err)
	assert.FileExists(t, rate)
	assert.FileExists(t, roc)
	assert.Contains(t, out, "badrate")
}

func TestScriptErrors(t *testing.T) {
	dir, path := writeLoans(t)
	scriptPath := filepath.Join(dir, "plots.txt")

	bad := shellquote.Join("roc", "--table", path) + "\n" + shellquote.Join("roc", "--score", "nope", path) + "\n"
	require.NoError(t, os.WriteFile(scriptPath, []byte(bad), 0o666))
	_, err := run(t, "", "script", scriptPath)
	assert.ErrorContains(t, err, "line 2")

	require.NoError(t, os.WriteFile(scriptPath, []byte("roc 'unterminated\n"), 0o666))
	_, err = run(t, "", "script", scriptPath)
	assert.ErrorContains(t, err, ":1:")

	require.NoError(t, os.WriteFile(scriptPath, []byte("script other.txt\n"), 0o666))
	_, err = run(t, "", "script", scriptPath)
	assert.ErrorContains(t, err, "cannot run scripts")

	for _, line := range [][]string{
		{"roc", "-"},
		{"roc", "--cpuprofile", filepath.Join(dir, "cpu.prof"), path},
		{"roc", "--memprofile=" + filepath.Join(dir, "mem.prof"), path},
	} {
		require.NoError(t, os.WriteFile(scriptPath, []byte(shellquote.Join(line...)+"\n"), 0o666))
		_, err = run(t, loansCSV, "script", scriptPath)
		assert.ErrorContains(t, err, ":1:", "%q", line)
	}
	assert.NoFileExists(t, filepath.Join(dir, "cpu.prof"))
	assert.NoFileExists(t, filepath.Join(dir, "mem.prof"))
}

func TestCorrColumnCollision(t *testing.T) {
	const data = "column,score,target\n1,0.9,1\n2,0.2,0\n3,0.6,1\n"
	out, err := run(t, data, "corr", "--table", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"[column-0]", "column", "score", "target"}, strings.Fields(lines[0]))
	assert.Equal(t, "column", strings.Fields(lines[1])[0])
}

func TestPropMissing(t *testing.T) {
	const data = "score,target\n0.5,1\n,0\n0.5,\n"
	out, err := run(t, data, "prop", "-c", "score", "--table", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"score", "0.5"}, strings.Fields(lines[1])[:2])
	assert.Equal(t, []string{"score", "NaN"}, strings.Fields(lines[2])[:2])
}
