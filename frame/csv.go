// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// ReadCSV reads a comma-separated table with a header row from r.
// Columns whose values all parse as integers or floats are converted
// to []int or []float64; everything else stays []string. Empty cells
// in an otherwise numeric column are missing values and read as NaN,
// which makes the column []float64.
func ReadCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("reading csv: missing header row")
	}
	header, data := rows[0], rows[1:]
	for col := range header {
		fillMissing(data, col)
	}
	return table.TableFromStrings(header, data, true), nil
}

// fillMissing replaces the empty cells of column col with "NaN" if
// every other cell of the column is a number.
func fillMissing(rows [][]string, col int) {
	missing, numbers := 0, 0
	for _, row := range rows {
		s := strings.TrimSpace(row[col])
		if s == "" {
			missing++
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return
		}
		numbers++
	}
	if missing == 0 || numbers == 0 {
		return
	}
	for _, row := range rows {
		if strings.TrimSpace(row[col]) == "" {
			row[col] = "NaN"
		}
	}
}
