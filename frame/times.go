// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"time"

	"github.com/aclements/go-gg/table"
)

// DefaultLayouts is the sequence of time layouts ParseTimes tries
// when no layout is given. A column is parsed with the earliest
// layout that accepts every value in it.
var DefaultLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"20060102",
	"2006-01",
}

// ParseTimes converts col to []time.Time. A []time.Time column is
// returned as is. String columns are parsed with layout, or with the
// first of DefaultLayouts that parses all values if layout is "".
// Integer columns are treated as compact dates (for example 20240131)
// when layout is "" and formatted with %d before parsing otherwise.
func ParseTimes(col table.Slice, layout string) ([]time.Time, error) {
	var strs []string
	switch col := col.(type) {
	case []time.Time:
		return col, nil
	case []string:
		strs = col
	default:
		if !IsNumeric(col) {
			return nil, fmt.Errorf("cannot parse %T as times", col)
		}
		for _, v := range Values(col) {
			strs = append(strs, fmt.Sprintf("%v", v))
		}
		if layout == "" {
			layout = "20060102"
		}
	}

	layouts := DefaultLayouts
	if layout != "" {
		layouts = []string{layout}
	}
	var lastErr error
	for _, l := range layouts {
		ts, err := parseAll(strs, l)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func parseAll(strs []string, layout string) ([]time.Time, error) {
	ts := make([]time.Time, len(strs))
	for i, s := range strs {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		ts[i] = t
	}
	return ts, nil
}
