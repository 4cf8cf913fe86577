// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides the column-level operations the plot
// functions need on top of go-gg tables: typed column access, target
// materialization, datetime parsing and binning, and ordering and
// formatting of group keys.
package frame

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// ErrNoColumn is returned when a named column does not exist.
var ErrNoColumn = errors.New("no such column")

// Column returns column name of t.
func Column(t *table.Table, name string) (table.Slice, error) {
	col := t.Column(name)
	if col == nil {
		return nil, fmt.Errorf("column %q: %w", name, ErrNoColumn)
	}
	return col, nil
}

// Floats returns column name of t converted to []float64. Numeric and
// boolean columns are accepted; booleans map to 0 and 1.
func Floats(t *table.Table, name string) ([]float64, error) {
	col, err := Column(t, name)
	if err != nil {
		return nil, err
	}
	xs, err := ToFloats(col)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return xs, nil
}

// ToFloats converts a numeric or boolean slice to []float64.
func ToFloats(col table.Slice) ([]float64, error) {
	if xs, ok := col.([]float64); ok {
		return xs, nil
	}
	if bs, ok := col.([]bool); ok {
		xs := make([]float64, len(bs))
		for i, b := range bs {
			if b {
				xs[i] = 1
			}
		}
		return xs, nil
	}
	if !IsNumeric(col) {
		return nil, fmt.Errorf("cannot convert %T to []float64", col)
	}
	var xs []float64
	slice.Convert(&xs, col)
	return xs, nil
}

// IsNumeric reports whether col is a slice of integers or floats.
func IsNumeric(col table.Slice) bool {
	switch reflect.TypeOf(col).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Values returns the elements of col as a []interface{}.
func Values(col table.Slice) []interface{} {
	v := reflect.ValueOf(col)
	out := make([]interface{}, v.Len())
	for i := range out {
		out[i] = v.Index(i).Interface()
	}
	return out
}

// FromValues is the inverse of Values: it returns a slice with the
// same type as like holding vs. nil elements become zero values.
func FromValues(like table.Slice, vs []interface{}) table.Slice {
	out := reflect.MakeSlice(reflect.TypeOf(like), len(vs), len(vs))
	for i, v := range vs {
		if v != nil {
			out.Index(i).Set(reflect.ValueOf(v))
		}
	}
	return out.Interface()
}

// WithValues adds values to t as a new column whose name starts with
// prefix and does not collide with any existing column. It returns the
// new table and the generated column name.
func WithValues(t *table.Table, prefix string, values table.Slice) (*table.Table, string, error) {
	if reflect.TypeOf(values) == nil || reflect.TypeOf(values).Kind() != reflect.Slice {
		return nil, "", fmt.Errorf("values must be a slice; got %T", values)
	}
	if n := reflect.ValueOf(values).Len(); n != t.Len() && len(t.Columns()) > 0 {
		return nil, "", fmt.Errorf("values have %d rows; table has %d", n, t.Len())
	}

	name := UniqueName(t, prefix)
	return table.NewBuilder(t).Add(name, values).Done(), name, nil
}

// UniqueName returns a column name starting with prefix that is not
// used by t.
func UniqueName(t *table.Table, prefix string) string {
	have := make(map[string]bool)
	for _, col := range t.Columns() {
		have[col] = true
	}
	for nonce := 0; ; nonce++ {
		name := fmt.Sprintf("[%s-%d]", prefix, nonce)
		if !have[name] {
			return name
		}
	}
}
