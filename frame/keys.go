// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// Compare orders two group keys. Numbers compare numerically, times
// chronologically, and strings lexically, except that two strings
// that both parse as numbers compare numerically. NaN sorts after
// every other number. Keys of different kinds compare by their
// formatted labels.
func Compare(a, b interface{}) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			switch {
			case ta.Before(tb):
				return -1
			case ta.After(tb):
				return 1
			}
			return 0
		}
	}
	fa, aok := number(a)
	fb, bok := number(b)
	if aok && bok {
		return compareFloat(fa, fb)
	}
	sa, sb := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func number(v interface{}) (float64, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Label formats a group key for display. Times are formatted with
// layout, or as dates if layout is "". Floats use the shortest
// representation that round-trips. Missing values are "NaN".
func Label(v interface{}, layout string) string {
	switch v := v.(type) {
	case nil:
		return "NaN"
	case time.Time:
		if layout == "" {
			layout = "2006-01-02"
		}
		return v.Format(layout)
	case float64:
		if math.IsNaN(v) {
			return "NaN"
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return Label(float64(v), layout)
	case string:
		return v
	}
	return fmt.Sprint(v)
}

// Distinct returns the distinct values of vs in Compare order.
func Distinct(vs []interface{}) []interface{} {
	var out []interface{}
	seen := make(map[interface{}]bool)
	for _, v := range vs {
		k := Key(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j]) < 0
	})
	return out
}

// Key returns a comparable representation of v for use as a map key.
// Times map to their instant and NaNs map to a single key.
func Key(v interface{}) interface{} {
	switch v := v.(type) {
	case time.Time:
		return v.UnixNano()
	case float64:
		if math.IsNaN(v) {
			return nanKey{}
		}
	}
	return v
}

type nanKey struct{}

// Missing reports whether v is a missing value: nil or a float NaN.
func Missing(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	}
	return false
}
