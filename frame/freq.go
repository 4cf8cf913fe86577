// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unit is the base period of a Freq.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
)

// A Freq is a fixed-width bucketing of time, such as "7D" (seven-day
// buckets) or "M" (calendar months). It uses pandas offset alias
// spellings.
type Freq struct {
	N    int
	Unit Unit
}

var freqAliases = map[string]Unit{
	"S": Second, "s": Second,
	"T": Minute, "min": Minute,
	"H": Hour, "h": Hour,
	"D": Day,
	"W": Week,
	"M": Month, "MS": Month, "ME": Month,
	"Q": Quarter, "QS": Quarter, "QE": Quarter,
	"A": Year, "AS": Year, "Y": Year, "YS": Year, "YE": Year,
}

// ParseFreq parses a frequency string of the form [N]ALIAS, for
// example "D", "7D", "2H", "15min", "M", "QS" or "Y".
func ParseFreq(s string) (Freq, error) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	n := 1
	if i > 0 {
		var err error
		n, err = strconv.Atoi(s[:i])
		if err != nil || n <= 0 {
			return Freq{}, fmt.Errorf("bad frequency %q: multiple must be positive", s)
		}
	}
	unit, ok := freqAliases[s[i:]]
	if !ok {
		return Freq{}, fmt.Errorf("bad frequency %q: unknown alias %q", s, s[i:])
	}
	return Freq{n, unit}, nil
}

func (f Freq) String() string {
	alias := [...]string{"S", "min", "H", "D", "W", "MS", "QS", "YS"}[f.Unit]
	if f.N == 1 {
		return alias
	}
	return strconv.Itoa(f.N) + alias
}

// Layout returns a time layout suitable for labeling buckets of f.
func (f Freq) Layout() string {
	switch f.Unit {
	case Second:
		return "2006-01-02 15:04:05"
	case Minute, Hour:
		return "2006-01-02 15:04"
	case Month, Quarter:
		return "2006-01"
	case Year:
		return "2006"
	}
	return "2006-01-02"
}

// A Binner maps times to bucket start times for a fixed origin.
type Binner struct {
	f      Freq
	origin time.Time
}

// Binner returns a Binner for f whose buckets are anchored at the
// start of the day (or week, month, quarter, or year) containing
// first.
func (f Freq) Binner(first time.Time) Binner {
	y, m, d := first.Date()
	loc := first.Location()
	var origin time.Time
	switch f.Unit {
	case Week:
		origin = time.Date(y, m, d, 0, 0, 0, 0, loc)
		// Weeks start on Monday.
		back := (int(origin.Weekday()) + 6) % 7
		origin = origin.AddDate(0, 0, -back)
	case Month:
		origin = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Quarter:
		origin = time.Date(y, m-(m-1)%3, 1, 0, 0, 0, 0, loc)
	case Year:
		origin = time.Date(y, 1, 1, 0, 0, 0, 0, loc)
	default:
		origin = time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	return Binner{f, origin}
}

func (b Binner) months() int {
	switch b.f.Unit {
	case Month:
		return b.f.N
	case Quarter:
		return 3 * b.f.N
	case Year:
		return 12 * b.f.N
	}
	return 0
}

func (b Binner) width() time.Duration {
	unit := [...]time.Duration{time.Second, time.Minute, time.Hour, 24 * time.Hour, 7 * 24 * time.Hour}[b.f.Unit]
	return time.Duration(b.f.N) * unit
}

// Index returns the bucket number of t. Bucket 0 starts at the origin.
func (b Binner) Index(t time.Time) int {
	if m := b.months(); m > 0 {
		oy, om, _ := b.origin.Date()
		ty, tm, _ := t.In(b.origin.Location()).Date()
		delta := (ty-oy)*12 + int(tm-om)
		return floorDiv(delta, m)
	}
	d := t.Sub(b.origin)
	w := b.width()
	idx := int(d / w)
	if d < 0 && d%w != 0 {
		idx--
	}
	return idx
}

// Start returns the start time of bucket i.
func (b Binner) Start(i int) time.Time {
	if m := b.months(); m > 0 {
		return b.origin.AddDate(0, i*m, 0)
	}
	return b.origin.Add(time.Duration(i) * b.width())
}

// Floor returns the start of the bucket containing t.
func (b Binner) Floor(t time.Time) time.Time {
	return b.Start(b.Index(t))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Bin maps each of ts to the start of its bucket. Buckets are anchored
// at the earliest time in ts.
func (f Freq) Bin(ts []time.Time) []time.Time {
	if len(ts) == 0 {
		return nil
	}
	first := ts[0]
	for _, t := range ts[1:] {
		if t.Before(first) {
			first = t
		}
	}
	b := f.Binner(first)
	out := make([]time.Time, len(ts))
	for i, t := range ts {
		out[i] = b.Floor(t)
	}
	return out
}

// Span returns the start of every bucket from the bucket containing
// first through the bucket containing last, inclusive.
func (f Freq) Span(first, last time.Time) []time.Time {
	b := f.Binner(first)
	lo, hi := b.Index(first), b.Index(last)
	var out []time.Time
	for i := lo; i <= hi; i++ {
		out = append(out, b.Start(i))
	}
	return out
}
