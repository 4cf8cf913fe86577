// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"github.com/aclements/go-gg/table"
)

// Result is the value returned by a plot function. It is one of
// *Axes, Frame, or Tuple.
type Result interface {
	isResult()
}

// Frame is an aggregated table returned alongside plots.
type Frame struct {
	*table.Table
}

// Named is one element of a Tuple.
type Named struct {
	Name  string
	Value Result
}

// Tuple is an ordered sequence of results.
type Tuple []Named

func (*Axes) isResult() {}
func (Frame) isResult() {}
func (Tuple) isResult() {}

// Get returns the element of t called name, or nil.
func (t Tuple) Get(name string) Result {
	for _, n := range t {
		if n.Name == name {
			return n.Value
		}
	}
	return nil
}

// Transform applies f to every Axes in r and returns the result with
// each Axes replaced by f's return value. Frames are returned
// unchanged. A nil Result is returned as is, and an Axes that f maps
// to nil becomes a nil Result.
func Transform(r Result, f func(*Axes) *Axes) Result {
	switch r := r.(type) {
	case *Axes:
		if a := f(r); a != nil {
			return a
		}
		return nil
	case Frame:
		return r
	case Tuple:
		out := make(Tuple, len(r))
		for i, n := range r {
			out[i] = Named{n.Name, Transform(n.Value, f)}
		}
		return out
	}
	return r
}

// unpack returns the sole element of t unwrapped, or t itself if it
// has any other length.
func unpack(t Tuple) Result {
	if len(t) == 1 {
		return t[0].Value
	}
	return t
}
