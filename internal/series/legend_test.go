// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/golang/freetype/truetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegendSize(t *testing.T) {
	f, err := truetype.Parse(goregular.TTF)
	require.NoError(t, err)

	l := Legend{
		Entries: []LegendEntry{{Label: "a"}, {Label: "a much longer label"}},
		Font:    f,
	}
	w, h := l.Size(100)
	assert.Greater(t, w, TextWidth(f, 10, 100, "a much longer label"))
	assert.Equal(t, 2*l.rowHeight(100)+legendPad, h)
	assert.Equal(t, 0, l.Width(100), "inside legends take no outside space")

	l.Outside = true
	l.Offset = 7
	assert.Equal(t, w+7+legendMargin, l.Width(100))

	l.Title = "grade"
	_, h2 := l.Size(100)
	assert.Equal(t, h+l.rowHeight(100), h2)

	assert.Equal(t, 0, Legend{Outside: true}.Width(100))
}

func TestTextWidth(t *testing.T) {
	f, err := truetype.Parse(goregular.TTF)
	require.NoError(t, err)
	short := TextWidth(f, 10, 100, "ab")
	long := TextWidth(f, 10, 100, "abab")
	assert.Greater(t, short, 0)
	assert.Greater(t, long, short)
	assert.Greater(t, TextWidth(f, 20, 100, "ab"), short)
}
