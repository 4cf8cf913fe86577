// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/amphibian-go/toadplot/frame"
)

// Series is a named column of values.
type Series struct {
	Name   string
	Values table.Slice
}

// ProportionTable returns the share of each distinct value within
// each series, as a table with columns "keys", "value", and
// "proportion". Missing values (NaN or nil) count as the value "NaN".
//
// Series i is labeled keys[i] if keys is non-nil, otherwise by its
// Name, or by its index if it has no name. Within each key, rows are
// ordered by decreasing proportion. A series with no values adds no
// rows.
func ProportionTable(ss []Series, keys []string) (*table.Table, error) {
	if keys != nil && len(keys) != len(ss) {
		return nil, fmt.Errorf("proportion: %d keys for %d series", len(keys), len(ss))
	}
	var (
		keyCol   = []string{}
		valueCol = []string{}
		propCol  = []float64{}
	)
	for i, s := range ss {
		key := strconv.Itoa(i)
		if keys != nil {
			key = keys[i]
		} else if s.Name != "" {
			key = s.Name
		}
		if s.Values == nil {
			continue
		}

		vals := frame.Values(s.Values)
		counts := make(map[interface{}]int)
		var distinct []interface{}
		for _, v := range vals {
			k := frame.Key(v)
			if counts[k] == 0 {
				distinct = append(distinct, v)
			}
			counts[k]++
		}
		sort.SliceStable(distinct, func(i, j int) bool {
			ci, cj := counts[frame.Key(distinct[i])], counts[frame.Key(distinct[j])]
			if ci != cj {
				return ci > cj
			}
			return frame.Compare(distinct[i], distinct[j]) < 0
		})
		for _, v := range distinct {
			keyCol = append(keyCol, key)
			valueCol = append(valueCol, frame.Label(v, ""))
			propCol = append(propCol, float64(counts[frame.Key(v)])/float64(len(vals)))
		}
	}
	return new(table.Builder).
		Add("keys", keyCol).
		Add("value", valueCol).
		Add("proportion", propCol).
		Done(), nil
}

// Proportion plots the share of each distinct value in each series as
// grouped bars, with one color per series.
func (p *Plotter) Proportion(ss []Series, keys []string) (Result, error) {
	tab, err := ProportionTable(ss, keys)
	if err != nil {
		return nil, err
	}
	p.log.Debug("value proportions", "series", len(ss), "rows", tab.Len())

	return p.Wrap(func() (Result, error) {
		a := p.axes()
		if err := p.barplot(a, tab, "value", "proportion", style{hue: "keys"}); err != nil {
			return nil, err
		}
		return a, nil
	})
}
