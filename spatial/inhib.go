// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"math"
	"sort"

	"github.com/emer/htm/errs"
	"github.com/emer/htm/grid"
	"github.com/goki/ki/ints"
	"gonum.org/v1/gonum/floats"
)

// InhibGlobal returns the min(nActive, len(scores)) highest scoring
// minicolumns, sorted ascending. Equal scores are ranked by ascending index.
func InhibGlobal(scores []float32, nActive int) []int {
	ord := make([]int, len(scores))
	for i := range ord {
		ord[i] = i
	}
	sort.SliceStable(ord, func(i, j int) bool {
		return scores[ord[i]] > scores[ord[j]]
	})
	act := ord[:ints.MinInt(nActive, len(ord))]
	sort.Ints(act)
	return act
}

// Neighborhoods returns, for each minicolumn, the other minicolumns within
// the hypercube of given radius around it. Neighborhoods are clipped at the
// grid edges.
func Neighborhoods(cols *grid.Grid, radius int) ([][]int, error) {
	nbs := make([][]int, cols.Capacity())
	for ci := range nbs {
		cc, err := cols.IndexToCoords(ci)
		if err != nil {
			return nil, err
		}
		hc, err := grid.NewHypercube(cols, radius, cc)
		if err != nil {
			return nil, err
		}
		cells := hc.Cells(cols, grid.Clip)
		nb := make([]int, 0, len(cells)-1)
		for _, ni := range cells {
			if ni != ci {
				nb = append(nb, ni)
			}
		}
		nbs[ci] = nb
	}
	return nbs, nil
}

// InhibLocal returns the minicolumns, sorted ascending, that have fewer
// than nActive neighbors with a strictly greater score
func InhibLocal(scores []float32, nActive int, neighbors [][]int) []int {
	var act []int
	for ci, sc := range scores {
		nhi := 0
		for _, ni := range neighbors[ci] {
			if scores[ni] > sc {
				nhi++
				if nhi >= nActive {
					break
				}
			}
		}
		if nhi < nActive {
			act = append(act, ci)
		}
	}
	return act
}

// InhibRadius derives the local inhibition radius from the established
// connections: max(1, round((rf * ratio - 1) / 2)), where rf is the mean
// over minicolumns of the per-dimension input span of their connected
// inputs, and ratio is the mean over dimensions of the minicolumn to input
// dimension size ratio. Minicolumns without connections are not counted.
// Spans are measured on the ring of each dimension (see RingSpan), matching
// the wrapped sampling of local pools.
func InhibRadius(pl *Pools, thr float32, in, cols *grid.Grid) (int, error) {
	nd := in.NumDims()
	if cols.NumDims() != nd {
		return 0, errs.Configf("spatial.InhibRadius: %d-d minicolumns over %d-d inputs", cols.NumDims(), nd)
	}
	var rfs []float64
	dcs := make([][]int, nd)
	spans := make([]float64, nd)
	for ci := 0; ci < pl.NCols; ci++ {
		ins := pl.ConnectedInputs(ci, thr)
		if len(ins) == 0 {
			continue
		}
		for d := range dcs {
			dcs[d] = dcs[d][:0]
		}
		for _, si := range ins {
			sc, err := in.IndexToCoords(si)
			if err != nil {
				return 0, err
			}
			for d, c := range sc {
				dcs[d] = append(dcs[d], c)
			}
		}
		for d := range spans {
			spans[d] = float64(RingSpan(dcs[d], in.Dim(d)))
		}
		rfs = append(rfs, floats.Sum(spans)/float64(nd))
	}
	rf := 0.0
	if len(rfs) > 0 {
		rf = floats.Sum(rfs) / float64(len(rfs))
	}
	ratios := make([]float64, nd)
	for d := range ratios {
		ratios[d] = float64(cols.Dim(d)) / float64(in.Dim(d))
	}
	ratio := floats.Sum(ratios) / float64(nd)
	r := int(math.Round((rf*ratio - 1) / 2))
	return ints.MaxInt(1, r), nil
}

// RingSpan returns the number of cells in the shortest arc of a ring of
// size n that covers all coords: n minus the largest cyclic gap between
// consecutive distinct coordinates, plus one. coords is sorted in place.
// Returns 0 for no coords.
func RingSpan(coords []int, n int) int {
	if len(coords) == 0 {
		return 0
	}
	sort.Ints(coords)
	maxGap := coords[0] + n - coords[len(coords)-1] // gap across the wrap point
	for i := 1; i < len(coords); i++ {
		maxGap = ints.MaxInt(maxGap, coords[i]-coords[i-1])
	}
	return n - maxGap + 1
}
