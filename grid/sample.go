// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"sort"

	"github.com/emer/htm/kmath"
)

// SampleGrid draws k distinct flat indexes uniformly from the whole grid,
// sorted ascending. Fails with errs.ErrDomain if k > Capacity().
func SampleGrid(g *Grid, k int, rng kmath.Rand) ([]int, error) {
	return kmath.ReservoirSample(rng, g.Len(), k)
}

// SampleHypercube draws k distinct flat grid indexes uniformly from the
// cells of hc, wrapping out-of-range hypercube coordinates cyclically per
// dimension back into the grid. The result is sorted ascending.
// Fails with errs.ErrDomain if k > hc.Capacity().
func SampleHypercube(g *Grid, hc Hypercube, k int, rng kmath.Rand) ([]int, error) {
	locals, err := kmath.ReservoirSample(rng, hc.Capacity(), k)
	if err != nil {
		return nil, err
	}
	dims := g.Dims()
	idxs := make([]int, len(locals))
	for i, li := range locals {
		idxs[i] = flatIndex(dims, hc.Local(g, li))
	}
	sort.Ints(idxs)
	return idxs, nil
}
