// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"github.com/emer/htm/errs"
	"github.com/emer/htm/grid"
	"github.com/emer/htm/kmath"
)

// BuildPotential samples the potential pool of every minicolumn in cols,
// as sorted flat input indexes. GlobalPool (or a negative Radius) samples
// NPotential inputs uniformly from the whole input grid. LocalPool samples
// from the hypercube of Radius around the input position proportional to
// the minicolumn's position, wrapping at the input grid edges.
func BuildPotential(pp *PoolParams, in, cols *grid.Grid, rng kmath.Rand) ([][]int, error) {
	if pp.NPotential > in.Capacity() {
		return nil, errs.Configf("spatial.BuildPotential: NPotential %d exceeds input capacity %d", pp.NPotential, in.Capacity())
	}
	ncols := cols.Capacity()
	pools := make([][]int, ncols)
	if !pp.IsLocal() {
		for ci := range pools {
			mem, err := grid.SampleGrid(in, pp.NPotential, rng)
			if err != nil {
				return nil, err
			}
			pools[ci] = mem
		}
		return pools, nil
	}
	for ci := range pools {
		cc, err := cols.IndexToCoords(ci)
		if err != nil {
			return nil, err
		}
		center, err := grid.MapCoords(cols, in, cc)
		if err != nil {
			return nil, err
		}
		hc, err := grid.NewHypercube(in, pp.Radius, center)
		if err != nil {
			return nil, err
		}
		if hc.Capacity() < pp.NPotential {
			return nil, errs.Configf("spatial.BuildPotential: radius %d neighborhood has %d inputs, fewer than NPotential %d", pp.Radius, hc.Capacity(), pp.NPotential)
		}
		mem, err := grid.SampleHypercube(in, hc, pp.NPotential, rng)
		if err != nil {
			return nil, err
		}
		pools[ci] = mem
	}
	return pools, nil
}
