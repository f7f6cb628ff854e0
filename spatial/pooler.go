// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"github.com/emer/htm/grid"
	"github.com/emer/htm/kmath"
	"github.com/emer/htm/sdr"
	"github.com/goki/ki/ints"
)

// Pooler holds the full state of one minicolumn population: pools and
// permanences, duty cycles and boost factors, and the results of the last
// cycle. All state is exported and can be driven directly with the
// package-level phase functions instead of Cycle.
type Pooler struct {
	Params      Params     `desc:"spatial pooling parameters"`
	InGrid      *grid.Grid `desc:"input space"`
	ColGrid     *grid.Grid `desc:"minicolumn space"`
	Pools       *Pools     `desc:"potential pools and permanences"`
	ActiveDuty  []float32  `desc:"[minicolumns] active duty cycle"`
	OverlapDuty []float32  `desc:"[minicolumns] duty cycle of nonzero overlap"`
	Boost       []float32  `desc:"[minicolumns] boost factor multiplying the overlap score when Boost.Strength > 0"`
	Targets     []float32  `desc:"[minicolumns] target activity density for boosting"`
	InhibRad    int        `desc:"local inhibition radius in minicolumn space, only used for LocalInhib"`
	Neighbors   [][]int    `view:"-" desc:"[minicolumns] neighbors within InhibRad, only used for LocalInhib"`
	Overlaps    []int      `desc:"[minicolumns] overlap scores of the last cycle"`
	Scores      []float32  `desc:"[minicolumns] boosted overlap scores of the last cycle, as seen by inhibition"`
	Active      []int      `desc:"active minicolumns of the last cycle, ascending"`
	NCycles     int        `desc:"number of learning cycles run"`
}

// NewPooler builds a pooler from params over the given input and
// minicolumn grids: samples the potential pools, initializes permanences,
// raises under-connected minicolumns, and for LocalInhib derives the
// inhibition radius. All randomness comes from rng.
func NewPooler(pr *Params, in, cols *grid.Grid, rng kmath.Rand) (*Pooler, error) {
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	sp := &Pooler{Params: *pr, InGrid: in, ColGrid: cols}
	mems, err := BuildPotential(&sp.Params.Pool, in, cols, rng)
	if err != nil {
		return nil, err
	}
	sp.Pools, err = NewPools(in.Capacity(), mems)
	if err != nil {
		return nil, err
	}
	if err := InitPools(sp.Pools, &sp.Params.Perm, rng); err != nil {
		return nil, err
	}
	RaiseStimulus(sp.Pools, &sp.Params.Perm)

	nc := cols.Capacity()
	sp.ActiveDuty = make([]float32, nc)
	sp.OverlapDuty = make([]float32, nc)
	sp.Boost = make([]float32, nc)
	for ci := range sp.Boost {
		sp.Boost[ci] = 1
	}
	sp.Targets = make([]float32, nc)
	if sp.Params.Inhib.Type == LocalInhib {
		if err := sp.UpdateInhibRadius(); err != nil {
			return nil, err
		}
	} else {
		sp.UpdateTargets()
	}
	return sp, nil
}

// UpdateInhibRadius re-derives the local inhibition radius from the
// current connections and rebuilds the neighborhoods and boost targets
func (sp *Pooler) UpdateInhibRadius() error {
	r, err := InhibRadius(sp.Pools, sp.Params.Perm.Thr, sp.InGrid, sp.ColGrid)
	if err != nil {
		return err
	}
	nbs, err := Neighborhoods(sp.ColGrid, r)
	if err != nil {
		return err
	}
	sp.InhibRad = r
	sp.Neighbors = nbs
	sp.UpdateTargets()
	return nil
}

// UpdateTargets sets the target density of each minicolumn: NActive over
// the number of minicolumns competing with it
func (sp *Pooler) UpdateTargets() {
	na := float32(sp.Params.Inhib.NActive)
	for ci := range sp.Targets {
		n := sp.ColGrid.Capacity()
		if sp.Params.Inhib.Type == LocalInhib {
			n = len(sp.Neighbors[ci]) + 1
		}
		sp.Targets[ci] = na / float32(ints.MaxInt(n, 1))
		if sp.Targets[ci] > 1 {
			sp.Targets[ci] = 1
		}
	}
}

// Cycle runs one input through the pooler: overlap scoring, boosting,
// inhibition and, if learn is true, permanence learning and duty cycle and
// boost updates. Returns a copy of the active minicolumns, ascending,
// which the caller owns: sp.Active is not affected by changes to it. Fails with
// errs.ErrBounds, with no state changed, if an active input is outside
// the input grid.
func (sp *Pooler) Cycle(input sdr.Vector, learn bool) ([]int, error) {
	act := sdr.ActiveBits(input)
	ovl, err := Overlap(sp.Pools, act, sp.Params.Perm.Thr)
	if err != nil {
		return nil, err
	}
	sp.Overlaps = ovl
	sp.Scores = BoostedOverlap(&sp.Params.Boost, ovl, sp.Boost)
	sp.Active = sp.Inhib(sp.Scores)
	if !learn {
		return append([]int(nil), sp.Active...), nil
	}
	inputOn := make([]bool, sp.Pools.NInputs)
	for _, si := range act {
		inputOn[si] = true
	}
	Learn(sp.Pools, &sp.Params.Perm, sp.Active, inputOn)
	UpdateDuty(&sp.Params.Duty, sp.ActiveDuty, sp.OverlapDuty, sp.Active, sp.Overlaps)
	if sp.Params.Boost.On() {
		UpdateBoost(&sp.Params.Boost, sp.Boost, sp.ActiveDuty, sp.Targets)
	}
	sp.NCycles++
	return append([]int(nil), sp.Active...), nil
}

// Inhib selects the active minicolumns from the scores according to
// Inhib.Type
func (sp *Pooler) Inhib(scores []float32) []int {
	if sp.Params.Inhib.Type == LocalInhib {
		return InhibLocal(scores, sp.Params.Inhib.NActive, sp.Neighbors)
	}
	return InhibGlobal(scores, sp.Params.Inhib.NActive)
}

// ActiveSDR returns the active minicolumns of the last cycle as an SDR
// over the minicolumn grid
func (sp *Pooler) ActiveSDR() (sdr.Bits, error) {
	return sdr.FromActive(sp.ColGrid.Capacity(), sp.Active)
}
