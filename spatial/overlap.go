// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"github.com/emer/htm/errs"
)

// Overlap returns, for each minicolumn, the number of active inputs it is
// connected to (permanence >= thr). Fails with errs.ErrBounds, before any
// scoring, if an active index is outside [0, NInputs).
func Overlap(pl *Pools, active []int, thr float32) ([]int, error) {
	for _, si := range active {
		if si < 0 || si >= pl.NInputs {
			return nil, errs.Boundsf("spatial.Overlap: active input %d outside [0, %d)", si, pl.NInputs)
		}
	}
	ovl := make([]int, pl.NCols)
	for _, si := range active {
		st := pl.SConIndexSt[si]
		nc := pl.SConN[si]
		for j := st; j < st+nc; j++ {
			if pl.Perms[pl.SPermIndex[j]] >= thr {
				ovl[pl.SConIndex[j]]++
			}
		}
	}
	return ovl, nil
}

// BoostedOverlap returns the inhibition scores: overlaps multiplied by
// the boost factors when boosting is on, the raw overlaps otherwise.
func BoostedOverlap(bp *BoostParams, overlaps []int, boost []float32) []float32 {
	sc := make([]float32, len(overlaps))
	for ci, ov := range overlaps {
		sc[ci] = float32(ov)
		if bp.On() {
			sc[ci] *= boost[ci]
		}
	}
	return sc
}
