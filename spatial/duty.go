// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"github.com/chewxy/math32"
)

// BoostParams control homeostatic boosting: minicolumns that have been
// active less often than the target density get their overlap scores
// multiplied up, and over-active ones multiplied down.
type BoostParams struct {
	Strength float32 `def:"0" min:"0" desc:"boost strength -- 0 turns boosting off so inhibition sees raw overlap scores"`
}

func (bp *BoostParams) Defaults() {
	bp.Strength = 0
}

// On is true if boost factors are applied to overlap scores
func (bp *BoostParams) On() bool {
	return bp.Strength > 0
}

// Factor returns the boost factor for a minicolumn with the given active
// duty cycle: exp(-Strength * (dc - target))
func (bp *BoostParams) Factor(dc, target float32) float32 {
	if !bp.On() {
		return 1
	}
	return math32.Exp(-bp.Strength * (dc - target))
}

// UpdateDuty integrates one cycle of activity into the active and overlap
// duty cycles: active[ci] gets 1 iff ci is in activeCols, overlapDC[ci]
// gets 1 iff overlaps[ci] > 0. activeCols must be sorted ascending.
func UpdateDuty(dp *DutyParams, activeDC, overlapDC []float32, activeCols []int, overlaps []int) {
	ai := 0
	for ci := range activeDC {
		var act float32
		if ai < len(activeCols) && activeCols[ai] == ci {
			act = 1
			ai++
		}
		dp.Integ(&activeDC[ci], act)
		var ovl float32
		if overlaps[ci] > 0 {
			ovl = 1
		}
		dp.Integ(&overlapDC[ci], ovl)
	}
}

// UpdateBoost recomputes boost factors from the active duty cycles.
// targets holds the target density of each minicolumn.
func UpdateBoost(bp *BoostParams, boost, activeDC, targets []float32) {
	for ci := range boost {
		boost[ci] = bp.Factor(activeDC[ci], targets[ci])
	}
}
