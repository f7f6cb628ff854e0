// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"github.com/chewxy/math32"
)

// Learn adapts the pools of the active minicolumns: permanences of members
// whose input is on are increased by Inc, the rest decreased by Dec, both
// clamped to [0, 1]. inputOn is indexed by input and must have NInputs
// entries. Inactive minicolumns are unchanged.
func Learn(pl *Pools, pm *PermParams, activeCols []int, inputOn []bool) {
	for _, ci := range activeCols {
		mem := pl.Members(ci)
		perms := pl.ColPerms(ci)
		for mi, si := range mem {
			if inputOn[si] {
				perms[mi] = math32.Min(perms[mi]+pm.Inc, 1)
			} else {
				perms[mi] = math32.Max(perms[mi]-pm.Dec, 0)
			}
		}
	}
}
