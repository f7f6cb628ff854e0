// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"log"

	"github.com/chewxy/math32"
	"github.com/emer/htm/errs"
	"github.com/emer/htm/kmath"
)

// InitPerms returns nPotential initial permanences, exactly NConnect of
// which (chosen at random) are >= Thr, in [Thr, Thr+Delta], and the rest
// strictly below Thr, in [Thr-Delta, Thr). Values are clamped to [0, 1].
func InitPerms(pm *PermParams, nPotential int, rng kmath.Rand) ([]float32, error) {
	if pm.NConnect < 0 || pm.NConnect > nPotential {
		return nil, errs.Configf("spatial.InitPerms: NConnect %d outside [0, %d]", pm.NConnect, nPotential)
	}
	if pm.Thr < 0 || pm.Thr > 1 {
		return nil, errs.Configf("spatial.InitPerms: Thr %v outside [0, 1]", pm.Thr)
	}
	// no permanence is below 0
	if pm.Thr == 0 && pm.NConnect < nPotential {
		return nil, errs.Configf("spatial.InitPerms: Thr 0 with %d of %d members disconnected", nPotential-pm.NConnect, nPotential)
	}
	con, err := kmath.ReservoirSample(rng, nPotential, pm.NConnect)
	if err != nil {
		return nil, err
	}
	perms := make([]float32, nPotential)
	ci := 0
	for i := range perms {
		u := float32(rng.Float64())
		if ci < len(con) && con[ci] == i {
			perms[i] = math32.Min(pm.Thr+pm.Delta*u, 1)
			ci++
			continue
		}
		p := pm.Thr - pm.Delta*(1-u)
		if p >= pm.Thr {
			p = math32.Nextafter(pm.Thr, 0)
		}
		perms[i] = math32.Max(p, 0)
	}
	return perms, nil
}

// InitPools assigns initial permanences to every pool in pl
func InitPools(pl *Pools, pm *PermParams, rng kmath.Rand) error {
	for ci := 0; ci < pl.NCols; ci++ {
		perms, err := InitPerms(pm, int(pl.RConN[ci]), rng)
		if err != nil {
			return err
		}
		copy(pl.ColPerms(ci), perms)
	}
	return nil
}

// RaiseStimulus raises the permanences of every disconnected member of
// each minicolumn that has fewer than StimThr connections by StimInc per
// pass, until StimThr connections exist. Established members are never
// lowered. Each minicolumn takes at most ceil(Thr / StimInc) + 1 passes.
// Returns the number of minicolumns that were raised.
func RaiseStimulus(pl *Pools, pm *PermParams) int {
	if pm.StimThr <= 0 || pm.StimInc <= 0 {
		return 0
	}
	maxPass := int(math32.Ceil(pm.Thr/pm.StimInc)) + 1
	nraised := 0
	for ci := 0; ci < pl.NCols; ci++ {
		if pl.Connected(ci, pm.Thr) >= pm.StimThr {
			continue
		}
		nraised++
		perms := pl.ColPerms(ci)
		pass := 0
		for ; pass < maxPass && pl.Connected(ci, pm.Thr) < pm.StimThr; pass++ {
			for i, p := range perms {
				if p < pm.Thr {
					perms[i] = math32.Min(p+pm.StimInc, 1)
				}
			}
		}
		if pl.Connected(ci, pm.Thr) < pm.StimThr {
			log.Printf("spatial.RaiseStimulus: minicolumn %d has %d connections after %d passes, wanted %d\n", ci, pl.Connected(ci, pm.Thr), pass, pm.StimThr)
		}
	}
	return nraised
}
