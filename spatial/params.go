// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/emer/htm/errs"
	"github.com/goki/ki/kit"
)

// PoolTypes select how each minicolumn's potential pool is sampled
type PoolTypes int

//go:generate stringer -type=PoolTypes

var KiT_PoolTypes = kit.Enums.AddEnum(PoolTypesN, kit.NotBitFlag, nil)

func (ev PoolTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *PoolTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// GlobalPool samples pool members uniformly from the whole input
	GlobalPool PoolTypes = iota

	// LocalPool samples pool members from a hypercube of Radius around the
	// minicolumn's proportional position in input space
	LocalPool

	PoolTypesN
)

// InhibTypes select how minicolumns compete for activity
type InhibTypes int

//go:generate stringer -type=InhibTypes

var KiT_InhibTypes = kit.Enums.AddEnum(InhibTypesN, kit.NotBitFlag, nil)

func (ev InhibTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *InhibTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// GlobalInhib takes the NActive highest scoring minicolumns overall
	GlobalInhib InhibTypes = iota

	// LocalInhib activates each minicolumn that has fewer than NActive
	// strictly higher scoring neighbors within the inhibition radius
	LocalInhib

	InhibTypesN
)

// PoolParams control potential pool sampling
type PoolParams struct {
	Type       PoolTypes `desc:"global or local (topographic) sampling of pool members"`
	NPotential int       `def:"20" min:"1" desc:"number of input bits in each minicolumn's potential pool, sampled once without replacement"`
	Radius     int       `viewif:"Type=LocalPool" def:"-1" desc:"hypercube radius in input space for LocalPool -- negative means no radius, which falls back on global sampling"`
}

func (pp *PoolParams) Defaults() {
	pp.Type = GlobalPool
	pp.NPotential = 20
	pp.Radius = -1
}

// IsLocal is true if pools are sampled topographically
func (pp *PoolParams) IsLocal() bool {
	return pp.Type == LocalPool && pp.Radius >= 0
}

// PermParams control permanence initialization and learning
type PermParams struct {
	Thr      float32 `def:"0.5" min:"0" max:"1" desc:"connection threshold: a pool member is connected iff its permanence >= Thr"`
	Delta    float32 `def:"0.1" min:"0" max:"1" desc:"initial permanences are Thr +/- uniform(0, Delta), + for connected members and - for the rest"`
	NConnect int     `def:"10" min:"0" desc:"number of pool members that start out connected"`
	Inc      float32 `def:"0.05" min:"0" max:"1" desc:"permanence increment for active inputs of active minicolumns"`
	Dec      float32 `def:"0.008" min:"0" max:"1" desc:"permanence decrement for inactive inputs of active minicolumns"`
	StimThr  int     `def:"0" min:"0" desc:"minimum number of connected members per minicolumn after initialization -- 0 = off"`
	StimInc  float32 `viewif:"StimThr>0" def:"0.05" min:"0" max:"1" desc:"step by which disconnected members are raised until StimThr connections exist"`
}

func (pp *PermParams) Defaults() {
	pp.Thr = 0.5
	pp.Delta = 0.1
	pp.NConnect = 10
	pp.Inc = 0.05
	pp.Dec = 0.008
	pp.StimThr = 0
	pp.StimInc = 0.05
}

// InhibParams control competition among minicolumns
type InhibParams struct {
	Type    InhibTypes `desc:"global or local inhibition"`
	NActive int        `def:"2" min:"1" desc:"target number of active minicolumns, overall (global) or per neighborhood (local)"`
}

func (ip *InhibParams) Defaults() {
	ip.Type = GlobalInhib
	ip.NActive = 2
}

// DutyParams control duty cycle integration
type DutyParams struct {
	Period int `def:"1000" min:"1" desc:"averaging period: dc' = ((Period-1)*dc + update) / Period"`
}

func (dp *DutyParams) Defaults() {
	dp.Period = 1000
}

// Integ integrates one update (0 or 1) into the duty cycle
func (dp *DutyParams) Integ(dc *float32, update float32) {
	per := float32(dp.Period)
	*dc = ((per-1)*(*dc) + update) / per
}

// Params are all the spatial pooling parameters
type Params struct {
	Pool  PoolParams  `view:"inline" desc:"potential pool sampling"`
	Perm  PermParams  `view:"inline" desc:"permanence initialization and learning"`
	Inhib InhibParams `view:"inline" desc:"minicolumn competition"`
	Duty  DutyParams  `view:"inline" desc:"duty cycle integration"`
	Boost BoostParams `view:"inline" desc:"homeostatic boosting of overlap scores"`
}

func (pr *Params) Defaults() {
	pr.Pool.Defaults()
	pr.Perm.Defaults()
	pr.Inhib.Defaults()
	pr.Duty.Defaults()
	pr.Boost.Defaults()
}

// Validate returns an errs.ErrConfig error for the first parameter that
// violates its declared range
func (pr *Params) Validate() error {
	pm := &pr.Perm
	switch {
	case pr.Pool.NPotential < 1:
		return errs.Configf("spatial.Params: Pool.NPotential %d must be >= 1", pr.Pool.NPotential)
	case pm.Thr < 0 || pm.Thr > 1:
		return errs.Configf("spatial.Params: Perm.Thr %v outside [0, 1]", pm.Thr)
	case pm.Thr == 0 && pm.NConnect < pr.Pool.NPotential:
		return errs.Configf("spatial.Params: Perm.Thr 0 leaves no permanence for the %d disconnected members", pr.Pool.NPotential-pm.NConnect)
	case pm.Delta < 0 || pm.Delta > 1:
		return errs.Configf("spatial.Params: Perm.Delta %v outside [0, 1]", pm.Delta)
	case pm.Inc < 0 || pm.Inc > 1:
		return errs.Configf("spatial.Params: Perm.Inc %v outside [0, 1]", pm.Inc)
	case pm.Dec < 0 || pm.Dec > 1:
		return errs.Configf("spatial.Params: Perm.Dec %v outside [0, 1]", pm.Dec)
	case pm.NConnect < 0 || pm.NConnect > pr.Pool.NPotential:
		return errs.Configf("spatial.Params: Perm.NConnect %d outside [0, NPotential = %d]", pm.NConnect, pr.Pool.NPotential)
	case pm.StimThr < 0 || pm.StimThr > pr.Pool.NPotential:
		return errs.Configf("spatial.Params: Perm.StimThr %d outside [0, NPotential = %d]", pm.StimThr, pr.Pool.NPotential)
	case pm.StimThr > 0 && (pm.StimInc <= 0 || pm.StimInc > 1):
		return errs.Configf("spatial.Params: Perm.StimInc %v outside (0, 1]", pm.StimInc)
	case pr.Inhib.NActive < 1:
		return errs.Configf("spatial.Params: Inhib.NActive %d must be >= 1", pr.Inhib.NActive)
	case pr.Duty.Period < 1:
		return errs.Configf("spatial.Params: Duty.Period %d must be >= 1", pr.Duty.Period)
	case pr.Boost.Strength < 0:
		return errs.Configf("spatial.Params: Boost.Strength %v must be >= 0", pr.Boost.Strength)
	}
	return nil
}

// AllParams returns a listing of all parameters
func (pr *Params) AllParams() string {
	str := "///////////////////////////////////////////////////\nSpatial Pooler Params\n"
	b, _ := json.MarshalIndent(&pr.Pool, "", " ")
	str += "Pool: {\n " + JsonToParams(b)
	b, _ = json.MarshalIndent(&pr.Perm, "", " ")
	str += "Perm: {\n " + JsonToParams(b)
	b, _ = json.MarshalIndent(&pr.Inhib, "", " ")
	str += "Inhib: {\n " + JsonToParams(b)
	b, _ = json.MarshalIndent(&pr.Duty, "", " ")
	str += "Duty: {\n " + JsonToParams(b)
	b, _ = json.MarshalIndent(&pr.Boost, "", " ")
	str += "Boost: {\n " + JsonToParams(b)
	return str
}

// JsonToParams reformates json output to suitable params display output
func JsonToParams(b []byte) string {
	br := strings.Replace(string(b), `"`, ``, -1)
	br = strings.Replace(br, ",\n", "", -1)
	br = strings.Replace(br, "{\n", "{", -1)
	br = strings.Replace(br, "} ", "}\n  ", -1)
	br = strings.Replace(br, "\n }", " }", -1)
	br = strings.Replace(br, "\n  }\n", " }", -1)
	return br[1:] + "\n"
}

// SaveJSON saves params to a JSON-formatted file
func (pr *Params) SaveJSON(filename string) error {
	b, err := json.MarshalIndent(pr, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// OpenJSON loads params from a JSON-formatted file, starting from
// Defaults so that missing fields keep their default values, and
// validates the result
func (pr *Params) OpenJSON(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	pr.Defaults()
	if err := json.Unmarshal(b, pr); err != nil {
		return err
	}
	return pr.Validate()
}
