// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"errors"
	"math/rand"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/htm/errs"
	"github.com/emer/htm/grid"
	"github.com/emer/htm/kmath"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func mustGrid(t *testing.T, dims ...int) *grid.Grid {
	t.Helper()
	g, err := grid.New(dims...)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustPools(t *testing.T, nInputs int, members [][]int, perms ...[]float32) *Pools {
	t.Helper()
	pl, err := NewPools(nInputs, members)
	if err != nil {
		t.Fatal(err)
	}
	for ci, ps := range perms {
		copy(pl.ColPerms(ci), ps)
	}
	return pl
}

func TestParams(t *testing.T) {
	pr := &Params{}
	pr.Defaults()
	if err := pr.Validate(); err != nil {
		t.Fatal(err)
	}
	bad := []func(p *Params){
		func(p *Params) { p.Perm.Thr = 1.5 },
		func(p *Params) { p.Perm.Thr = 0 },
		func(p *Params) { p.Perm.Inc = -0.1 },
		func(p *Params) { p.Perm.NConnect = 30 },
		func(p *Params) { p.Perm.StimThr = 21 },
		func(p *Params) { p.Pool.NPotential = 0 },
		func(p *Params) { p.Inhib.NActive = 0 },
		func(p *Params) { p.Duty.Period = 0 },
		func(p *Params) { p.Boost.Strength = -1 },
	}
	for i, f := range bad {
		p := *pr
		f(&p)
		if err := p.Validate(); !errors.Is(err, errs.ErrConfig) {
			t.Errorf("case %d: expected config error, got %v", i, err)
		}
	}
	good := []func(p *Params){
		func(p *Params) { p.Perm.Delta = 0 },
		func(p *Params) { p.Perm.Delta = 1 },
		func(p *Params) { p.Perm.Thr = 0; p.Perm.NConnect = p.Pool.NPotential },
		func(p *Params) { p.Perm.Thr = 1 },
	}
	for i, f := range good {
		p := *pr
		f(&p)
		if err := p.Validate(); err != nil {
			t.Errorf("case %d: %v", i, err)
		}
	}

	pr.Inhib.Type = LocalInhib
	pr.Pool.Type = LocalPool
	pr.Pool.Radius = 3
	pr.Boost.Strength = 2
	fn := filepath.Join(t.TempDir(), "params.json")
	if err := pr.SaveJSON(fn); err != nil {
		t.Fatal(err)
	}
	var ld Params
	if err := ld.OpenJSON(fn); err != nil {
		t.Fatal(err)
	}
	if ld != *pr {
		t.Errorf("params JSON round trip: %+v != %+v", ld, *pr)
	}
	ap := pr.AllParams()
	if !strings.Contains(ap, "Perm: {") || !strings.Contains(ap, "Thr: 0.5") || !strings.Contains(ap, "LocalInhib") {
		t.Errorf("AllParams:\n%s", ap)
	}
}

func TestPools(t *testing.T) {
	mems := [][]int{{0, 2, 4}, {1, 2}, {2, 3, 4, 5}}
	pl := mustPools(t, 6, mems)
	if pl.NSyns() != 9 {
		t.Errorf("NSyns %d", pl.NSyns())
	}
	for ci, mem := range mems {
		got := pl.Members(ci)
		for mi := range mem {
			if int(got[mi]) != mem[mi] {
				t.Errorf("col %d members %v != %v", ci, got, mem)
			}
		}
	}
	if pl.SConN[2] != 3 || pl.SConN[0] != 1 || pl.SConN[5] != 1 {
		t.Errorf("sender counts %v", pl.SConN)
	}
	for si := 0; si < pl.NInputs; si++ {
		st := pl.SConIndexSt[si]
		for j := st; j < st+pl.SConN[si]; j++ {
			ri := pl.SPermIndex[j]
			ci := int(pl.SConIndex[j])
			if int(pl.RConIndex[ri]) != si {
				t.Errorf("input %d send index %d maps to member of input %d", si, j, pl.RConIndex[ri])
			}
			rst := pl.RConIndexSt[ci]
			if ri < rst || ri >= rst+pl.RConN[ci] {
				t.Errorf("input %d perm index %d outside col %d", si, ri, ci)
			}
		}
	}
	if pl.RConNAvgMax.Max != 4 || pl.RConNAvgMax.N != 3 || math32.Abs(pl.RConNAvgMax.Avg-3) > difTol {
		t.Errorf("pool size avg max: %+v", pl.RConNAvgMax)
	}
	copy(pl.ColPerms(2), []float32{.6, .2, .5, .1})
	if n := pl.Connected(2, .5); n != 2 {
		t.Errorf("connected %d", n)
	}
	if ins := pl.ConnectedInputs(2, .5); !reflect.DeepEqual(ins, []int{2, 4}) {
		t.Errorf("connected inputs %v", ins)
	}
	if _, err := NewPools(4, [][]int{{0, 4}}); !errors.Is(err, errs.ErrBounds) {
		t.Errorf("out of range member err: %v", err)
	}
}

func TestBuildPotential(t *testing.T) {
	in := mustGrid(t, 100)
	cols := mustGrid(t, 10)
	pp := &PoolParams{}
	pp.Defaults()
	pools, err := BuildPotential(pp, in, cols, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	for ci, mem := range pools {
		if len(mem) != 20 {
			t.Errorf("col %d pool size %d", ci, len(mem))
		}
		for i, si := range mem {
			if si < 0 || si >= 100 || (i > 0 && si <= mem[i-1]) {
				t.Errorf("col %d pool not distinct ascending in range: %v", ci, mem)
				break
			}
		}
	}

	pp.Type = LocalPool
	pp.Radius = 10
	pools, err = BuildPotential(pp, in, cols, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	for _, si := range pools[5] { // center 55
		if si < 44 || si > 66 {
			t.Errorf("local pool member %d outside neighborhood of 55: %v", si, pools[5])
		}
	}
	for _, si := range pools[0] { // center 5 wraps around to the top of the input
		if si > 16 && si < 94 {
			t.Errorf("wrapped pool member %d outside neighborhood of 5: %v", si, pools[0])
		}
	}

	pp.Radius = 5
	if _, err := BuildPotential(pp, in, cols, rand.New(rand.NewSource(1))); !errors.Is(err, errs.ErrConfig) {
		t.Errorf("small neighborhood err: %v", err)
	}
	pp.Defaults()
	pp.NPotential = 101
	if _, err := BuildPotential(pp, in, cols, rand.New(rand.NewSource(1))); !errors.Is(err, errs.ErrConfig) {
		t.Errorf("pool larger than input err: %v", err)
	}
}

func TestInitPerms(t *testing.T) {
	pm := &PermParams{}
	pm.Defaults()
	rng := rand.New(rand.NewSource(1))
	for _, ncon := range []int{0, 1, 10, 20} {
		pm.NConnect = ncon
		for rep := 0; rep < 20; rep++ {
			perms, err := InitPerms(pm, 20, rng)
			if err != nil {
				t.Fatal(err)
			}
			n := 0
			for _, p := range perms {
				if p >= pm.Thr {
					n++
					if p > pm.Thr+pm.Delta {
						t.Errorf("connected perm %v above Thr+Delta", p)
					}
				} else if p < pm.Thr-pm.Delta {
					t.Errorf("disconnected perm %v below Thr-Delta", p)
				}
				if p < 0 || p > 1 {
					t.Errorf("perm %v outside [0, 1]", p)
				}
			}
			if n != ncon {
				t.Errorf("NConnect %d: got %d connected", ncon, n)
			}
		}
	}
	pm.NConnect = 21
	if _, err := InitPerms(pm, 20, rng); !errors.Is(err, errs.ErrConfig) {
		t.Errorf("NConnect > pool err: %v", err)
	}

	// zero spread: connected exactly at Thr, the rest just below
	pm.Defaults()
	pm.Delta = 0
	pm.NConnect = 7
	perms, err := InitPerms(pm, 20, rng)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, p := range perms {
		switch {
		case p == pm.Thr:
			n++
		case p >= pm.Thr || pm.Thr-p > 1.0e-6:
			t.Errorf("Delta 0 perm %v, Thr %v", p, pm.Thr)
		}
	}
	if n != 7 {
		t.Errorf("Delta 0: got %d connected", n)
	}

	pm.Thr = 0
	pm.NConnect = 20
	perms, err = InitPerms(pm, 20, rng)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range perms {
		if p < 0 || p > pm.Delta {
			t.Errorf("Thr 0 perm %v", p)
		}
	}
	pm.NConnect = 19
	if _, err := InitPerms(pm, 20, rng); !errors.Is(err, errs.ErrConfig) {
		t.Errorf("Thr 0 with disconnected members err: %v", err)
	}
}

func TestRaiseStimulus(t *testing.T) {
	pm := &PermParams{}
	pm.Defaults()
	pm.StimThr = 3
	pl := mustPools(t, 5, [][]int{{0, 1, 2, 3, 4}, {0, 1, 2, 3, 4}},
		[]float32{.1, .1, .45, .1, .1}, []float32{.7, .6, .5, .1, .1})
	before := append([]float32(nil), pl.Perms...)
	if n := RaiseStimulus(pl, pm); n != 1 {
		t.Errorf("raised %d minicolumns", n)
	}
	if pl.Connected(0, pm.Thr) < 3 {
		t.Errorf("col 0 connected %d after raise: %v", pl.Connected(0, pm.Thr), pl.ColPerms(0))
	}
	for i, p := range pl.Perms {
		if p < before[i] {
			t.Errorf("perm %d decreased %v -> %v", i, before[i], p)
		}
	}
	for i, p := range pl.ColPerms(1) {
		if p != before[5+i] {
			t.Errorf("col 1 already at threshold but perm %d changed", i)
		}
	}
	pm.StimThr = 0
	if n := RaiseStimulus(pl, pm); n != 0 {
		t.Errorf("raise with StimThr 0: %d", n)
	}
}

func TestOverlap(t *testing.T) {
	pl := mustPools(t, 4, [][]int{{0, 1, 2}, {1, 2, 3}},
		[]float32{.6, .4, .5}, []float32{.5, .5, .5})
	ovl, err := Overlap(pl, []int{1, 2}, .5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ovl, []int{1, 2}) {
		t.Errorf("overlaps %v", ovl)
	}
	for _, bad := range []int{4, -1} {
		if _, err := Overlap(pl, []int{1, bad}, .5); !errors.Is(err, errs.ErrBounds) {
			t.Errorf("active input %d err: %v", bad, err)
		}
	}

	bp := &BoostParams{}
	bp.Defaults()
	sc := BoostedOverlap(bp, []int{2, 2}, []float32{2, .5})
	if sc[0] != 2 || sc[1] != 2 {
		t.Errorf("boost off scores %v", sc)
	}
	bp.Strength = 1
	sc = BoostedOverlap(bp, []int{2, 2}, []float32{2, .5})
	if sc[0] != 4 || sc[1] != 1 {
		t.Errorf("boosted scores %v", sc)
	}
}

func TestInhibGlobal(t *testing.T) {
	cases := []struct {
		scores []float32
		k      int
		want   []int
	}{
		{[]float32{1, 3, 3, 0, 2}, 2, []int{1, 2}},
		{[]float32{1, 3, 3, 0, 2}, 3, []int{1, 2, 4}},
		{[]float32{1, 3, 3, 0, 2}, 10, []int{0, 1, 2, 3, 4}},
		{[]float32{2, 2, 2}, 2, []int{0, 1}},
		{[]float32{0, 1, 0, 1}, 1, []int{1}},
	}
	for _, c := range cases {
		got := InhibGlobal(c.scores, c.k)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("InhibGlobal(%v, %d) = %v, want %v", c.scores, c.k, got, c.want)
		}
	}

	rng := rand.New(rand.NewSource(3))
	scores := make([]float32, 50)
	for i := range scores {
		scores[i] = float32(rng.Intn(8))
	}
	act := InhibGlobal(scores, 7)
	if len(act) != 7 {
		t.Fatalf("selected %d", len(act))
	}
	in := make(map[int]bool)
	for _, ci := range act {
		in[ci] = true
	}
	for _, ci := range act {
		for xi, sc := range scores {
			if !in[xi] && sc > scores[ci] {
				t.Errorf("excluded col %d score %v > selected col %d score %v", xi, sc, ci, scores[ci])
			}
		}
	}
}

func TestInhibLocal(t *testing.T) {
	cols := mustGrid(t, 5)
	nbs, err := Neighborhoods(cols, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(nbs[0], []int{1}) || !reflect.DeepEqual(nbs[2], []int{1, 3}) || !reflect.DeepEqual(nbs[4], []int{3}) {
		t.Errorf("clipped neighborhoods %v", nbs)
	}
	act := InhibLocal([]float32{1, 5, 2, 2, 0}, 1, nbs)
	if !reflect.DeepEqual(act, []int{1, 3}) {
		t.Errorf("local winners %v", act)
	}
	act = InhibLocal([]float32{1, 5, 2, 2, 0}, 2, nbs)
	if !reflect.DeepEqual(act, []int{0, 1, 2, 3, 4}) {
		t.Errorf("local winners, 2 active %v", act)
	}
	// ties are never strictly greater, so equal scores all win
	act = InhibLocal([]float32{0, 0, 0, 0, 0}, 1, nbs)
	if len(act) != 5 {
		t.Errorf("zero score winners %v", act)
	}

	sheet := mustGrid(t, 4, 4)
	nbs, err = Neighborhoods(sheet, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(nbs[0]) != 3 || len(nbs[5]) != 8 {
		t.Errorf("2d neighborhood sizes corner %d inner %d", len(nbs[0]), len(nbs[5]))
	}
}

func TestInhibRadius(t *testing.T) {
	in := mustGrid(t, 100)
	mems := make([][]int, 100)
	perms := make([][]float32, 100)
	for ci := range mems {
		// 10 inputs centered on ci, wrapping at both ends of the input
		for si := ci - 5; si < ci+5; si++ {
			mems[ci] = append(mems[ci], kmath.WrapInt(si, 100))
			perms[ci] = append(perms[ci], 1)
		}
		sort.Ints(mems[ci])
	}
	pl := mustPools(t, 100, mems, perms...)
	r, err := InhibRadius(pl, .5, in, mustGrid(t, 100))
	if err != nil {
		t.Fatal(err)
	}
	if r != 5 { // round((10 * 1 - 1) / 2)
		t.Errorf("radius %d", r)
	}

	pl = mustPools(t, 100, mems[:10], perms[:10]...)
	r, _ = InhibRadius(pl, .5, in, mustGrid(t, 10))
	if r != 1 {
		t.Errorf("minimum radius %d", r)
	}
	if _, err := InhibRadius(pl, .5, in, mustGrid(t, 2, 5)); !errors.Is(err, errs.ErrConfig) {
		t.Errorf("dimension mismatch err: %v", err)
	}
}

func TestRingSpan(t *testing.T) {
	cases := []struct {
		coords []int
		n      int
		want   int
	}{
		{nil, 10, 0},
		{[]int{4}, 10, 1},
		{[]int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, 100, 11},
		{[]int{0, 1, 2, 3, 4, 5, 95, 96, 97, 98, 99}, 100, 11},
		{[]int{99, 0}, 100, 2},
		{[]int{2, 2, 3}, 10, 2},
		{[]int{0, 1, 2, 3}, 4, 4},
		{[]int{0, 50}, 100, 51},
	}
	for _, c := range cases {
		if got := RingSpan(c.coords, c.n); got != c.want {
			t.Errorf("RingSpan(%v, %d) = %d, want %d", c.coords, c.n, got, c.want)
		}
	}
}

func TestInhibRadiusWrappedPools(t *testing.T) {
	// every local pool is exactly the 21 inputs around its column, fully
	// connected, including the pools that wrap at the input edges
	pr := &Params{}
	pr.Defaults()
	pr.Pool.Type = LocalPool
	pr.Pool.Radius = 10
	pr.Pool.NPotential = 21
	pr.Perm.NConnect = 21
	pr.Inhib.Type = LocalInhib
	sp, err := NewPooler(pr, mustGrid(t, 1000), mustGrid(t, 1000), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	for _, ci := range []int{0, 3, 500, 996, 999} {
		if n := sp.Pools.Connected(ci, pr.Perm.Thr); n != 21 {
			t.Errorf("col %d connected %d", ci, n)
		}
	}
	if sp.InhibRad != 10 { // round((21 * 1 - 1) / 2)
		t.Errorf("inhib radius %d, want 10", sp.InhibRad)
	}
	if len(sp.Neighbors[500]) != 20 || len(sp.Neighbors[0]) != 10 {
		t.Errorf("neighborhood sizes: inner %d edge %d", len(sp.Neighbors[500]), len(sp.Neighbors[0]))
	}
}

func TestLearn(t *testing.T) {
	pm := &PermParams{}
	pm.Defaults()
	pl := mustPools(t, 3, [][]int{{0, 1, 2}, {0}},
		[]float32{.5, .99, .004}, []float32{.3})
	Learn(pl, pm, []int{0}, []bool{true, true, false})
	want := []float32{.55, 1, 0}
	for i, p := range pl.ColPerms(0) {
		if math32.Abs(p-want[i]) > difTol {
			t.Errorf("perm %d: %v, want %v", i, p, want[i])
		}
	}
	if pl.ColPerms(1)[0] != .3 {
		t.Errorf("inactive col changed: %v", pl.ColPerms(1))
	}
}

func TestDuty(t *testing.T) {
	dp := &DutyParams{Period: 10}
	dc := float32(0)
	dp.Integ(&dc, 1)
	dp.Integ(&dc, 1)
	if math32.Abs(dc-.19) > difTol {
		t.Errorf("duty after two updates %v", dc)
	}
	dp.Integ(&dc, 0)
	if math32.Abs(dc-.171) > difTol {
		t.Errorf("duty after decay %v", dc)
	}

	act := make([]float32, 3)
	ovl := make([]float32, 3)
	UpdateDuty(dp, act, ovl, []int{1}, []int{0, 3, 1})
	wact := []float32{0, .1, 0}
	wovl := []float32{0, .1, .1}
	for i := range act {
		if math32.Abs(act[i]-wact[i]) > difTol || math32.Abs(ovl[i]-wovl[i]) > difTol {
			t.Errorf("col %d duty %v overlap duty %v", i, act[i], ovl[i])
		}
	}

	bp := &BoostParams{}
	bp.Defaults()
	if f := bp.Factor(.5, .1); f != 1 {
		t.Errorf("boost off factor %v", f)
	}
	bp.Strength = 2
	if f := bp.Factor(.1, .2); math32.Abs(f-1.2214028) > difTol {
		t.Errorf("boost factor %v", f)
	}
	boost := make([]float32, 2)
	UpdateBoost(bp, boost, []float32{.2, .4}, []float32{.2, .2})
	if boost[0] != 1 || boost[1] >= 1 {
		t.Errorf("boost at and above target %v", boost)
	}
}
