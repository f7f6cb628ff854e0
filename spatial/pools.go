// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"log"

	"github.com/emer/etable/v2/minmax"
	"github.com/emer/htm/errs"
)

// Pools holds the potential pool of every minicolumn together with the
// permanence table: one permanence per pool member. Members are indexed
// both by minicolumn (receiving) and by input bit (sending) so that overlap
// scoring can iterate only over the pools that contain active inputs.
// Only the learning rule modifies Perms.
type Pools struct {
	NInputs int `desc:"number of input bits"`
	NCols   int `desc:"number of minicolumns"`

	RConN       []int32         `view:"-" desc:"[minicolumns] number of pool members for each minicolumn"`
	RConNAvgMax minmax.AvgMax32 `inactive:"+" view:"inline" desc:"average and maximum number of pool members per minicolumn"`
	RConIndexSt []int32         `view:"-" desc:"[minicolumns] starting index into RConIndex and Perms for each minicolumn"`
	RConIndex   []int32         `view:"-" desc:"[minicolumns][members] input index of each pool member, ascending within each minicolumn"`
	Perms       []float32       `view:"-" desc:"[minicolumns][members] permanence of each pool member, parallel to RConIndex"`

	SConN       []int32         `view:"-" desc:"[inputs] number of pools containing each input"`
	SConNAvgMax minmax.AvgMax32 `inactive:"+" view:"inline" desc:"average and maximum number of pools per input"`
	SConIndexSt []int32         `view:"-" desc:"[inputs] starting index into SConIndex and SPermIndex for each input"`
	SConIndex   []int32         `view:"-" desc:"[inputs][pools] minicolumn index of each pool containing the input"`
	SPermIndex  []int32         `view:"-" desc:"[inputs][pools] index into Perms of the corresponding pool member"`
}

// NewPools builds the two-way index for the given per-minicolumn pool
// members, which must be distinct input indexes in [0, nInputs).
// Permanences start at zero.
func NewPools(nInputs int, members [][]int) (*Pools, error) {
	pl := &Pools{NInputs: nInputs, NCols: len(members)}
	tot := 0
	sendn := make([]int32, nInputs)
	recvn := make([]int32, pl.NCols)
	for ci, mem := range members {
		for _, si := range mem {
			if si < 0 || si >= nInputs {
				return nil, errs.Boundsf("spatial.NewPools: minicolumn %d member %d outside [0, %d)", ci, si, nInputs)
			}
			sendn[si]++
		}
		recvn[ci] = int32(len(mem))
		tot += len(mem)
	}
	tconr := pl.SetNIndexSt(&pl.RConN, &pl.RConNAvgMax, &pl.RConIndexSt, recvn)
	tcons := pl.SetNIndexSt(&pl.SConN, &pl.SConNAvgMax, &pl.SConIndexSt, sendn)
	if tconr != tcons {
		log.Printf("spatial.NewPools programmer error: total recv cons %v != total send cons %v\n", tconr, tcons)
	}
	pl.RConIndex = make([]int32, tot)
	pl.Perms = make([]float32, tot)
	pl.SConIndex = make([]int32, tot)
	pl.SPermIndex = make([]int32, tot)

	sconN := make([]int32, nInputs) // current n of sending cons filled in
	for ci, mem := range members {
		rst := pl.RConIndexSt[ci]
		for mi, si := range mem {
			ri := rst + int32(mi)
			pl.RConIndex[ri] = int32(si)
			sci := pl.SConIndexSt[si] + sconN[si]
			pl.SConIndex[sci] = int32(ci)
			pl.SPermIndex[sci] = ri
			sconN[si]++
		}
	}
	return pl, nil
}

// SetNIndexSt sets the *ConN and *ConIndexSt values given per-unit counts.
// Returns total number of connections for this direction.
func (pl *Pools) SetNIndexSt(n *[]int32, avgmax *minmax.AvgMax32, idxst *[]int32, counts []int32) int32 {
	ln := len(counts)
	*n = make([]int32, ln)
	*idxst = make([]int32, ln)
	idx := int32(0)
	avgmax.Init()
	for i, nv := range counts {
		(*n)[i] = nv
		(*idxst)[i] = idx
		idx += nv
		avgmax.UpdateVal(float32(nv), int32(i))
	}
	avgmax.CalcAvg()
	return idx
}

// Members returns the input indexes in the pool of minicolumn ci
func (pl *Pools) Members(ci int) []int32 {
	st := pl.RConIndexSt[ci]
	return pl.RConIndex[st : st+pl.RConN[ci]]
}

// ColPerms returns the permanences of the pool of minicolumn ci -- a view
// into Perms, so writes update the table
func (pl *Pools) ColPerms(ci int) []float32 {
	st := pl.RConIndexSt[ci]
	return pl.Perms[st : st+pl.RConN[ci]]
}

// Connected returns the number of pool members of minicolumn ci with
// permanence >= thr
func (pl *Pools) Connected(ci int, thr float32) int {
	n := 0
	for _, p := range pl.ColPerms(ci) {
		if p >= thr {
			n++
		}
	}
	return n
}

// ConnectedInputs returns the input indexes of the established
// connections of minicolumn ci
func (pl *Pools) ConnectedInputs(ci int, thr float32) []int {
	mem := pl.Members(ci)
	var ins []int
	for mi, p := range pl.ColPerms(ci) {
		if p >= thr {
			ins = append(ins, int(mem[mi]))
		}
	}
	return ins
}

// NSyns is the total number of pool members over all minicolumns
func (pl *Pools) NSyns() int {
	return len(pl.Perms)
}
