// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/minmax"
)

// SizeReport returns a string reporting the size of the pools and the
// per-minicolumn state, and the total memory footprint
func (sp *Pooler) SizeReport() string {
	var b strings.Builder
	pl := sp.Pools
	ns := pl.NSyns()
	// RConIndex, Perms, SConIndex, SPermIndex are 4 bytes each per member
	synMem := ns*4*4 + (len(pl.RConN)+len(pl.RConIndexSt)+len(pl.SConN)+len(pl.SConIndexSt))*4
	colMem := (len(sp.ActiveDuty) + len(sp.OverlapDuty) + len(sp.Boost) + len(sp.Targets)) * 4
	for _, nb := range sp.Neighbors {
		colMem += len(nb) * 8
	}
	fmt.Fprintf(&b, "%14s:\t %d\t Shape: %v\n", "Inputs", pl.NInputs, sp.InGrid.Dims())
	fmt.Fprintf(&b, "%14s:\t %d\t Shape: %v\t ColMem: %v\n", "Minicolumns", pl.NCols, sp.ColGrid.Dims(), (datasize.ByteSize)(colMem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Syns: %d\t Per Col: %g (max %g)\t Per Input: %g (max %g)\t SynMem: %v\n", "Pools", ns,
		pl.RConNAvgMax.Avg, pl.RConNAvgMax.Max, pl.SConNAvgMax.Avg, pl.SConNAvgMax.Max, (datasize.ByteSize)(synMem).HumanReadable())
	fmt.Fprintf(&b, "\n%14s:\t %v\n", "Total Mem", (datasize.ByteSize)(synMem+colMem).HumanReadable())
	return b.String()
}

// DutyStats holds the average and maximum duty cycles and boost factors
// over all minicolumns, with the number of established connections
type DutyStats struct {
	ActiveDuty  minmax.AvgMax32 `desc:"active duty cycle"`
	OverlapDuty minmax.AvgMax32 `desc:"overlap duty cycle"`
	Boost       minmax.AvgMax32 `desc:"boost factor"`
	Connected   minmax.AvgMax32 `desc:"number of established connections per minicolumn"`
}

// DutyStats computes the current DutyStats
func (sp *Pooler) DutyStats() DutyStats {
	var ds DutyStats
	ds.ActiveDuty.Init()
	ds.OverlapDuty.Init()
	ds.Boost.Init()
	ds.Connected.Init()
	for ci := range sp.ActiveDuty {
		ds.ActiveDuty.UpdateVal(sp.ActiveDuty[ci], int32(ci))
		ds.OverlapDuty.UpdateVal(sp.OverlapDuty[ci], int32(ci))
		ds.Boost.UpdateVal(sp.Boost[ci], int32(ci))
		ds.Connected.UpdateVal(float32(sp.Pools.Connected(ci, sp.Params.Perm.Thr)), int32(ci))
	}
	ds.ActiveDuty.CalcAvg()
	ds.OverlapDuty.CalcAvg()
	ds.Boost.CalcAvg()
	ds.Connected.CalcAvg()
	return ds
}

// String returns a one-line-per-stat report
func (ds *DutyStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%14s:\t Avg: %.4g\t Max: %.4g\n", "ActiveDuty", ds.ActiveDuty.Avg, ds.ActiveDuty.Max)
	fmt.Fprintf(&b, "%14s:\t Avg: %.4g\t Max: %.4g\n", "OverlapDuty", ds.OverlapDuty.Avg, ds.OverlapDuty.Max)
	fmt.Fprintf(&b, "%14s:\t Avg: %.4g\t Max: %.4g\n", "Boost", ds.Boost.Avg, ds.Boost.Max)
	fmt.Fprintf(&b, "%14s:\t Avg: %.4g\t Max: %.4g\n", "Connected", ds.Connected.Avg, ds.Connected.Max)
	return b.String()
}
