// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/emer/htm/errs"
	"github.com/emer/htm/kmath"
	"github.com/goki/ki/ints"
	"github.com/goki/ki/kit"
	"gonum.org/v1/gonum/stat/combin"
)

// EdgePolicies determine how hypercube cells that fall outside the parent
// grid are treated
type EdgePolicies int

//go:generate stringer -type=EdgePolicies

var KiT_EdgePolicies = kit.Enums.AddEnum(EdgePoliciesN, kit.NotBitFlag, nil)

func (ev EdgePolicies) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *EdgePolicies) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Clip drops cells outside the grid, so neighborhoods shrink at the edges
	Clip EdgePolicies = iota

	// Wrap maps out-of-range coordinates cyclically back into each dimension (toroidal)
	Wrap

	EdgePoliciesN
)

// Span is the extent of a hypercube along one dimension: Capacity cells
// starting at Offset, which may be negative or run past the end of the
// dimension until an EdgePolicies is applied.
type Span struct {
	Offset   int
	Capacity int
}

// Hypercube is a rectangular neighborhood of a grid, one Span per dimension
type Hypercube struct {
	Spans []Span
}

// NewHypercube returns the neighborhood of given radius around center:
// [center-radius, center+radius] in each dimension. A dimension whose
// width 2*radius+1 reaches the grid size is covered entirely (offset 0),
// so no cell is ever visited twice under Wrap. Zero radius yields the
// single center cell.
func NewHypercube(g *Grid, radius int, center []int) (Hypercube, error) {
	if radius < 0 {
		return Hypercube{}, errs.Configf("grid.NewHypercube: negative radius %d", radius)
	}
	if err := g.checkCoords(center); err != nil {
		return Hypercube{}, err
	}
	hc := Hypercube{Spans: make([]Span, len(center))}
	width := 2*radius + 1
	for i, c := range center {
		d := g.Dim(i)
		if width >= d {
			hc.Spans[i] = Span{Offset: 0, Capacity: d}
		} else {
			hc.Spans[i] = Span{Offset: c - radius, Capacity: width}
		}
	}
	return hc, nil
}

// Shape returns the per-dimension capacities of the hypercube
func (hc Hypercube) Shape() []int {
	shp := make([]int, len(hc.Spans))
	for i, s := range hc.Spans {
		shp[i] = s.Capacity
	}
	return shp
}

// Capacity is the number of cells in the hypercube
func (hc Hypercube) Capacity() int {
	if len(hc.Spans) == 0 {
		return 0
	}
	n := 1
	for _, s := range hc.Spans {
		n *= s.Capacity
	}
	return n
}

// Clip returns the hypercube intersected with the grid
func (hc Hypercube) Clip(g *Grid) Hypercube {
	cl := Hypercube{Spans: make([]Span, len(hc.Spans))}
	for i, s := range hc.Spans {
		st := ints.MaxInt(s.Offset, 0)
		ed := ints.MinInt(s.Offset+s.Capacity, g.Dim(i))
		cl.Spans[i] = Span{Offset: st, Capacity: ints.MaxInt(ed-st, 0)}
	}
	return cl
}

// Local converts a hypercube-local flat index into grid coordinates,
// wrapping each out-of-range coordinate cyclically into its dimension.
func (hc Hypercube) Local(g *Grid, local int) []int {
	coords := coordsOf(hc.Shape(), local)
	for i := range coords {
		coords[i] = kmath.WrapInt(coords[i]+hc.Spans[i].Offset, g.Dim(i))
	}
	return coords
}

// Cells returns the flat grid indexes of all hypercube cells, in row-major
// order of the hypercube, applying the given edge policy.
func (hc Hypercube) Cells(g *Grid, policy EdgePolicies) []int {
	if policy == Clip {
		hc = hc.Clip(g)
	}
	if hc.Capacity() == 0 {
		return nil
	}
	dims := g.Dims()
	subs := combin.Cartesian(hc.Shape())
	cells := make([]int, len(subs))
	for ci, sub := range subs {
		for i := range sub {
			sub[i] = kmath.WrapInt(sub[i]+hc.Spans[i].Offset, dims[i])
		}
		cells[ci] = flatIndex(dims, sub)
	}
	return cells
}
