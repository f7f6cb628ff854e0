// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package grid maps between flat indexes and N-dimensional coordinates
over a grid shape, maps coordinates proportionally between grids of
different shape, and builds and samples hypercube neighborhoods.

A Grid is a pure shape descriptor: an ordered list of positive
per-dimension sizes, laid out in row-major order (last dimension
varies fastest), exactly as an etensor.Shape with default strides.
*/
package grid

import (
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/htm/errs"
	"github.com/emer/htm/kmath"
	"github.com/goki/ki/ints"
)

// Grid is an N-dimensional row-major shape
type Grid struct {
	etensor.Shape
}

// New returns a grid with the given dimension sizes, which must all be positive
func New(dims ...int) (*Grid, error) {
	if len(dims) == 0 {
		return nil, errs.Configf("grid.New: no dimensions")
	}
	for i, d := range dims {
		if d <= 0 {
			return nil, errs.Configf("grid.New: dimension %d has non-positive size %d", i, d)
		}
	}
	g := &Grid{}
	g.SetShape(dims, nil, nil)
	return g, nil
}

// Dims returns a copy of the per-dimension sizes
func (g *Grid) Dims() []int {
	nd := g.NumDims()
	dims := make([]int, nd)
	for i := range dims {
		dims[i] = g.Dim(i)
	}
	return dims
}

// Capacity is the total number of cells in the grid
func (g *Grid) Capacity() int {
	return g.Len()
}

// CoordsToIndex returns the row-major flat index of the given coordinates.
// Fails with errs.ErrBounds if any coordinate is outside its dimension.
func (g *Grid) CoordsToIndex(coords []int) (int, error) {
	if err := g.checkCoords(coords); err != nil {
		return 0, err
	}
	return flatIndex(g.Dims(), coords), nil
}

// IndexToCoords returns the coordinates of the given flat index.
// Fails with errs.ErrBounds if idx is outside [0, Capacity()).
func (g *Grid) IndexToCoords(idx int) ([]int, error) {
	if idx < 0 || idx >= g.Len() {
		return nil, errs.Boundsf("grid.IndexToCoords: index %d outside [0, %d)", idx, g.Len())
	}
	return coordsOf(g.Dims(), idx), nil
}

// NormalizeCoords maps each coordinate to the proportional position of the
// center of its cell within its dimension, in (0, 1).
func (g *Grid) NormalizeCoords(coords []int) ([]float64, error) {
	if err := g.checkCoords(coords); err != nil {
		return nil, err
	}
	norm := make([]float64, len(coords))
	for i, c := range coords {
		norm[i], _ = kmath.Normalize(0, float64(g.Dim(i)), float64(c)+0.5)
	}
	return norm, nil
}

// DenormalizeCoords is the inverse of NormalizeCoords: each proportion is
// scaled to its dimension and clamped to a valid coordinate.
func (g *Grid) DenormalizeCoords(norm []float64) ([]int, error) {
	if len(norm) != g.NumDims() {
		return nil, errs.Boundsf("grid.DenormalizeCoords: %d values for %d dimensions", len(norm), g.NumDims())
	}
	coords := make([]int, len(norm))
	for i, p := range norm {
		d := g.Dim(i)
		coords[i] = ints.MinInt(int(kmath.Fit01(p)*float64(d)), d-1)
	}
	return coords, nil
}

// MapCoords maps coordinates in grid from to the proportionally equivalent
// coordinates in grid to. Both grids must have the same number of dimensions.
func MapCoords(from, to *Grid, coords []int) ([]int, error) {
	if from.NumDims() != to.NumDims() {
		return nil, errs.Configf("grid.MapCoords: %d-d grid mapped to %d-d grid", from.NumDims(), to.NumDims())
	}
	norm, err := from.NormalizeCoords(coords)
	if err != nil {
		return nil, err
	}
	return to.DenormalizeCoords(norm)
}

func (g *Grid) checkCoords(coords []int) error {
	if len(coords) != g.NumDims() {
		return errs.Boundsf("grid: %d coordinates for %d dimensions", len(coords), g.NumDims())
	}
	for i, c := range coords {
		if c < 0 || c >= g.Dim(i) {
			return errs.Boundsf("grid: coordinate %d = %d outside [0, %d)", i, c, g.Dim(i))
		}
	}
	return nil
}

// flatIndex is the row-major multiply-add over dims
func flatIndex(dims, coords []int) int {
	idx := 0
	for i, c := range coords {
		idx = idx*dims[i] + c
	}
	return idx
}

// coordsOf is the row-major div-mod from the last dimension backward
func coordsOf(dims []int, idx int) []int {
	coords := make([]int, len(dims))
	for i := len(dims) - 1; i >= 0; i-- {
		coords[i] = idx % dims[i]
		idx /= dims[i]
	}
	return coords
}
