// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package encoder turns raw scalar or categorical values into SDRs by
activating a contiguous range of bits. There is no learning: each encoder
is a fixed normalization rule.

  - Linear clamps the value into [Min, Max] and slides a block of Width
    active bits from the first to the last position.
  - Cyclic wraps the value into [Min, Max) and places the block around a
    ring, so Max and Min encode identically.
  - Category gives each of N categories its own disjoint block.
*/
package encoder

import (
	"math"

	"github.com/emer/htm/errs"
	"github.com/emer/htm/kmath"
	"github.com/emer/htm/sdr"
)

// Encoder activates bits of v according to input, returning a new SDR
type Encoder interface {
	Encode(v sdr.Vector, input float64) (sdr.Vector, error)
}

// Linear encodes a bounded scalar
type Linear struct {
	Min   float64 `desc:"value mapped to the first block position"`
	Max   float64 `desc:"value mapped to the last block position"`
	Width int     `min:"1" desc:"number of active bits"`
}

func (le *Linear) Encode(v sdr.Vector, input float64) (sdr.Vector, error) {
	if err := checkWidth(v, le.Width); err != nil {
		return nil, err
	}
	norm, err := kmath.Normalize(le.Min, le.Max, input)
	if err != nil {
		return nil, err
	}
	st := int(math.Round(norm * float64(v.Capacity()-le.Width)))
	return v.SetBitRange(st, st+le.Width, true)
}

// Cyclic encodes a periodic scalar such as an angle or time of day
type Cyclic struct {
	Min   float64 `desc:"start of the period"`
	Max   float64 `desc:"end of the period, equivalent to Min"`
	Width int     `min:"1" desc:"number of active bits"`
}

func (ce *Cyclic) Encode(v sdr.Vector, input float64) (sdr.Vector, error) {
	if err := checkWidth(v, ce.Width); err != nil {
		return nil, err
	}
	if ce.Max == ce.Min {
		return nil, errs.Domainf("encoder.Cyclic: zero-width period [%v, %v]", ce.Min, ce.Max)
	}
	capa := v.Capacity()
	w := kmath.WrapToRange(ce.Min, ce.Max, input)
	st := int(math.Floor((w - ce.Min) / (ce.Max - ce.Min) * float64(capa)))
	idxs := make([]int, ce.Width)
	for i := range idxs {
		idxs[i] = kmath.WrapInt(st+i, capa)
	}
	return v.SetBits(idxs, true)
}

// Category encodes one of N discrete categories, identified by the integer
// part of the input, each with its own block of Capacity / N bits
type Category struct {
	N int `min:"1" desc:"number of categories"`
}

func (ca *Category) Encode(v sdr.Vector, input float64) (sdr.Vector, error) {
	if ca.N <= 0 || ca.N > v.Capacity() {
		return nil, errs.Configf("encoder.Category: %d categories for capacity %d", ca.N, v.Capacity())
	}
	c := int(input)
	if c < 0 || c >= ca.N {
		return nil, errs.Boundsf("encoder.Category: category %d outside [0, %d)", c, ca.N)
	}
	w := v.Capacity() / ca.N
	return v.SetBitRange(c*w, (c+1)*w, true)
}

func checkWidth(v sdr.Vector, width int) error {
	if width <= 0 || width > v.Capacity() {
		return errs.Configf("encoder: width %d outside [1, %d]", width, v.Capacity())
	}
	return nil
}
