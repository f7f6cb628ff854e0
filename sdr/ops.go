// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdr

import (
	"math/bits"

	"github.com/emer/htm/errs"
	"github.com/goki/ki/ints"
)

// ActiveBits returns the indexes of on bits of v in ascending order
func ActiveBits(v Vector) []int {
	if b, ok := v.(Bits); ok {
		return b.ActiveBits()
	}
	var act []int
	for i, on := range v.Serialize() {
		if on {
			act = append(act, i)
		}
	}
	return act
}

// Cardinality is the number of on bits of v
func Cardinality(v Vector) int {
	if b, ok := v.(Bits); ok {
		return b.Cardinality()
	}
	return len(ActiveBits(v))
}

// Sparsity is Cardinality / Capacity
func Sparsity(v Vector) float64 {
	return float64(Cardinality(v)) / float64(v.Capacity())
}

// Union returns the bitwise OR of the given vectors, which must all have
// the same capacity (errs.ErrDomain otherwise, or if none are given).
func Union(vs ...Vector) (Vector, error) {
	if len(vs) == 0 {
		return nil, errs.Domainf("sdr.Union: no vectors")
	}
	capa := vs[0].Capacity()
	for _, v := range vs[1:] {
		if v.Capacity() != capa {
			return nil, errs.Domainf("sdr.Union: capacity mismatch %d vs %d", capa, v.Capacity())
		}
	}
	u, _ := New(capa)
	for _, v := range vs {
		if b, ok := v.(Bits); ok {
			for i, w := range b.words {
				u.words[i] |= w
			}
			continue
		}
		for _, i := range ActiveBits(v) {
			u.set(i, true)
		}
	}
	return u, nil
}

// Overlap is the number of bits on in both a and b, over the first
// min(a.Capacity(), b.Capacity()) bits.
func Overlap(a, b Vector) int {
	ab, aok := a.(Bits)
	bb, bok := b.(Bits)
	if aok && bok {
		nw := ints.MinInt(len(ab.words), len(bb.words))
		n := 0
		for i := 0; i < nw; i++ { // padding bits are zero, so no masking needed
			n += bits.OnesCount64(ab.words[i] & bb.words[i])
		}
		return n
	}
	as := a.Serialize()
	bs := b.Serialize()
	mn := ints.MinInt(len(as), len(bs))
	n := 0
	for i := 0; i < mn; i++ {
		if as[i] && bs[i] {
			n++
		}
	}
	return n
}

// MatchInexactly reports whether a and b share at least minOverlap on bits
func MatchInexactly(a, b Vector, minOverlap int) bool {
	return Overlap(a, b) >= minOverlap
}

// MatchExactly reports whether b contains every on bit of a, i.e.
// MatchInexactly(a, b, Cardinality(a)). An empty a matches anything.
func MatchExactly(a, b Vector) bool {
	return MatchInexactly(a, b, Cardinality(a))
}
