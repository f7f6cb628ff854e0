// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package props computes the combinatorial statistics that characterize SDR
behavior from capacity, cardinality and overlap alone: how many patterns
exist, how likely a random pattern is to match a given one exactly or
above an overlap threshold, and how a union of patterns fills up.

These are used to choose capacity / cardinality / threshold parameters.
No SDR instances are involved. Counts are exact (math/big); probabilities
are computed as exact rationals and rounded to float64 at the end.
*/
package props

import (
	"math"
	"math/big"

	"github.com/emer/htm/errs"
	"github.com/emer/htm/kmath"
	"github.com/goki/ki/ints"
)

// CountPatterns is the number of distinct SDRs of given capacity and
// cardinality: C(capacity, cardinality)
func CountPatterns(capacity, cardinality int) (*big.Int, error) {
	return kmath.Combinations(capacity, cardinality)
}

// PExactMatch is the probability that a random pattern of the given
// capacity and cardinality equals a fixed one: 1 / CountPatterns
func PExactMatch(capacity, cardinality int) (float64, error) {
	n, err := CountPatterns(capacity, cardinality)
	if err != nil {
		return 0, err
	}
	p, _ := new(big.Rat).SetFrac(big.NewInt(1), n).Float64()
	return p, nil
}

// CountInexactPatterns is the number of cardinality-card2 patterns that
// share exactly overlap on bits with a fixed cardinality-card1 pattern:
// C(card1, overlap) * C(capacity-card1, card2-overlap)
func CountInexactPatterns(capacity, overlap, card1, card2 int) (*big.Int, error) {
	if card1 > capacity || card2 > capacity {
		return nil, errs.Domainf("props.CountInexactPatterns: cardinality %d / %d exceeds capacity %d", card1, card2, capacity)
	}
	if overlap < 0 || overlap > card1 || overlap > card2 {
		return nil, errs.Domainf("props.CountInexactPatterns: overlap %d outside [0, min(%d, %d)]", overlap, card1, card2)
	}
	if card2-overlap > capacity-card1 { // not enough off bits left for the remainder
		return new(big.Int), nil
	}
	in, err := kmath.Combinations(card1, overlap)
	if err != nil {
		return nil, err
	}
	out, err := kmath.Combinations(capacity-card1, card2-overlap)
	if err != nil {
		return nil, err
	}
	return in.Mul(in, out), nil
}

// PInexactMatch is the probability that a random cardinality-card2 pattern
// overlaps a fixed cardinality-card1 pattern in at least minOverlap bits:
// the sum over s in [minOverlap, min(card1, card2)] of
// CountInexactPatterns(s) / CountPatterns(capacity, card2).
// Overlaps that cannot occur (card2-s > capacity-card1) contribute zero.
func PInexactMatch(capacity, minOverlap, card1, card2 int) (float64, error) {
	if minOverlap < 0 {
		return 0, errs.Domainf("props.PInexactMatch: negative overlap %d", minOverlap)
	}
	total, err := CountPatterns(capacity, card2)
	if err != nil {
		return 0, err
	}
	if card1 > capacity {
		return 0, errs.Domainf("props.PInexactMatch: cardinality %d exceeds capacity %d", card1, capacity)
	}
	sum := new(big.Int)
	mx := ints.MinInt(card1, card2)
	for s := minOverlap; s <= mx; s++ {
		n, err := CountInexactPatterns(capacity, s, card1, card2)
		if err != nil {
			return 0, err
		}
		sum.Add(sum, n)
	}
	p, _ := new(big.Rat).SetFrac(sum, total).Float64()
	return p, nil
}

// PApproxInexactMatch approximates PInexactMatch with its single leading
// term at exactly the given overlap. The remaining terms are negligible
// when min(card1, card2) > 7 and overlap > card/2.
func PApproxInexactMatch(capacity, overlap, card1, card2 int) (float64, error) {
	total, err := CountPatterns(capacity, card2)
	if err != nil {
		return 0, err
	}
	n, err := CountInexactPatterns(capacity, overlap, card1, card2)
	if err != nil {
		return 0, err
	}
	p, _ := new(big.Rat).SetFrac(n, total).Float64()
	return p, nil
}

// PUnionBitActive is the probability that a given bit is on in the union
// of patternCount random patterns of the given sparsity: 1 - (1-sparsity)^patternCount
func PUnionBitActive(sparsity float64, patternCount int) (float64, error) {
	if sparsity < 0 || sparsity > 1 {
		return 0, errs.Configf("props.PUnionBitActive: sparsity %v outside [0, 1]", sparsity)
	}
	if patternCount < 0 {
		return 0, errs.Domainf("props.PUnionBitActive: negative pattern count %d", patternCount)
	}
	return 1 - math.Pow(1-sparsity, float64(patternCount)), nil
}

// ExpectedUnionCardinality is capacity * PUnionBitActive
func ExpectedUnionCardinality(capacity int, sparsity float64, patternCount int) (float64, error) {
	p, err := PUnionBitActive(sparsity, patternCount)
	if err != nil {
		return 0, err
	}
	return float64(capacity) * p, nil
}

// PUnionExactMatch is the probability that a random cardinality-card
// pattern is fully contained in the union of patternCount patterns:
// PUnionBitActive ^ cardinality
func PUnionExactMatch(sparsity float64, patternCount, cardinality int) (float64, error) {
	p, err := PUnionBitActive(sparsity, patternCount)
	if err != nil {
		return 0, err
	}
	return math.Pow(p, float64(cardinality)), nil
}
