// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"math"
	"strings"

	"github.com/emer/htm/kmath"
)

// Stats collects the statistics of one SDR configuration
type Stats struct {
	Capacity    int     `desc:"number of bits"`
	Cardinality int     `desc:"number of on bits per pattern"`
	Theta       int     `desc:"overlap threshold for an inexact match"`
	UnionCount  int     `desc:"number of patterns stored in a union"`
	Sparsity    float64 `desc:"Cardinality / Capacity"`
	Log10Count  float64 `desc:"log10 of the number of distinct patterns"`
	PExact      float64 `desc:"probability of a random exact match"`
	PInexact    float64 `desc:"probability of a random match with overlap >= Theta"`
	PUnionBit   float64 `desc:"probability that a bit is on in the union"`
	UnionCard   float64 `desc:"expected number of on bits in the union"`
	PUnionMatch float64 `desc:"probability that a random pattern is contained in the union"`
}

// Compute fills in all statistics for the given configuration
func (st *Stats) Compute(capacity, cardinality, theta, unionCount int) error {
	st.Capacity = capacity
	st.Cardinality = cardinality
	st.Theta = theta
	st.UnionCount = unionCount
	st.Sparsity = float64(cardinality) / float64(capacity)
	lc, err := kmath.LogCombinations(capacity, cardinality)
	if err != nil {
		return err
	}
	st.Log10Count = lc / math.Ln10
	if st.PExact, err = PExactMatch(capacity, cardinality); err != nil {
		return err
	}
	if st.PInexact, err = PInexactMatch(capacity, theta, cardinality, cardinality); err != nil {
		return err
	}
	if st.PUnionBit, err = PUnionBitActive(st.Sparsity, unionCount); err != nil {
		return err
	}
	st.UnionCard = float64(capacity) * st.PUnionBit
	st.PUnionMatch = math.Pow(st.PUnionBit, float64(cardinality))
	return nil
}

// Report returns a multi-line summary of the statistics
func (st *Stats) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Capacity: %d\t Cardinality: %d\t Sparsity: %.4f\n", st.Capacity, st.Cardinality, st.Sparsity)
	fmt.Fprintf(&b, "Patterns: 10^%.2f\t P(exact): %.4g\t P(overlap >= %d): %.4g\n", st.Log10Count, st.PExact, st.Theta, st.PInexact)
	fmt.Fprintf(&b, "Union of %d: P(bit): %.4f\t E[card]: %.1f\t P(match): %.4g\n", st.UnionCount, st.PUnionBit, st.UnionCard, st.PUnionMatch)
	return b.String()
}
