// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmath

import (
	"sort"

	"github.com/emer/htm/errs"
)

// Rand is the source of uniform [0, 1) values used by all randomized
// operations. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// RandomInt returns a uniform integer in [lo, hi) -- hi must be > lo
func RandomInt(rng Rand, lo, hi int) int {
	r := lo + int(rng.Float64()*float64(hi-lo))
	if r >= hi { // float rounding at the top of large spans
		r = hi - 1
	}
	return r
}

// Shuffle permutes s in place (Durstenfeld / Fisher-Yates): for each
// i in [0, n-2], swap element i with a uniformly chosen element in [i, n).
func Shuffle[T any](rng Rand, s []T) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		j := RandomInt(rng, i, n)
		s[i], s[j] = s[j], s[i]
	}
}

// ReservoirSample returns k distinct indexes from [0, n), every one of the
// C(n, k) subsets being equally likely, in O(n) time. The result is sorted
// ascending. Fails with errs.ErrDomain if k > n or k < 0.
func ReservoirSample(rng Rand, n, k int) ([]int, error) {
	if k < 0 || n < 0 {
		return nil, errs.Domainf("kmath.ReservoirSample: negative argument n = %d, k = %d", n, k)
	}
	if k > n {
		return nil, errs.Domainf("kmath.ReservoirSample: k = %d > n = %d", k, n)
	}
	res := make([]int, k)
	for i := range res {
		res[i] = i
	}
	for i := k; i < n; i++ {
		j := RandomInt(rng, 0, i+1)
		if j < k {
			res[j] = i
		}
	}
	sort.Ints(res)
	return res, nil
}
