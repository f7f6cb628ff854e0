// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package kmath is the small numeric kernel used throughout htm:
exact combinatorics (factorial, combinations) on arbitrary precision
integers, clamping / normalization / cyclic wrapping of scalar values,
and seeded random helpers (uniform ints, shuffling, reservoir sampling).

All randomized functions take a Rand so results are exactly reproducible
under a fixed seed.
*/
package kmath

import (
	"math"
	"math/big"

	"github.com/emer/htm/errs"
	"gonum.org/v1/gonum/stat/combin"
)

// Factorial returns n! -- fails with errs.ErrDomain if n < 0
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, errs.Domainf("kmath.Factorial: negative argument %d", n)
	}
	f := big.NewInt(1)
	for i := 2; i <= n; i++ {
		f.Mul(f, big.NewInt(int64(i)))
	}
	return f, nil
}

// Combinations returns the binomial coefficient C(n, k), computed as the
// descending product n * (n-1) * ... * (n-k+1) divided by k!.
// Fails with errs.ErrDomain if k > n or either argument is negative.
func Combinations(n, k int) (*big.Int, error) {
	if n < 0 || k < 0 {
		return nil, errs.Domainf("kmath.Combinations: negative argument n = %d, k = %d", n, k)
	}
	if k > n {
		return nil, errs.Domainf("kmath.Combinations: k = %d > n = %d", k, n)
	}
	if n-k < k { // symmetric, fewer terms
		k = n - k
	}
	num := big.NewInt(1)
	for i := 0; i < k; i++ {
		num.Mul(num, big.NewInt(int64(n-i)))
	}
	kf, _ := Factorial(k)
	return num.Quo(num, kf), nil
}

// LogCombinations returns the natural log of C(n, k) in floating point,
// for magnitudes where only the order of the value matters.
func LogCombinations(n, k int) (float64, error) {
	if n < 0 || k < 0 {
		return 0, errs.Domainf("kmath.LogCombinations: negative argument n = %d, k = %d", n, k)
	}
	if k > n {
		return 0, errs.Domainf("kmath.LogCombinations: k = %d > n = %d", k, n)
	}
	return combin.LogGeneralizedBinomial(float64(n), float64(k)), nil
}

// FitToRange clamps x into [lo, hi]
func FitToRange(lo, hi, x float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Fit01 clamps x into the default [0, 1] range
func Fit01(x float64) float64 {
	return FitToRange(0, 1, x)
}

// Normalize clamps x into [lo, hi] and rescales it to [0, 1].
// Fails with errs.ErrDomain if hi == lo.
func Normalize(lo, hi, x float64) (float64, error) {
	if hi == lo {
		return 0, errs.Domainf("kmath.Normalize: zero-width range [%v, %v]", lo, hi)
	}
	return (FitToRange(math.Min(lo, hi), math.Max(lo, hi), x) - lo) / (hi - lo), nil
}

// WrapToRange maps x cyclically into [lo, hi): values past hi re-enter at lo
// and values below lo re-enter from hi. A zero-width range returns lo.
func WrapToRange(lo, hi, x float64) float64 {
	rng := hi - lo
	if rng == 0 {
		return lo
	}
	m := math.Mod(x-lo, rng)
	if m < 0 {
		m += rng
	}
	return lo + m
}

// WrapInt maps integer x cyclically into [0, n) -- n must be positive
func WrapInt(x, n int) int {
	m := x % n
	if m < 0 {
		m += n
	}
	return m
}
