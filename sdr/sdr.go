// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sdr provides Sparse Distributed Representations: fixed-capacity
binary vectors with a small fraction of active bits.

Vector is the bit-vector contract. Bits is the reference implementation:
an immutable, bit-packed value where every "mutating" operation returns a
new Vector and leaves the receiver untouched. Derived measures (ActiveBits,
Cardinality, Sparsity, Union, Overlap, MatchInexactly, MatchExactly) are
package functions over the Vector interface.
*/
package sdr

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/emer/htm/errs"
)

// DefaultCapacity is the capacity set by Params.Defaults
const DefaultCapacity = 2048

// Params configures construction of new SDRs
type Params struct {
	Capacity int `def:"2048" min:"1" desc:"number of bits in each SDR"`
}

func (sp *Params) Defaults() {
	sp.Capacity = DefaultCapacity
}

// Validate returns an errs.ErrConfig error if the params are unusable
func (sp *Params) Validate() error {
	if sp.Capacity <= 0 {
		return errs.Configf("sdr.Params: Capacity %d must be positive", sp.Capacity)
	}
	return nil
}

// Vector is a fixed-capacity binary vector. Implementations are values:
// Clear, SetBit, SetBitRange and SetBits return a new Vector and never
// modify the receiver.
type Vector interface {
	// ActiveBit reports whether bit i is on -- errs.ErrBounds outside [0, Capacity())
	ActiveBit(i int) (bool, error)

	// Capacity is the fixed number of bits
	Capacity() int

	// Clear returns an all-false vector of the same capacity
	Clear() Vector

	// SetBit returns a copy with bit i set to on
	SetBit(i int, on bool) (Vector, error)

	// SetBitRange returns a copy with bits in [start, end) set to on
	SetBitRange(start, end int, on bool) (Vector, error)

	// SetBits returns a copy with every listed bit set to on
	SetBits(idxs []int, on bool) (Vector, error)

	// Serialize returns one bool per bit, index i <-> bit i
	Serialize() []bool
}

// Bits is the bit-packed reference Vector. Padding bits in the final
// word are always zero. The zero value is not usable: construct with New.
type Bits struct {
	capacity int
	words    []uint64
}

// New returns an all-false Bits of the given capacity
func New(capacity int) (Bits, error) {
	if capacity <= 0 {
		return Bits{}, errs.Configf("sdr.New: capacity %d must be positive", capacity)
	}
	return Bits{capacity: capacity, words: make([]uint64, numWords(capacity))}, nil
}

// NewFromParams returns an all-false Bits of the configured capacity
func NewFromParams(sp *Params) (Bits, error) {
	if err := sp.Validate(); err != nil {
		return Bits{}, err
	}
	return New(sp.Capacity)
}

// FromActive returns a Bits of given capacity with the listed bits on
func FromActive(capacity int, active []int) (Bits, error) {
	b, err := New(capacity)
	if err != nil {
		return b, err
	}
	if err := b.checkIdxs(active); err != nil {
		return Bits{}, err
	}
	for _, i := range active {
		b.words[i/64] |= 1 << uint(i%64)
	}
	return b, nil
}

// Deserialize builds a Bits from one bool per bit
func Deserialize(vals []bool) (Bits, error) {
	b, err := New(len(vals))
	if err != nil {
		return b, err
	}
	for i, v := range vals {
		if v {
			b.words[i/64] |= 1 << uint(i%64)
		}
	}
	return b, nil
}

func (b Bits) Capacity() int { return b.capacity }

func (b Bits) ActiveBit(i int) (bool, error) {
	if i < 0 || i >= b.capacity {
		return false, errs.Boundsf("sdr.Bits.ActiveBit: bit %d outside [0, %d)", i, b.capacity)
	}
	return b.words[i/64]>>uint(i%64)&1 == 1, nil
}

func (b Bits) Clear() Vector {
	c, _ := New(b.capacity)
	return c
}

func (b Bits) SetBit(i int, on bool) (Vector, error) {
	return b.SetBits([]int{i}, on)
}

func (b Bits) SetBitRange(start, end int, on bool) (Vector, error) {
	if start < 0 || end > b.capacity || start > end {
		return nil, errs.Boundsf("sdr.Bits.SetBitRange: range [%d, %d) outside [0, %d)", start, end, b.capacity)
	}
	c := b.clone()
	for i := start; i < end; i++ {
		c.set(i, on)
	}
	return c, nil
}

func (b Bits) SetBits(idxs []int, on bool) (Vector, error) {
	if err := b.checkIdxs(idxs); err != nil {
		return nil, err
	}
	c := b.clone()
	for _, i := range idxs {
		c.set(i, on)
	}
	return c, nil
}

func (b Bits) Serialize() []bool {
	vals := make([]bool, b.capacity)
	for i := range vals {
		vals[i] = b.words[i/64]>>uint(i%64)&1 == 1
	}
	return vals
}

// ActiveBits returns the indexes of on bits in ascending order
func (b Bits) ActiveBits() []int {
	act := make([]int, 0, b.Cardinality())
	for w, word := range b.words {
		for word != 0 {
			tz := bits.TrailingZeros64(word)
			act = append(act, w*64+tz)
			word &= word - 1
		}
	}
	return act
}

// Cardinality is the number of on bits
func (b Bits) Cardinality() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Equal reports whether b and o have the same capacity and bits
func (b Bits) Equal(o Bits) bool {
	if b.capacity != o.capacity {
		return false
	}
	for i := range b.words {
		if b.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// String lists the capacity and active bits, e.g. "SDR(16)[1 4 9]"
func (b Bits) String() string {
	var sb strings.Builder
	sb.WriteString("SDR(" + strconv.Itoa(b.capacity) + ")[")
	for i, a := range b.ActiveBits() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(a))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (b Bits) clone() Bits {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return Bits{capacity: b.capacity, words: words}
}

// set modifies in place -- only for use on fresh clones
func (b Bits) set(i int, on bool) {
	if on {
		b.words[i/64] |= 1 << uint(i%64)
	} else {
		b.words[i/64] &^= 1 << uint(i%64)
	}
}

func (b Bits) checkIdxs(idxs []int) error {
	for _, i := range idxs {
		if i < 0 || i >= b.capacity {
			return errs.Boundsf("sdr.Bits: bit %d outside [0, %d)", i, b.capacity)
		}
	}
	return nil
}

func numWords(capacity int) int {
	return (capacity + 63) / 64
}
