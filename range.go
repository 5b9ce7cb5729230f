// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import (
	"math"

	"golang.org/x/exp/constraints"
)

// signBit flips signed values into an unsigned key with the same ordering.
const signBit = 1 << 63

// isSigned reports whether T is a signed integer type.
func isSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < 0
}

// orderKey maps v to a uint64 such that keys compare the way the values do.
func orderKey[T constraints.Integer](v T) uint64 {
	if isSigned[T]() {
		return uint64(int64(v)) ^ signBit
	}
	return uint64(v)
}

// fromKey is the inverse of orderKey.
func fromKey[T constraints.Integer](k uint64) T {
	if isSigned[T]() {
		return T(int64(k ^ signBit))
	}
	return T(k)
}

// Range returns a uniform random integer in the inclusive range [low,high]
// without modulo bias.  Reversed bounds are swapped.  Spans that fit in 32
// bits consume a single 32-bit draw per attempt; the full range of a 32 or
// 64-bit type is served by a raw draw.
func Range[T constraints.Integer, S Source](r *Rand[S], low, high T) T {
	if high < low {
		low, high = high, low
	}
	lo := orderKey(low)
	span := orderKey(high) - lo
	switch {
	case span == math.MaxUint64:
		return fromKey[T](r.src.Uint64())
	case span == math.MaxUint32:
		return fromKey[T](lo + uint64(r.src.Uint32()))
	case span < math.MaxUint32:
		return fromKey[T](lo + uint64(r.Uint32N(uint32(span+1))))
	}
	return fromKey[T](lo + r.Uint64N(span+1))
}

// IntRange returns a uniform random int in [low,high].
func (r *Rand[S]) IntRange(low, high int) int {
	return Range(r, low, high)
}

// Int64Range returns a uniform random int64 in [low,high].
func (r *Rand[S]) Int64Range(low, high int64) int64 {
	return Range(r, low, high)
}

// Uint64Range returns a uniform random uint64 in [low,high].
func (r *Rand[S]) Uint64Range(low, high uint64) uint64 {
	return Range(r, low, high)
}
