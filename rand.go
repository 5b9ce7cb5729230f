// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
//
// Uniform random algorithms modified from the Go math/rand/v2 package with
// the following license:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package turborand

import (
	"crypto/rand"
	"math"
	"math/big"
	"math/bits"
	"time"
)

// Rand implements every derived operation on top of a Source.  It is exactly
// as safe for concurrent use as the Source it wraps.
type Rand[S Source] struct {
	src S
}

// New returns a Rand drawing from src.
func New[S Source](src S) *Rand[S] {
	return &Rand[S]{src: src}
}

// Source returns the core the receiver draws from.
func (r *Rand[S]) Source() S {
	return r.src
}

// Kind returns the cost profile of the underlying core.
func (r *Rand[S]) Kind() Kind {
	return r.src.Kind()
}

// Uint32 returns a uniform random uint32.
func (r *Rand[S]) Uint32() uint32 {
	return r.src.Uint32()
}

// Uint64 returns a uniform random uint64.
func (r *Rand[S]) Uint64() uint64 {
	return r.src.Uint64()
}

// Fill overwrites b with random bytes.
func (r *Rand[S]) Fill(b []byte) {
	r.src.Fill(b)
}

// Read fills b with random bytes.  It always returns len(b) and a nil error.
func (r *Rand[S]) Read(b []byte) (int, error) {
	r.src.Fill(b)
	return len(b), nil
}

// Uint8 returns a uniform random uint8.
func (r *Rand[S]) Uint8() uint8 {
	return uint8(r.src.Uint32())
}

// Uint16 returns a uniform random uint16.
func (r *Rand[S]) Uint16() uint16 {
	return uint16(r.src.Uint32())
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Panics if n == 0.
func (r *Rand[S]) Uint32N(n uint32) uint32 {
	if n == 0 {
		panic("turborand: invalid argument to Uint32N")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return r.src.Uint32() & (n - 1)
	}

	// Same reduction as Uint64N below carried out in 32-bit halves of a
	// 64-bit product, so only a single 32-bit word is drawn per attempt.
	prod := uint64(r.src.Uint32()) * uint64(n)
	if uint32(prod) < n {
		thresh := -n % n
		for uint32(prod) < thresh {
			prod = uint64(r.src.Uint32()) * uint64(n)
		}
	}
	return uint32(prod >> 32)
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Panics if n == 0.
func (r *Rand[S]) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("turborand: invalid argument to Uint64N")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return r.src.Uint64() & (n - 1)
	}

	// Suppose we have a uint64 x uniform in the range [0,2⁶⁴)
	// and want to reduce it to the range [0,n) preserving exact uniformity.
	// We can simulate a scaling arbitrary precision x * (n/2⁶⁴) by
	// the high bits of a double-width multiply of x*n, meaning (x*n)/2⁶⁴.
	// Since there are 2⁶⁴ possible inputs x and only n possible outputs,
	// the output is necessarily biased if n does not divide 2⁶⁴.
	// In general (x*n)/2⁶⁴ = k for x*n in [k*2⁶⁴,(k+1)*2⁶⁴).
	// There are either floor(2⁶⁴/n) or ceil(2⁶⁴/n) possible products
	// in that range, depending on k.
	// But suppose we reject the sample and try again when
	// x*n is in [k*2⁶⁴, k*2⁶⁴+(2⁶⁴%n)), meaning rejecting fewer than n possible
	// outcomes out of the 2⁶⁴.
	// Now there are exactly floor(2⁶⁴/n) possible ways to produce
	// each output value k, so we've restored uniformity.
	// To get valid uint64 math, 2⁶⁴ % n = (2⁶⁴ - n) % n = -n % n,
	// so the direct implementation of this algorithm would be:
	//
	//	hi, lo := bits.Mul64(r.Uint64(), n)
	//	thresh := -n % n
	//	for lo < thresh {
	//		hi, lo = bits.Mul64(r.Uint64(), n)
	//	}
	//
	// That still leaves an expensive 64-bit division that we would rather avoid.
	// We know that thresh < n, and n is usually much less than 2⁶⁴, so we can
	// avoid the last four lines unless lo < n.
	//
	// See also:
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	// https://lemire.me/blog/2016/06/30/fast-random-shuffling
	hi, lo := bits.Mul64(r.src.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.src.Uint64(), n)
		}
	}
	return hi
}

// Int32 returns a random 31-bit non-negative integer as an int32 without
// modulo bias.
func (r *Rand[S]) Int32() int32 {
	return int32(r.src.Uint32() & 0x7FFFFFFF)
}

// Int32N returns, as an int32, a random 31-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (r *Rand[S]) Int32N(n int32) int32 {
	if n <= 0 {
		panic("turborand: invalid argument to Int32N")
	}
	return int32(r.Uint32N(uint32(n)))
}

// Int64 returns a random 63-bit non-negative integer as an int64 without
// modulo bias.
func (r *Rand[S]) Int64() int64 {
	return int64(r.src.Uint64() & 0x7FFFFFFF_FFFFFFFF)
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (r *Rand[S]) Int64N(n int64) int64 {
	if n <= 0 {
		panic("turborand: invalid argument to Int64N")
	}
	return int64(r.Uint64N(uint64(n)))
}

// Int returns a non-negative integer without bias.
func (r *Rand[S]) Int() int {
	return int(uint(r.src.Uint64()) << 1 >> 1)
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func (r *Rand[S]) IntN(n int) int {
	if n <= 0 {
		panic("turborand: invalid argument to IntN")
	}
	return int(r.Uint64N(uint64(n)))
}

// UintN returns, as an uint, a random integer in [0,n) without modulo bias.
// Panics if n == 0.
func (r *Rand[S]) UintN(n uint) uint {
	if n == 0 {
		panic("turborand: invalid argument to UintN")
	}
	return uint(r.Uint64N(uint64(n)))
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func (r *Rand[S]) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("turborand: invalid argument to Duration")
	}
	return time.Duration(r.Uint64N(uint64(n)))
}

// Float64 returns a uniform float64 in [0,1).  The top 52 bits of a word fill
// the mantissa of a value in [1,2), which is then shifted down by one.
func (r *Rand[S]) Float64() float64 {
	return math.Float64frombits(0x3FF<<52|r.src.Uint64()>>12) - 1
}

// Float32 returns a uniform float32 in [0,1).
func (r *Rand[S]) Float32() float32 {
	return math.Float32frombits(0x3F800000|r.src.Uint32()>>9) - 1
}

// Float64Normalized returns a uniform float64 in [-1,1).
func (r *Rand[S]) Float64Normalized() float64 {
	return math.Float64frombits(0x400<<52|r.src.Uint64()>>12) - 3
}

// Float32Normalized returns a uniform float32 in [-1,1).
func (r *Rand[S]) Float32Normalized() float32 {
	return math.Float32frombits(0x40000000|r.src.Uint32()>>9) - 3
}

// Float64Range returns a uniform float64 in [low,high).  Reversed bounds are
// swapped and equal bounds return low without drawing.
// Panics if either bound is NaN or infinite.
func (r *Rand[S]) Float64Range(low, high float64) float64 {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) ||
		math.IsInf(high, 0) {

		panic("turborand: invalid argument to Float64Range")
	}
	if high < low {
		low, high = high, low
	}
	if low == high {
		return low
	}
	u := r.Float64()
	v := low + (high-low)*u
	if math.IsInf(high-low, 0) {
		v = low*(1-u) + high*u
	}
	if v >= high {
		// Rounding can land on the excluded bound.
		v = math.Nextafter(high, low)
	}
	return v
}

// Float32Range returns a uniform float32 in [low,high).  Reversed bounds are
// swapped and equal bounds return low without drawing.
// Panics if either bound is NaN or infinite.
func (r *Rand[S]) Float32Range(low, high float32) float32 {
	l, h := float64(low), float64(high)
	if math.IsNaN(l) || math.IsNaN(h) || math.IsInf(l, 0) || math.IsInf(h, 0) {
		panic("turborand: invalid argument to Float32Range")
	}
	if high < low {
		low, high = high, low
	}
	if low == high {
		return low
	}
	u := float64(r.Float32())
	v := float32(float64(low) + (float64(high)-float64(low))*u)
	if v >= high {
		v = math.Nextafter32(high, low)
	}
	return v
}

// Bool returns a uniform random bool.
func (r *Rand[S]) Bool() bool {
	return r.src.Uint32()&1 == 1
}

// Chance returns true with probability rate.  A rate of 0 is always false and
// a rate of 1 is always true; neither draws from the source.
// Panics if rate is NaN or outside [0,1].
func (r *Rand[S]) Chance(rate float64) bool {
	if !(rate >= 0 && rate <= 1) {
		panic("turborand: invalid argument to Chance")
	}
	switch rate {
	case 0:
		return false
	case 1:
		return true
	}
	return r.src.Uint64() < uint64(rate*(1<<64))
}

// BigInt returns a uniform random value in [0,max).
// Panics if max <= 0.
func (r *Rand[S]) BigInt(max *big.Int) *big.Int {
	// Will never error with our reader.
	n, _ := rand.Int(r, max)
	return n
}
