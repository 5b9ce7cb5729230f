// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import (
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a two's complement signed 128-bit integer.
type Int128 struct {
	Hi int64
	Lo uint64
}

// MaxUint128 is the largest Uint128.
var MaxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// Cmp compares u and v and returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi || (u.Hi == v.Hi && u.Lo < v.Lo):
		return -1
	case u == v:
		return 0
	}
	return 1
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

// String returns u in base 10.
func (u Uint128) String() string {
	return u.Big().String()
}

// Cmp compares i and v and returns -1, 0 or +1.
func (i Int128) Cmp(v Int128) int {
	return i.key().Cmp(v.key())
}

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	v := Uint128{Hi: uint64(i.Hi), Lo: i.Lo}.Big()
	if i.Hi < 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return v
}

// String returns i in base 10.
func (i Int128) String() string {
	return i.Big().String()
}

// key maps i to a Uint128 with the same ordering.
func (i Int128) key() Uint128 {
	return Uint128{Hi: uint64(i.Hi) ^ signBit, Lo: i.Lo}
}

// int128FromKey is the inverse of Int128.key.
func int128FromKey(k Uint128) Int128 {
	return Int128{Hi: int64(k.Hi ^ signBit), Lo: k.Lo}
}

func (u Uint128) isZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

func (u Uint128) add(v Uint128) Uint128 {
	lo, c := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, c)
	return Uint128{Hi: hi, Lo: lo}
}

func (u Uint128) sub(v Uint128) Uint128 {
	lo, b := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, b)
	return Uint128{Hi: hi, Lo: lo}
}

func (u Uint128) and(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// neg returns 2^128 - u, wrapping to zero for zero.
func (u Uint128) neg() Uint128 {
	return Uint128{}.sub(u)
}

// mod returns u % n for a non-zero n.
func (u Uint128) mod(n Uint128) Uint128 {
	if n.Hi == 0 {
		return Uint128{Lo: bits.Rem64(u.Hi, u.Lo, n.Lo)}
	}

	// Shift-subtract long division.  The remainder stays below n, so a bit
	// carried out of the shift means the true value exceeds n.
	var rem Uint128
	for i := 127; i >= 0; i-- {
		var bit uint64
		if i >= 64 {
			bit = u.Hi >> (i - 64) & 1
		} else {
			bit = u.Lo >> i & 1
		}
		carry := rem.Hi >> 63
		rem = Uint128{Hi: rem.Hi<<1 | rem.Lo>>63, Lo: rem.Lo<<1 | bit}
		if carry == 1 || rem.Cmp(n) >= 0 {
			rem = rem.sub(n)
		}
	}
	return rem
}

// mul256 returns the 256-bit product of u and v as high and low halves.
func mul256(u, v Uint128) (hi, lo Uint128) {
	h00, l00 := bits.Mul64(u.Lo, v.Lo)
	h01, l01 := bits.Mul64(u.Lo, v.Hi)
	h10, l10 := bits.Mul64(u.Hi, v.Lo)
	h11, l11 := bits.Mul64(u.Hi, v.Hi)

	w1, c1 := bits.Add64(h00, l01, 0)
	w1, c2 := bits.Add64(w1, l10, 0)
	w2, c3 := bits.Add64(h01, h10, 0)
	w2, c4 := bits.Add64(w2, l11, 0)
	w2, c5 := bits.Add64(w2, c1+c2, 0)
	w3 := h11 + c3 + c4 + c5

	return Uint128{Hi: w3, Lo: w2}, Uint128{Hi: w1, Lo: l00}
}

// Uint128 returns a uniform random Uint128.  The low word is drawn first.
func (r *Rand[S]) Uint128() Uint128 {
	lo := r.src.Uint64()
	hi := r.src.Uint64()
	return Uint128{Hi: hi, Lo: lo}
}

// Uint128N returns a uniform random Uint128 in [0,n) without modulo bias.
// Panics if n is zero.
func (r *Rand[S]) Uint128N(n Uint128) Uint128 {
	if n.isZero() {
		panic("turborand: invalid argument to Uint128N")
	}
	mask := n.sub(Uint128{Lo: 1})
	if n.and(mask).isZero() { // n is power of two, can mask
		return r.Uint128().and(mask)
	}

	// The 128-bit form of the multiply-high reduction in Uint64N.
	hi, lo := mul256(r.Uint128(), n)
	if lo.Cmp(n) < 0 {
		thresh := n.neg().mod(n)
		for lo.Cmp(thresh) < 0 {
			hi, lo = mul256(r.Uint128(), n)
		}
	}
	return hi
}

// Uint128Range returns a uniform random Uint128 in [low,high].  Reversed
// bounds are swapped.
func (r *Rand[S]) Uint128Range(low, high Uint128) Uint128 {
	if high.Cmp(low) < 0 {
		low, high = high, low
	}
	span := high.sub(low)
	if span == MaxUint128 {
		return r.Uint128()
	}
	return low.add(r.Uint128N(span.add(Uint128{Lo: 1})))
}

// Int128Range returns a uniform random Int128 in [low,high].  Reversed bounds
// are swapped.
func (r *Rand[S]) Int128Range(low, high Int128) Int128 {
	return int128FromKey(r.Uint128Range(low.key(), high.key()))
}
