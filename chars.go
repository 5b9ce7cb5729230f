// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import "unicode/utf8"

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	lowercase    = "abcdefghijklmnopqrstuvwxyz"
	uppercase    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	alphabetic   = uppercase + lowercase
	alphanumeric = digits + uppercase + lowercase
	radixDigits  = digits + lowercase
)

// Char returns a uniform random Unicode scalar value in [low,high].  Reversed
// bounds are swapped.  Draws that land on a surrogate code point are thrown
// away and drawn again, so the values either side of the surrogate block are
// no more likely than any other.
// Panics if the range exceeds utf8.MaxRune, is negative or holds nothing but
// surrogates.
func (r *Rand[S]) Char(low, high rune) rune {
	if high < low {
		low, high = high, low
	}
	if low < 0 || high > utf8.MaxRune ||
		(low >= surrogateMin && high <= surrogateMax) {

		panic("turborand: invalid argument to Char")
	}
	for {
		c := Range(r, low, high)
		if c < surrogateMin || c > surrogateMax {
			return c
		}
	}
}

// pick returns a uniform random byte of set.
func pick[S Source](r *Rand[S], set string) rune {
	return rune(set[r.Uint32N(uint32(len(set)))])
}

// Alphabetic returns a uniform random letter in a-z or A-Z.
func (r *Rand[S]) Alphabetic() rune {
	return pick(r, alphabetic)
}

// Alphanumeric returns a uniform random character in a-z, A-Z or 0-9.
func (r *Rand[S]) Alphanumeric() rune {
	return pick(r, alphanumeric)
}

// Lowercase returns a uniform random letter in a-z.
func (r *Rand[S]) Lowercase() rune {
	return pick(r, lowercase)
}

// Uppercase returns a uniform random letter in A-Z.
func (r *Rand[S]) Uppercase() rune {
	return pick(r, uppercase)
}

// Digit returns a uniform random digit in the given radix.  Digits above 9
// are the lowercase letters a-z.
// Panics if radix is not in [1,36].
func (r *Rand[S]) Digit(radix int) rune {
	if radix < 1 || radix > len(radixDigits) {
		panic("turborand: invalid argument to Digit")
	}
	return pick(r, radixDigits[:radix])
}

// AlphanumericString returns a string of n uniform random characters in a-z,
// A-Z or 0-9.
// Panics if n < 0.
func (r *Rand[S]) AlphanumericString(n int) string {
	if n < 0 {
		panic("turborand: invalid argument to AlphanumericString")
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[r.Uint32N(uint32(len(alphanumeric)))]
	}
	return string(b)
}
