// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chacha implements the reduced round ChaCha keystream and the
// buffered stream built on top of it.
package chacha

import (
	"encoding/binary"
	"math/bits"
)

const (
	// KeySize is the size of the key portion of a seed.
	KeySize = 32

	// NonceSize is the size of the nonce portion of a seed.
	NonceSize = 8

	// SeedSize is the total seed size: the key followed by the nonce.
	SeedSize = KeySize + NonceSize

	// BlockSize is the number of keystream bytes produced per block.
	BlockSize = 64

	// doubleRounds is the number of column+diagonal round pairs of ChaCha8.
	doubleRounds = 4

	// State word positions of the 64-bit block counter and the nonce.
	counterLo = 12
	counterHi = 13
	nonceLo   = 14
	nonceHi   = 15
)

// sigma is "expand 32-byte k" as little-endian words.
var sigma = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// initState lays out a seed as a ChaCha input block with a zero counter.
func initState(seed *[SeedSize]byte) [16]uint32 {
	var s [16]uint32
	copy(s[:4], sigma[:])
	for i := 0; i < 8; i++ {
		s[4+i] = binary.LittleEndian.Uint32(seed[4*i:])
	}
	s[nonceLo] = binary.LittleEndian.Uint32(seed[KeySize:])
	s[nonceHi] = binary.LittleEndian.Uint32(seed[KeySize+4:])
	return s
}

// incrementCounter advances the 64-bit block counter.  The counter wraps to
// zero after 2^64 blocks and the keystream repeats from there.
func incrementCounter(s *[16]uint32) {
	var carry uint32
	s[counterLo], carry = bits.Add32(s[counterLo], 1, 0)
	s[counterHi], _ = bits.Add32(s[counterHi], 0, carry)
}

func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}

// block runs rounds*2 ChaCha rounds over in, adds the input words back and
// writes the result little-endian to out.
func block(in *[16]uint32, out *[BlockSize]byte, rounds int) {
	x := *in
	for i := 0; i < rounds; i++ {
		// Columns.
		x[0], x[4], x[8], x[12] = quarterRound(x[0], x[4], x[8], x[12])
		x[1], x[5], x[9], x[13] = quarterRound(x[1], x[5], x[9], x[13])
		x[2], x[6], x[10], x[14] = quarterRound(x[2], x[6], x[10], x[14])
		x[3], x[7], x[11], x[15] = quarterRound(x[3], x[7], x[11], x[15])

		// Diagonals.
		x[0], x[5], x[10], x[15] = quarterRound(x[0], x[5], x[10], x[15])
		x[1], x[6], x[11], x[12] = quarterRound(x[1], x[6], x[11], x[12])
		x[2], x[7], x[8], x[13] = quarterRound(x[2], x[7], x[8], x[13])
		x[3], x[4], x[9], x[14] = quarterRound(x[3], x[4], x[9], x[14])
	}
	for i := range x {
		binary.LittleEndian.PutUint32(out[4*i:], x[i]+in[i])
	}
}
