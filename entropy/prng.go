// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"time"

	"golang.org/x/crypto/chacha20"
)

const (
	maxCipherRead     = 4 * 1024 * 1024 // 4 MiB
	maxCipherDuration = 20 * time.Second
)

// cryptoRandRead is replaced by tests to simulate an unavailable kernel
// source.
var cryptoRandRead = cryptorand.Read

// nonce implements a 12-byte little endian counter suitable for use as an
// incrementing ChaCha20 nonce.
type nonce [chacha20.NonceSize]byte

func (n *nonce) inc() {
	n0 := binary.LittleEndian.Uint32(n[0:4])
	n1 := binary.LittleEndian.Uint32(n[4:8])
	n2 := binary.LittleEndian.Uint32(n[8:12])

	var carry uint32
	n0, carry = bits.Add32(n0, 1, carry)
	n1, carry = bits.Add32(n1, 0, carry)
	n2, _ = bits.Add32(n2, 0, carry)

	binary.LittleEndian.PutUint32(n[0:4], n0)
	binary.LittleEndian.PutUint32(n[4:8], n1)
	binary.LittleEndian.PutUint32(n[8:12], n2)
}

// PRNG is a ChaCha20 keystream keyed from crypto/rand and rekeyed after
// maxCipherRead bytes or maxCipherDuration, whichever comes first.  PRNG
// methods are not safe for concurrent access.
type PRNG struct {
	key    [chacha20.KeySize]byte
	nonce  nonce
	cipher chacha20.Cipher
	read   int
	t      time.Time
}

// NewPRNG returns a seeded PRNG.  It fails when crypto/rand cannot provide the
// initial key.
func NewPRNG() (*PRNG, error) {
	p := new(PRNG)
	err := p.seed()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// seed reseeds the prng with kernel and existing cipher entropy, if the
// cipher has been originally seeded.
// Only returns an error during initial seeding if a crypto/rand read errors.
func (p *PRNG) seed() error {
	_, err := cryptoRandRead(p.key[:])
	if err != nil {
		if p.t.IsZero() {
			return err
		}
		log.Warnf("Reseeding from existing keystream only: %v", err)
	}
	p.cipher.XORKeyStream(p.key[:], p.key[:])

	// never errors with correct key and nonce sizes
	cipher, _ := chacha20.NewUnauthenticatedCipher(p.key[:], p.nonce[:])
	p.cipher = *cipher
	p.nonce.inc()
	p.read = 0
	p.t = time.Now().Add(maxCipherDuration)
	log.Tracef("Reseeded entropy keystream")
	return nil
}

// Read fills s with len(s) of cryptographically-secure random bytes.  It only
// errors when called on a zero PRNG whose first seeding fails.
func (p *PRNG) Read(s []byte) (n int, err error) {
	if time.Now().After(p.t) {
		if err := p.seed(); err != nil {
			return 0, err
		}
	}

	for p.read+len(s) > maxCipherRead {
		l := maxCipherRead - p.read
		p.cipher.XORKeyStream(s[:l], s[:l])
		p.seed()
		n += l
		s = s[l:]
	}
	p.cipher.XORKeyStream(s, s)
	p.read += len(s)
	n += len(s)
	return
}
