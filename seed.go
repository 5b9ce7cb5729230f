// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/decred/turborand/entropy"
	"lukechampine.com/blake3"
)

// SeedFromReader reads an 8-byte little-endian WyRand seed from rd.  It fails
// with ErrEntropyUnavailable when rd cannot supply all 8 bytes.
func SeedFromReader(rd io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(rd, b[:]); err != nil {
		str := fmt.Sprintf("unable to read %d seed bytes: %v", len(b), err)
		return 0, makeError(ErrEntropyUnavailable, str)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ChaChaSeedFromReader reads a 40-byte ChaCha8 seed from rd.  It fails with
// ErrEntropyUnavailable when rd cannot supply all 40 bytes.
func ChaChaSeedFromReader(rd io.Reader) (ChaChaSeed, error) {
	var seed ChaChaSeed
	if _, err := io.ReadFull(rd, seed[:]); err != nil {
		str := fmt.Sprintf("unable to read %d seed bytes: %v", len(seed), err)
		return ChaChaSeed{}, makeError(ErrEntropyUnavailable, str)
	}
	return seed, nil
}

// DeriveSeed deterministically derives a WyRand seed from arbitrary material,
// such as a passphrase, by hashing it with BLAKE3.
func DeriveSeed(material []byte) uint64 {
	sum := blake3.Sum256(material)
	return binary.LittleEndian.Uint64(sum[:8])
}

// DeriveChaChaSeed deterministically derives a ChaCha8 seed from arbitrary
// material by taking the first 40 bytes of its 64-byte BLAKE3 digest.
func DeriveChaChaSeed(material []byte) ChaChaSeed {
	sum := blake3.Sum512(material)
	var seed ChaChaSeed
	copy(seed[:], sum[:])
	return seed
}

// NewRngFromEntropy returns an Rng seeded from the entropy package.
func NewRngFromEntropy() (*Rng, error) {
	seed, err := SeedFromReader(entropy.Reader())
	if err != nil {
		return nil, err
	}
	log.Debugf("Seeded wyrand generator from entropy")
	return NewRng(seed), nil
}

// NewAtomicRngFromEntropy returns an AtomicRng seeded from the entropy
// package.
func NewAtomicRngFromEntropy() (*AtomicRng, error) {
	seed, err := SeedFromReader(entropy.Reader())
	if err != nil {
		return nil, err
	}
	log.Debugf("Seeded shared wyrand generator from entropy")
	return NewAtomicRng(seed), nil
}

// NewChaChaRngFromEntropy returns a ChaChaRng keyed from the entropy package.
func NewChaChaRngFromEntropy() (*ChaChaRng, error) {
	seed, err := ChaChaSeedFromReader(entropy.Reader())
	if err != nil {
		return nil, err
	}
	log.Debugf("Seeded chacha8 generator from entropy")
	return NewChaChaRng(seed), nil
}

// NewAtomicChaChaRngFromEntropy returns an AtomicChaChaRng keyed from the
// entropy package.
func NewAtomicChaChaRngFromEntropy() (*AtomicChaChaRng, error) {
	seed, err := ChaChaSeedFromReader(entropy.Reader())
	if err != nil {
		return nil, err
	}
	log.Debugf("Seeded shared chacha8 generator from entropy")
	return NewAtomicChaChaRng(seed), nil
}
