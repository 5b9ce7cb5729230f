// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

// Kind describes the cost profile of a Source.
type Kind uint8

const (
	// KindFast marks a source for which a single word is cheap to produce.
	KindFast Kind = iota

	// KindSlow marks a source for which every word is comparatively
	// expensive, so derived operations should draw as few as they can.
	KindSlow
)

// String returns the kind as a human-readable name.
func (k Kind) String() string {
	switch k {
	case KindFast:
		return "fast"
	case KindSlow:
		return "slow"
	}
	return "unknown"
}

// Source is the contract every generator core satisfies.  Implementations
// never fail.  All derived operations are expressed in terms of these
// methods.
type Source interface {
	// Uint32 returns the next 32 uniformly random bits.
	Uint32() uint32

	// Uint64 returns the next 64 uniformly random bits.
	Uint64() uint64

	// Fill overwrites all of b with random bytes.
	Fill(b []byte)

	// Kind reports the cost profile of the source.
	Kind() Kind
}
