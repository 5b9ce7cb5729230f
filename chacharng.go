// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

// ChaChaRng is a generator backed by the ChaCha8 core for a single owner.  It
// is not safe for concurrent use; see AtomicChaChaRng.
type ChaChaRng struct {
	Rand[*ChaCha8]
}

// NewChaChaRng returns a ChaChaRng keyed from seed.
func NewChaChaRng(seed ChaChaSeed) *ChaChaRng {
	return &ChaChaRng{Rand[*ChaCha8]{src: NewChaCha8(&seed)}}
}

// Reseed rekeys the generator and discards any buffered output.
func (r *ChaChaRng) Reseed(seed ChaChaSeed) {
	r.src.Reseed(&seed)
}

// State returns the complete generator state, including the buffered block.
func (r *ChaChaRng) State() ChaChaState {
	return r.src.State()
}

// Restore replaces the generator state with one previously returned by State.
// It fails with ErrInvalidState when the state is malformed.
func (r *ChaChaRng) Restore(state ChaChaState) error {
	return r.src.Restore(&state)
}

// Clone returns a generator that produces the same future output as r.
func (r *ChaChaRng) Clone() *ChaChaRng {
	return &ChaChaRng{Rand[*ChaCha8]{src: r.src.Clone()}}
}

// Fork draws a 40-byte seed from r, advancing it, and returns a new generator
// keyed from it.
func (r *ChaChaRng) Fork() *ChaChaRng {
	var seed ChaChaSeed
	r.src.Fill(seed[:])
	log.Tracef("Forked chacha8 generator")
	return NewChaChaRng(seed)
}

// AtomicChaChaRng is a generator backed by the ChaCha8 core that may be used
// by any number of goroutines at once.
type AtomicChaChaRng struct {
	Rand[*AtomicChaCha8]
}

// NewAtomicChaChaRng returns an AtomicChaChaRng keyed from seed.
func NewAtomicChaChaRng(seed ChaChaSeed) *AtomicChaChaRng {
	return &AtomicChaChaRng{Rand[*AtomicChaCha8]{src: NewAtomicChaCha8(&seed)}}
}

// Reseed rekeys the generator and discards any buffered output.
func (r *AtomicChaChaRng) Reseed(seed ChaChaSeed) {
	r.src.Reseed(&seed)
}

// State returns the complete generator state, including the buffered block.
func (r *AtomicChaChaRng) State() ChaChaState {
	return r.src.State()
}

// Restore replaces the generator state with one previously returned by State.
// It fails with ErrInvalidState when the state is malformed.
func (r *AtomicChaChaRng) Restore(state ChaChaState) error {
	return r.src.Restore(&state)
}

// Clone returns a generator that produces the same future output as r.
func (r *AtomicChaChaRng) Clone() *AtomicChaChaRng {
	return &AtomicChaChaRng{Rand[*AtomicChaCha8]{src: r.src.Clone()}}
}

// Fork draws a 40-byte seed from r, advancing it, and returns a new shared
// generator keyed from it.
func (r *AtomicChaChaRng) Fork() *AtomicChaChaRng {
	var seed ChaChaSeed
	r.src.Fill(seed[:])
	log.Tracef("Forked shared chacha8 generator")
	return NewAtomicChaChaRng(seed)
}

// ForkLocal draws a 40-byte seed from r, advancing it, and returns a new
// exclusive generator keyed from it.
func (r *AtomicChaChaRng) ForkLocal() *ChaChaRng {
	var seed ChaChaSeed
	r.src.Fill(seed[:])
	log.Tracef("Forked local chacha8 generator from shared generator")
	return NewChaChaRng(seed)
}
