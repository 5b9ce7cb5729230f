// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

// Rng is a generator backed by the WyRand core for a single owner.  It is not
// safe for concurrent use; see AtomicRng.
type Rng struct {
	Rand[*WyRand]
}

// NewRng returns an Rng seeded with seed.
func NewRng(seed uint64) *Rng {
	return &Rng{Rand[*WyRand]{src: NewWyRand(seed)}}
}

// Reseed replaces the generator state with seed.
func (r *Rng) Reseed(seed uint64) {
	r.src.Reseed(seed)
}

// State returns the current generator state.  Passing it to NewRng or Reseed
// resumes the sequence from this point.
func (r *Rng) State() uint64 {
	return r.src.State()
}

// Clone returns a generator that produces the same future output as r.
func (r *Rng) Clone() *Rng {
	return &Rng{Rand[*WyRand]{src: r.src.Clone()}}
}

// Fork draws a seed from r, advancing it, and returns a new generator seeded
// with it.  Forks of generators in the same state are equal.
func (r *Rng) Fork() *Rng {
	seed := r.src.Uint64()
	log.Tracef("Forked wyrand generator")
	return NewRng(seed)
}

// AtomicRng is a generator backed by the WyRand core that may be used by any
// number of goroutines at once without locking.
type AtomicRng struct {
	Rand[*AtomicWyRand]
}

// NewAtomicRng returns an AtomicRng seeded with seed.
func NewAtomicRng(seed uint64) *AtomicRng {
	return &AtomicRng{Rand[*AtomicWyRand]{src: NewAtomicWyRand(seed)}}
}

// Reseed replaces the generator state with seed.
func (r *AtomicRng) Reseed(seed uint64) {
	r.src.Reseed(seed)
}

// State returns the current generator state.
func (r *AtomicRng) State() uint64 {
	return r.src.State()
}

// Clone returns a generator that produces the same future output as r.
func (r *AtomicRng) Clone() *AtomicRng {
	return &AtomicRng{Rand[*AtomicWyRand]{src: r.src.Clone()}}
}

// Fork draws a seed from r, advancing it, and returns a new shared generator
// seeded with it.
func (r *AtomicRng) Fork() *AtomicRng {
	seed := r.src.Uint64()
	log.Tracef("Forked shared wyrand generator")
	return NewAtomicRng(seed)
}

// ForkLocal draws a seed from r, advancing it, and returns a new exclusive
// generator seeded with it.  Workers that each need their own generator should
// take one with ForkLocal instead of contending on r.
func (r *AtomicRng) ForkLocal() *Rng {
	seed := r.src.Uint64()
	log.Tracef("Forked local wyrand generator from shared generator")
	return NewRng(seed)
}
