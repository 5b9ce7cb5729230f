// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import "github.com/decred/turborand/internal/wyrand"

// WyRand is the fast core.  Its entire state is one 64-bit counter.  It is
// not safe for concurrent use.
type WyRand struct {
	state wyrand.Cell
}

// NewWyRand returns a WyRand core whose counter starts at seed.
func NewWyRand(seed uint64) *WyRand {
	w := new(WyRand)
	w.state.Store(seed)
	return w
}

// Uint64 returns the next output word.
func (w *WyRand) Uint64() uint64 {
	return wyrand.Next(&w.state)
}

// Uint32 returns the low half of the next output word.
func (w *WyRand) Uint32() uint32 {
	return uint32(wyrand.Next(&w.state))
}

// Fill overwrites b with little-endian output words.
func (w *WyRand) Fill(b []byte) {
	wyrand.Fill(&w.state, b)
}

// Kind returns KindFast.
func (w *WyRand) Kind() Kind {
	return KindFast
}

// Reseed replaces the counter with seed.
func (w *WyRand) Reseed(seed uint64) {
	w.state.Store(seed)
}

// State returns the current counter.
func (w *WyRand) State() uint64 {
	return w.state.Load()
}

// Clone returns a core with the same counter.
func (w *WyRand) Clone() *WyRand {
	return NewWyRand(w.state.Load())
}

// AtomicWyRand is the fast core for shared use.  Every draw claims a unique
// counter value with a single atomic add, so any number of goroutines may
// draw at once.
type AtomicWyRand struct {
	state wyrand.Atomic
}

// NewAtomicWyRand returns an AtomicWyRand core whose counter starts at seed.
func NewAtomicWyRand(seed uint64) *AtomicWyRand {
	w := new(AtomicWyRand)
	w.state.Store(seed)
	return w
}

// Uint64 returns the next output word.
func (w *AtomicWyRand) Uint64() uint64 {
	return wyrand.Next(&w.state)
}

// Uint32 returns the low half of the next output word.
func (w *AtomicWyRand) Uint32() uint32 {
	return uint32(wyrand.Next(&w.state))
}

// Fill overwrites b with little-endian output words.  Words written by
// concurrent callers may interleave in counter order, but no word is ever
// handed out twice.
func (w *AtomicWyRand) Fill(b []byte) {
	wyrand.Fill(&w.state, b)
}

// Kind returns KindFast.
func (w *AtomicWyRand) Kind() Kind {
	return KindFast
}

// Reseed replaces the counter with seed.
func (w *AtomicWyRand) Reseed(seed uint64) {
	w.state.Store(seed)
}

// State returns the current counter.
func (w *AtomicWyRand) State() uint64 {
	return w.state.Load()
}

// Clone returns a core with the same counter.
func (w *AtomicWyRand) Clone() *AtomicWyRand {
	return NewAtomicWyRand(w.state.Load())
}
