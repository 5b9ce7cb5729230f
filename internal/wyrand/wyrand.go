// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wyrand implements the WyRand mixing function over a 64-bit counter
// along with the exclusive and atomic counter states it advances.
package wyrand

import (
	"encoding/binary"
	"math/bits"
	"sync/atomic"
)

const (
	// Increment is the odd constant added to the counter on every draw.  Being
	// odd, it walks the full 2^64 period.
	Increment = 0xa0761d6478bd642f

	// mixer is xored into the counter before the widening multiply.
	mixer = 0xe7037ed1a0b428db
)

// Mix returns the output word for an already advanced counter value.
func Mix(state uint64) uint64 {
	hi, lo := bits.Mul64(state, state^mixer)
	return hi ^ lo
}

// State is a 64-bit counter that can be advanced by Increment.  Advance must
// return the post-increment value and must never hand the same value to two
// callers unless the counter wrapped in between.
type State interface {
	Load() uint64
	Store(seed uint64)
	Advance() uint64
}

// Cell is a State for a single owner.  It performs no synchronization.
type Cell struct {
	v uint64
}

// Load returns the current counter.
func (c *Cell) Load() uint64 { return c.v }

// Store replaces the counter.
func (c *Cell) Store(seed uint64) { c.v = seed }

// Advance adds Increment to the counter and returns the new value.
func (c *Cell) Advance() uint64 {
	c.v += Increment
	return c.v
}

// Atomic is a State that may be advanced by any number of goroutines.  Each
// advance is a single atomic add, so concurrent callers always observe
// distinct counter values.
type Atomic struct {
	v atomic.Uint64
}

// Load returns the current counter.
func (a *Atomic) Load() uint64 { return a.v.Load() }

// Store replaces the counter.
func (a *Atomic) Store(seed uint64) { a.v.Store(seed) }

// Advance adds Increment to the counter and returns the new value.
func (a *Atomic) Advance() uint64 { return a.v.Add(Increment) }

// Next advances s and returns the mixed output word.
func Next[S State](s S) uint64 {
	return Mix(s.Advance())
}

// Fill writes little-endian output words to b.  A trailing partial word takes
// the low bytes of one additional draw and discards the rest.
func Fill[S State](s S, b []byte) {
	for len(b) >= 8 {
		binary.LittleEndian.PutUint64(b, Next(s))
		b = b[8:]
	}
	if len(b) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], Next(s))
		copy(b, tail[:])
	}
}
