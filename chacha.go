// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import (
	"sync"

	"github.com/decred/turborand/internal/chacha"
)

// ChaChaSeedSize is the size of a ChaCha8 seed: a 32-byte key followed by an
// 8-byte nonce.
const ChaChaSeedSize = chacha.SeedSize

// ChaChaSeed seeds a ChaCha8 core.
type ChaChaSeed [ChaChaSeedSize]byte

// ChaChaState is the complete observable state of a ChaCha8 core: key, nonce,
// block counter, entropy buffer and the count of unread buffer bytes.
type ChaChaState = chacha.Snapshot

// ChaCha8 is the stream core.  It buffers one 64-byte keystream block and
// hands its bytes out in order.  It is not safe for concurrent use.
type ChaCha8 struct {
	stream chacha.Stream
}

// NewChaCha8 returns a ChaCha8 core keyed from seed with a zero counter.
func NewChaCha8(seed *ChaChaSeed) *ChaCha8 {
	c := new(ChaCha8)
	c.stream.Reseed((*[chacha.SeedSize]byte)(seed))
	return c
}

// Uint64 returns the next 8 keystream bytes as a little-endian word.
func (c *ChaCha8) Uint64() uint64 {
	return c.stream.Uint64()
}

// Uint32 returns the next 4 keystream bytes as a little-endian word.
func (c *ChaCha8) Uint32() uint32 {
	return c.stream.Uint32()
}

// Fill overwrites b with the next len(b) keystream bytes.
func (c *ChaCha8) Fill(b []byte) {
	c.stream.Fill(b)
}

// Kind returns KindSlow.
func (c *ChaCha8) Kind() Kind {
	return KindSlow
}

// Reseed rekeys the core, resets the counter and discards buffered bytes.
func (c *ChaCha8) Reseed(seed *ChaChaSeed) {
	c.stream.Reseed((*[chacha.SeedSize]byte)(seed))
}

// State returns a copy of the core state.
func (c *ChaCha8) State() ChaChaState {
	return c.stream.Snapshot()
}

// Restore replaces the core state.  It fails with ErrInvalidState when the
// unread byte count does not fit in a block.
func (c *ChaCha8) Restore(state *ChaChaState) error {
	if err := c.stream.Restore(state); err != nil {
		return makeError(ErrInvalidState, err.Error())
	}
	return nil
}

// Clone returns a core with identical state, including buffered bytes.
func (c *ChaCha8) Clone() *ChaCha8 {
	return &ChaCha8{stream: c.stream}
}

// AtomicChaCha8 is the stream core for shared use.  Each draw, including any
// block refill it triggers, runs under a mutex.
type AtomicChaCha8 struct {
	mu     sync.Mutex
	stream chacha.Stream
}

// NewAtomicChaCha8 returns an AtomicChaCha8 core keyed from seed with a zero
// counter.
func NewAtomicChaCha8(seed *ChaChaSeed) *AtomicChaCha8 {
	c := new(AtomicChaCha8)
	c.stream.Reseed((*[chacha.SeedSize]byte)(seed))
	return c
}

// Uint64 returns the next 8 keystream bytes as a little-endian word.
func (c *AtomicChaCha8) Uint64() uint64 {
	c.mu.Lock()
	v := c.stream.Uint64()
	c.mu.Unlock()
	return v
}

// Uint32 returns the next 4 keystream bytes as a little-endian word.
func (c *AtomicChaCha8) Uint32() uint32 {
	c.mu.Lock()
	v := c.stream.Uint32()
	c.mu.Unlock()
	return v
}

// Fill overwrites b with the next len(b) keystream bytes.  The bytes are
// contiguous in the keystream even when other goroutines draw concurrently.
func (c *AtomicChaCha8) Fill(b []byte) {
	c.mu.Lock()
	c.stream.Fill(b)
	c.mu.Unlock()
}

// Kind returns KindSlow.
func (c *AtomicChaCha8) Kind() Kind {
	return KindSlow
}

// Reseed rekeys the core, resets the counter and discards buffered bytes.
func (c *AtomicChaCha8) Reseed(seed *ChaChaSeed) {
	c.mu.Lock()
	c.stream.Reseed((*[chacha.SeedSize]byte)(seed))
	c.mu.Unlock()
}

// State returns a copy of the core state.
func (c *AtomicChaCha8) State() ChaChaState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stream.Snapshot()
}

// Restore replaces the core state.  It fails with ErrInvalidState when the
// unread byte count does not fit in a block.
func (c *AtomicChaCha8) Restore(state *ChaChaState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.stream.Restore(state); err != nil {
		return makeError(ErrInvalidState, err.Error())
	}
	return nil
}

// Clone returns a core with identical state, including buffered bytes.
func (c *AtomicChaCha8) Clone() *AtomicChaCha8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &AtomicChaCha8{stream: c.stream}
}
