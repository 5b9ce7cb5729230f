// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chacha

import (
	"encoding/binary"
	"errors"
)

// ErrBadRemaining is returned when restoring a snapshot whose remaining byte
// count does not fit in a block.
var ErrBadRemaining = errors.New("remaining byte count exceeds block size")

// Stream is a ChaCha8 keystream with a one block entropy buffer.  The zero
// value is not seeded; call Reseed first.  Stream is not safe for concurrent
// use.
//
// Bytes are handed out in keystream order.  remaining counts the bytes at the
// end of buf that have not been consumed yet; everything before them is stale
// and is never read again before the next refill.
type Stream struct {
	buf       [BlockSize]byte
	state     [16]uint32
	remaining int
}

// Reseed replaces the key and nonce, resets the counter and discards any
// buffered bytes.
func (s *Stream) Reseed(seed *[SeedSize]byte) {
	s.state = initState(seed)
	s.buf = [BlockSize]byte{}
	s.remaining = 0
}

// refill generates the block at the current counter into the buffer.
func (s *Stream) refill() {
	block(&s.state, &s.buf, doubleRounds)
	incrementCounter(&s.state)
	s.remaining = BlockSize
}

// Fill writes the next len(b) keystream bytes to b.  Buffered bytes are used
// first, whole blocks are then generated directly into b, and a final partial
// block is buffered so its unused tail is served by later reads.
func (s *Stream) Fill(b []byte) {
	if s.remaining > 0 {
		n := copy(b, s.buf[BlockSize-s.remaining:])
		s.remaining -= n
		b = b[n:]
	}
	for len(b) >= BlockSize {
		block(&s.state, (*[BlockSize]byte)(b), doubleRounds)
		incrementCounter(&s.state)
		b = b[BlockSize:]
	}
	if len(b) > 0 {
		s.refill()
		s.remaining -= copy(b, s.buf[:])
	}
}

// Uint32 returns the next 4 keystream bytes as a little-endian word.
func (s *Stream) Uint32() uint32 {
	if s.remaining >= 4 {
		v := binary.LittleEndian.Uint32(s.buf[BlockSize-s.remaining:])
		s.remaining -= 4
		return v
	}
	var b [4]byte
	s.Fill(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// Uint64 returns the next 8 keystream bytes as a little-endian word.
func (s *Stream) Uint64() uint64 {
	if s.remaining >= 8 {
		v := binary.LittleEndian.Uint64(s.buf[BlockSize-s.remaining:])
		s.remaining -= 8
		return v
	}
	var b [8]byte
	s.Fill(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Snapshot is the complete observable state of a Stream.
type Snapshot struct {
	Key       [KeySize]byte
	Nonce     [NonceSize]byte
	Counter   uint64
	Buffer    [BlockSize]byte
	Remaining int
}

// Snapshot returns a copy of the stream state.
func (s *Stream) Snapshot() Snapshot {
	var snap Snapshot
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(snap.Key[4*i:], s.state[4+i])
	}
	binary.LittleEndian.PutUint32(snap.Nonce[:], s.state[nonceLo])
	binary.LittleEndian.PutUint32(snap.Nonce[4:], s.state[nonceHi])
	snap.Counter = uint64(s.state[counterHi])<<32 | uint64(s.state[counterLo])
	snap.Buffer = s.buf
	snap.Remaining = s.remaining
	return snap
}

// Restore replaces the stream state with snap.
func (s *Stream) Restore(snap *Snapshot) error {
	if snap.Remaining < 0 || snap.Remaining > BlockSize {
		return ErrBadRemaining
	}
	var seed [SeedSize]byte
	copy(seed[:], snap.Key[:])
	copy(seed[KeySize:], snap.Nonce[:])
	s.state = initState(&seed)
	s.state[counterLo] = uint32(snap.Counter)
	s.state[counterHi] = uint32(snap.Counter >> 32)
	s.buf = snap.Buffer
	s.remaining = snap.Remaining
	return nil
}
