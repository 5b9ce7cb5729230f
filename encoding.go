// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import (
	"encoding/binary"
	"fmt"

	"github.com/decred/turborand/internal/chacha"
)

// Encoded generator state starts with a version byte and an algorithm byte.
// WyRand state follows as one little-endian word.  ChaCha8 state follows as
// key, nonce, little-endian counter, buffer and a single unread byte count.
// Shared and exclusive handles of the same algorithm use the same encoding,
// so state saved from one may be loaded into the other.
const (
	stateVersion = 1

	algoWyRand  = 1
	algoChaCha8 = 2

	stateHeaderLen = 2
	wyRandStateLen = stateHeaderLen + 8
	chaChaStateLen = stateHeaderLen + chacha.KeySize + chacha.NonceSize + 8 +
		chacha.BlockSize + 1
)

// checkHeader validates the length, version and algorithm of encoded state.
func checkHeader(data []byte, algo byte, wantLen int) error {
	if len(data) != wantLen {
		str := fmt.Sprintf("encoded state is %d bytes, want %d", len(data),
			wantLen)
		return makeError(ErrInvalidState, str)
	}
	if data[0] != stateVersion {
		str := fmt.Sprintf("unsupported state version %d", data[0])
		return makeError(ErrInvalidState, str)
	}
	if data[1] != algo {
		str := fmt.Sprintf("state is for algorithm %d, want %d", data[1], algo)
		return makeError(ErrInvalidState, str)
	}
	return nil
}

func encodeWyRand(state uint64) []byte {
	b := make([]byte, wyRandStateLen)
	b[0], b[1] = stateVersion, algoWyRand
	binary.LittleEndian.PutUint64(b[stateHeaderLen:], state)
	return b
}

func decodeWyRand(data []byte) (uint64, error) {
	if err := checkHeader(data, algoWyRand, wyRandStateLen); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data[stateHeaderLen:]), nil
}

func encodeChaCha(state *ChaChaState) []byte {
	b := make([]byte, chaChaStateLen)
	b[0], b[1] = stateVersion, algoChaCha8
	off := stateHeaderLen
	off += copy(b[off:], state.Key[:])
	off += copy(b[off:], state.Nonce[:])
	binary.LittleEndian.PutUint64(b[off:], state.Counter)
	off += 8
	off += copy(b[off:], state.Buffer[:])
	b[off] = byte(state.Remaining)
	return b
}

func decodeChaCha(data []byte) (ChaChaState, error) {
	var state ChaChaState
	if err := checkHeader(data, algoChaCha8, chaChaStateLen); err != nil {
		return state, err
	}
	off := stateHeaderLen
	off += copy(state.Key[:], data[off:])
	off += copy(state.Nonce[:], data[off:])
	state.Counter = binary.LittleEndian.Uint64(data[off:])
	off += 8
	off += copy(state.Buffer[:], data[off:])
	state.Remaining = int(data[off])
	if state.Remaining > chacha.BlockSize {
		str := fmt.Sprintf("unread byte count %d exceeds block size",
			state.Remaining)
		return state, makeError(ErrInvalidState, str)
	}
	return state, nil
}

// MarshalBinary encodes the generator state.
func (r *Rng) MarshalBinary() ([]byte, error) {
	return encodeWyRand(r.State()), nil
}

// UnmarshalBinary replaces the generator state with an encoded one.
func (r *Rng) UnmarshalBinary(data []byte) error {
	state, err := decodeWyRand(data)
	if err != nil {
		return err
	}
	if r.src == nil {
		r.src = NewWyRand(state)
		return nil
	}
	r.src.Reseed(state)
	return nil
}

// MarshalBinary encodes the generator state.
func (r *AtomicRng) MarshalBinary() ([]byte, error) {
	return encodeWyRand(r.State()), nil
}

// UnmarshalBinary replaces the generator state with an encoded one.
func (r *AtomicRng) UnmarshalBinary(data []byte) error {
	state, err := decodeWyRand(data)
	if err != nil {
		return err
	}
	if r.src == nil {
		r.src = NewAtomicWyRand(state)
		return nil
	}
	r.src.Reseed(state)
	return nil
}

// MarshalBinary encodes the generator state, including the buffered block.
func (r *ChaChaRng) MarshalBinary() ([]byte, error) {
	state := r.State()
	return encodeChaCha(&state), nil
}

// UnmarshalBinary replaces the generator state with an encoded one.
func (r *ChaChaRng) UnmarshalBinary(data []byte) error {
	state, err := decodeChaCha(data)
	if err != nil {
		return err
	}
	if r.src == nil {
		r.src = new(ChaCha8)
	}
	return r.src.Restore(&state)
}

// MarshalBinary encodes the generator state, including the buffered block.
func (r *AtomicChaChaRng) MarshalBinary() ([]byte, error) {
	state := r.State()
	return encodeChaCha(&state), nil
}

// UnmarshalBinary replaces the generator state with an encoded one.
func (r *AtomicChaChaRng) UnmarshalBinary(data []byte) error {
	state, err := decodeChaCha(data)
	if err != nil {
		return err
	}
	if r.src == nil {
		r.src = new(AtomicChaCha8)
	}
	return r.src.Restore(&state)
}
