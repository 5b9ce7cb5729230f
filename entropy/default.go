// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"io"
	"sync"
)

// readCryptoRand is set on platforms where crypto/rand is already a fast
// userspace CSPRNG and needs no buffering here.
var readCryptoRand bool

type lockingPRNG struct {
	*PRNG
	mu sync.Mutex
}

func (p *lockingPRNG) Read(s []byte) (n int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Read(s)
}

var (
	globalOnce sync.Once
	globalRand *lockingPRNG
	globalErr  error
)

// global returns the shared PRNG, seeding it on first use.
func global() (*lockingPRNG, error) {
	globalOnce.Do(func() {
		p, err := NewPRNG()
		if err != nil {
			globalErr = err
			return
		}
		globalRand = &lockingPRNG{PRNG: p}
	})
	return globalRand, globalErr
}

type reader struct{}

func (reader) Read(b []byte) (int, error) {
	if err := Read(b); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Reader returns a reader over the default entropy source.  The returned
// Reader is safe for concurrent access.
func Reader() io.Reader {
	return reader{}
}

// Read fills b with random bytes obtained from the default entropy source.
func Read(b []byte) error {
	if readCryptoRand {
		_, err := cryptoRandRead(b)
		return err
	}

	// Mutex is acquired by (*lockingPRNG).Read.
	p, err := global()
	if err != nil {
		return err
	}
	_, err = p.Read(b)
	return err
}
