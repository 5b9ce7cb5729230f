// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build openbsd && go1.24

package entropy

// crypto/rand reads arc4random_buf, which is already a userspace CSPRNG that
// can be read without extra locking.
func init() {
	readCryptoRand = true
}
