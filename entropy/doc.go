// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entropy supplies seed material for generators.  It implements a fast
// userspace CSPRNG that is periodically reseeded with entropy obtained from
// crypto/rand.
//
// Unlike the generators it seeds, reads from this package can fail when the
// operating system refuses to hand out entropy during the first seeding.  The
// failure is reported as an error rather than a panic so callers can fall back
// to an explicit seed.
//
// On Linux 6.11 and newer with Go 1.24 or later, crypto/rand is already backed
// by the vDSO and is read directly.
package entropy
