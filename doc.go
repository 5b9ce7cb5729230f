// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package turborand implements a dual algorithm random number engine.

Two core generators are provided behind the same Source contract:

  - WyRand: a fast, non-cryptographic generator that mixes a 64-bit counter
  - ChaCha8: a buffered ChaCha keystream reduced to eight rounds

Each core comes in an exclusive flavor for a single owner and an atomic
flavor that is safe for concurrent use.  For the same seed and the same
sequence of calls from one goroutine both flavors produce identical output.

The handles Rng, AtomicRng, ChaChaRng and AtomicChaChaRng embed Rand, which
implements every derived operation (bounded integers, ranges, floats,
characters, sampling, weighted sampling and shuffling) once against the
Source contract.  Only shuffling looks at Source.Kind, to pick the index
strategy that makes the fewest calls into the core.

# Clone and Fork

Clone returns an exact duplicate: both generators produce the same future
output.  Fork draws a fresh seed from the receiver, which advances it, and
returns a new generator seeded with it.  Use Fork to hand independent
generators to workers; use Clone only when replaying a sequence is intended.

# Errors

Generation never fails.  Only constructors seeded from an entropy source and
state decoding return errors, which can be matched against ErrorKind values
with errors.Is.  Invalid arguments to derived operations, such as a zero
bound, panic in the same manner as math/rand.
*/
package turborand
