// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import "math/bits"

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (r *Rand[S]) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("turborand: invalid argument to Shuffle")
	}
	r.shuffleTail(n, n, swap)
}

// shuffleTail runs the last amount steps of a Fisher-Yates shuffle over n
// elements: for each i from n-1 down to max(n-amount, 1), element i is swapped
// with a uniform index in [0,i].  Afterwards the final amount elements are a
// uniform random selection from all n in uniform random order.
//
// Fast sources draw one bounded index per swap.  Slow sources draw one
// bounded word covering as many consecutive swaps as fit in 64 bits and
// decode the indexes from it in mixed radix.  Both produce uniform
// permutations but consume the source differently, so the same seed shuffles
// differently under each kind.
func (r *Rand[S]) shuffleTail(n, amount int, swap func(i, j int)) {
	if n < 2 || amount <= 0 {
		return
	}
	stop := n - amount
	if stop < 1 {
		stop = 1
	}

	if r.src.Kind() != KindSlow {
		for i := n - 1; i >= stop; i-- {
			swap(i, int(r.Uint64N(uint64(i+1))))
		}
		return
	}

	var chunk uint64
	var left int
	for i := n - 1; i >= stop; i-- {
		bound := uint64(i + 1)
		if left == 0 {
			// Multiply together the upcoming bounds while the product
			// still fits in a word.
			product, count := bound, 1
			for next := bound - 1; next > uint64(stop); next-- {
				hi, lo := bits.Mul64(product, next)
				if hi != 0 {
					break
				}
				product = lo
				count++
			}
			chunk = r.Uint64N(product)
			left = count
		}
		j := chunk % bound
		chunk /= bound
		left--
		swap(i, int(j))
	}
}
