// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import "math"

// Shuffle randomizes the order of s in place.
func Shuffle[T any, S Source](r *Rand[S], s []T) {
	r.shuffleTail(len(s), len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// PartialShuffle moves a uniform random selection of amount elements of s, in
// uniform random order, to the end of s.  It returns that selection and the
// remaining elements as subslices of s.  An amount larger than len(s) shuffles
// all of s.
func PartialShuffle[T any, S Source](r *Rand[S], s []T, amount int) (chosen, rest []T) {
	if amount <= 0 {
		return s[:0:0], s
	}
	r.shuffleTail(len(s), amount, func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
	split := len(s) - amount
	if split < 0 {
		split = 0
	}
	return s[split:], s[:split]
}

// Sample returns a uniform random element of list.  It returns false for an
// empty list.  A single element list is returned without drawing.
func Sample[T any, S Source](r *Rand[S], list []T) (T, bool) {
	switch len(list) {
	case 0:
		var zero T
		return zero, false
	case 1:
		return list[0], true
	}
	return list[r.IntN(len(list))], true
}

// SampleMultiple returns amount distinct elements of list chosen uniformly
// without replacement.  list is not modified.  The result is truncated to
// len(list) when amount is larger and is nil when amount <= 0.
func SampleMultiple[T any, S Source](r *Rand[S], list []T, amount int) []T {
	if amount <= 0 || len(list) == 0 {
		return nil
	}
	work := make([]T, len(list))
	copy(work, list)
	chosen, _ := PartialShuffle(r, work, amount)
	return chosen
}

// eligibleWeight reports whether w takes part in weighted selection.  Zero,
// negative, NaN and infinite weights are excluded.
func eligibleWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 1)
}

// WeightedSampleIndex selects an index in [0,n) with probability proportional
// to weight(i) in a single pass.  Every eligible index draws one key
// ln(u)/weight with u uniform in (0,1], and the largest key wins.  Indexes
// whose weight is not finite and positive are skipped without drawing.  It
// returns false when no index is eligible.
func (r *Rand[S]) WeightedSampleIndex(n int, weight func(i int) float64) (int, bool) {
	best, bestKey := -1, 0.0
	for i := 0; i < n; i++ {
		w := weight(i)
		if !eligibleWeight(w) {
			continue
		}
		key := math.Log(1-r.Float64()) / w
		if best < 0 || key > bestKey {
			best, bestKey = i, key
		}
	}
	return best, best >= 0
}

// WeightedSample selects an element of list with probability proportional to
// weight(item, index).  See WeightedSampleIndex for the handling of weights.
func WeightedSample[T any, S Source](r *Rand[S], list []T, weight func(item T, index int) float64) (T, bool) {
	i, ok := r.WeightedSampleIndex(len(list), func(i int) float64 {
		return weight(list[i], i)
	})
	if !ok {
		var zero T
		return zero, false
	}
	return list[i], true
}

// SampleIter returns a uniform random element of the sequence produced by
// next, which reports false once exhausted.  The sequence is consumed in a
// single pass with a reservoir of one, so its length need not be known.  The
// first element is kept without drawing and every later element replaces it
// with probability 1/(position+1).  It returns false for an empty sequence.
func SampleIter[T any, S Source](r *Rand[S], next func() (T, bool)) (T, bool) {
	result, ok := next()
	if !ok {
		return result, false
	}
	for seen := 1; ; seen++ {
		v, ok := next()
		if !ok {
			return result, true
		}
		if r.IntN(seen+1) == 0 {
			result = v
		}
	}
}

// SampleMultipleIter returns up to amount distinct elements of the sequence
// produced by next, chosen uniformly without replacement in a single pass.
// The first amount elements fill the reservoir; each later element at
// position i replaces a uniform random slot with probability amount/(i+1).
// The result is shorter than amount when the sequence is, and nil when
// amount <= 0, in which case next is never called.  The order of the result
// is not uniform.
func SampleMultipleIter[T any, S Source](r *Rand[S], next func() (T, bool), amount int) []T {
	if amount <= 0 {
		return nil
	}
	var sampled []T
	for len(sampled) < amount {
		v, ok := next()
		if !ok {
			return sampled
		}
		sampled = append(sampled, v)
	}
	for seen := amount; ; seen++ {
		v, ok := next()
		if !ok {
			return sampled
		}
		if slot := r.IntN(seen + 1); slot < amount {
			sampled[slot] = v
		}
	}
}

// WeightedSampleIter selects an element of the sequence produced by next with
// probability proportional to weight(item, index) in a single pass.  Keys are
// drawn exactly as in WeightedSampleIndex, so for the same generator state it
// picks the same element as WeightedSample over the equivalent slice.
func WeightedSampleIter[T any, S Source](r *Rand[S], next func() (T, bool), weight func(item T, index int) float64) (T, bool) {
	var best T
	found, bestKey := false, 0.0
	for i := 0; ; i++ {
		v, ok := next()
		if !ok {
			return best, found
		}
		w := weight(v, i)
		if !eligibleWeight(w) {
			continue
		}
		key := math.Log(1-r.Float64()) / w
		if !found || key > bestKey {
			best, bestKey, found = v, key, true
		}
	}
}
