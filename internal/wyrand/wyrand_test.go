// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

import (
	"bytes"
	"sync"
	"testing"
)

// TestNext ensures the mixed output of known counters matches pinned values.
func TestNext(t *testing.T) {
	tests := []struct {
		name string
		seed uint64
		want []uint64
	}{{
		name: "seed one",
		seed: 1,
		want: []uint64{0xcdef1695e1f8ed2c},
	}, {
		name: "seed 0x1234567890abcdef",
		seed: 0x1234567890abcdef,
		want: []uint64{
			0xa9f79940a1873f28,
			0x62681222f88cf30e,
			0x8fbced7ea40f41b9,
		},
	}}

	for _, test := range tests {
		var cell Cell
		cell.Store(test.seed)
		var atom Atomic
		atom.Store(test.seed)
		for i, want := range test.want {
			if got := Next(&cell); got != want {
				t.Fatalf("%s: cell output #%d: got %#x, want %#x", test.name,
					i, got, want)
			}
			if got := Next(&atom); got != want {
				t.Fatalf("%s: atomic output #%d: got %#x, want %#x",
					test.name, i, got, want)
			}
		}
		wantState := test.seed + uint64(len(test.want))*Increment
		if cell.Load() != wantState || atom.Load() != wantState {
			t.Fatalf("%s: unexpected final state: cell %#x, atomic %#x, "+
				"want %#x", test.name, cell.Load(), atom.Load(), wantState)
		}
	}
}

// TestFill ensures filled bytes are the little-endian concatenation of output
// words, with partial tails taken from the low bytes of one more word.
func TestFill(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 16, 31} {
		var a, b Cell
		a.Store(1)
		b.Store(1)

		got := make([]byte, n)
		Fill(&a, got)

		var want []byte
		for len(want) < n {
			w := Next(&b)
			for i := 0; i < 8; i++ {
				want = append(want, byte(w>>(8*i)))
			}
		}
		want = want[:n]
		if !bytes.Equal(got, want) {
			t.Fatalf("fill %d: got %x, want %x", n, got, want)
		}
		if a.Load() != b.Load() {
			t.Fatalf("fill %d: consumed %#x, want %#x", n, a.Load(), b.Load())
		}
	}
}

// TestAtomicAdvanceUnique ensures concurrent advances never hand out the same
// counter value.
func TestAtomicAdvanceUnique(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 2000

	var state Atomic
	results := make([][]uint64, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]uint64, perGoroutine)
			for i := range out {
				out[i] = state.Advance()
			}
			results[g] = out
		}()
	}
	wg.Wait()

	seen := make(map[uint64]struct{}, goroutines*perGoroutine)
	for _, out := range results {
		for _, v := range out {
			if _, ok := seen[v]; ok {
				t.Fatalf("counter value %#x handed out twice", v)
			}
			seen[v] = struct{}{}
		}
	}
	// The counter wraps, so the product must be computed at run time.
	draws := uint64(goroutines * perGoroutine)
	if want := draws * Increment; state.Load() != want {
		t.Fatalf("final state %#x, want %#x", state.Load(), want)
	}
}
