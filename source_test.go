// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import (
	"encoding/binary"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestKindString ensures the kinds print their names.
func TestKindString(t *testing.T) {
	tests := []struct {
		in   Kind
		want string
	}{
		{KindFast, "fast"},
		{KindSlow, "slow"},
		{Kind(9), "unknown"},
	}
	for i, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("#%d: got %s want %s", i, got, test.want)
		}
	}
}

// TestCoreVectors pins the first outputs of each core.
func TestCoreVectors(t *testing.T) {
	var zeroSeed ChaChaSeed
	tests := []struct {
		name string
		src  Source
		want []uint64
	}{{
		name: "wyrand seed 1",
		src:  NewWyRand(1),
		want: []uint64{0xcdef1695e1f8ed2c},
	}, {
		name: "wyrand seed 0x1234567890abcdef",
		src:  NewWyRand(0x1234567890abcdef),
		want: []uint64{0xa9f79940a1873f28, 0x62681222f88cf30e, 0x8fbced7ea40f41b9},
	}, {
		name: "atomic wyrand seed 0x1234567890abcdef",
		src:  NewAtomicWyRand(0x1234567890abcdef),
		want: []uint64{0xa9f79940a1873f28, 0x62681222f88cf30e, 0x8fbced7ea40f41b9},
	}, {
		name: "chacha8 zero seed",
		src:  NewChaCha8(&zeroSeed),
		want: []uint64{0xd6405f892fef003e},
	}, {
		name: "atomic chacha8 zero seed",
		src:  NewAtomicChaCha8(&zeroSeed),
		want: []uint64{0xd6405f892fef003e},
	}}

	for _, test := range tests {
		for i, want := range test.want {
			if got := test.src.Uint64(); got != want {
				t.Fatalf("%s: output %d = %#x, want %#x", test.name, i, got,
					want)
			}
		}
	}

	if got := NewWyRand(0x1234567890abcdef).Uint32(); got != 0xa1873f28 {
		t.Fatalf("wyrand Uint32 = %#x, want low half 0xa1873f28", got)
	}
	if got := NewChaCha8(&zeroSeed).Uint32(); got != 0x2fef003e {
		t.Fatalf("chacha8 Uint32 = %#x, want 0x2fef003e", got)
	}
}

// TestKinds ensures each core reports its cost profile.
func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		want Kind
	}{
		{"wyrand", NewWyRand(0), KindFast},
		{"atomic wyrand", NewAtomicWyRand(0), KindFast},
		{"chacha8", NewChaCha8(&testSeed), KindSlow},
		{"atomic chacha8", NewAtomicChaCha8(&testSeed), KindSlow},
	}
	for _, test := range tests {
		if got := test.src.Kind(); got != test.want {
			t.Errorf("%s: kind %v, want %v", test.name, got, test.want)
		}
	}
}

// TestWyRandFillWords ensures Fill lays out the same words Uint64 returns.
func TestWyRandFillWords(t *testing.T) {
	a, b := NewWyRand(42), NewWyRand(42)
	buf := make([]byte, 21)
	a.Fill(buf)
	for off := 0; off < 16; off += 8 {
		if got, want := binary.LittleEndian.Uint64(buf[off:]), b.Uint64(); got != want {
			t.Fatalf("word at %d = %#x, want %#x", off, got, want)
		}
	}
	var tail [8]byte
	binary.LittleEndian.PutUint64(tail[:], b.Uint64())
	if string(buf[16:]) != string(tail[:5]) {
		t.Fatalf("tail %x, want %x", buf[16:], tail[:5])
	}
	if a.State() != b.State() {
		t.Fatal("Fill consumed a different number of words")
	}
}

// drawScript is a mixed sequence of calls used to compare generators.
func drawScript[S Source](r *Rand[S]) []uint64 {
	var out []uint64
	buf := make([]byte, 75)
	for i := 0; i < 20; i++ {
		out = append(out, uint64(r.Uint32()), r.Uint64())
		r.Fill(buf[:i*3+1])
		out = append(out, uint64(buf[0]), uint64(buf[i*3]))
		out = append(out, r.Uint64N(1000), uint64(r.IntRange(-50, 50)))
		out = append(out, uint64(r.Float64()*1e9), uint64(r.Char('a', 'z')))
		s := []int{0, 1, 2, 3, 4, 5, 6, 7}
		Shuffle(r, s)
		for _, v := range s {
			out = append(out, uint64(v))
		}
	}
	return out
}

// TestOwnershipVariantsAgree ensures exclusive and shared cores produce the
// same output for the same seed and call sequence.
func TestOwnershipVariantsAgree(t *testing.T) {
	wy := drawScript(&NewRng(123).Rand)
	atomicWy := drawScript(&NewAtomicRng(123).Rand)
	if spew.Sdump(wy) != spew.Sdump(atomicWy) {
		t.Fatalf("wyrand variants differ:\n%s\n%s", spew.Sdump(wy),
			spew.Sdump(atomicWy))
	}

	cc := drawScript(&NewChaChaRng(testSeed).Rand)
	atomicCC := drawScript(&NewAtomicChaChaRng(testSeed).Rand)
	if spew.Sdump(cc) != spew.Sdump(atomicCC) {
		t.Fatalf("chacha8 variants differ:\n%s\n%s", spew.Sdump(cc),
			spew.Sdump(atomicCC))
	}
}

// TestSharedConcurrentUnique ensures concurrent draws on shared generators
// never hand out the same word twice.
func TestSharedConcurrentUnique(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 5000

	tests := []struct {
		name string
		src  Source
	}{
		{"atomic wyrand", NewAtomicWyRand(0)},
		{"atomic chacha8", NewAtomicChaCha8(&testSeed)},
	}

	for _, test := range tests {
		results := make([][]uint64, goroutines)
		var wg sync.WaitGroup
		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				vals := make([]uint64, perGoroutine)
				for i := range vals {
					vals[i] = test.src.Uint64()
				}
				results[g] = vals
			}(g)
		}
		wg.Wait()

		seen := make(map[uint64]struct{}, goroutines*perGoroutine)
		for _, vals := range results {
			for _, v := range vals {
				if _, ok := seen[v]; ok {
					t.Fatalf("%s: value %#x handed out twice", test.name, v)
				}
				seen[v] = struct{}{}
			}
		}
	}
}

// TestSharedChaChaFillContiguous ensures concurrent Fill calls on the shared
// stream each receive a contiguous run of the keystream.
func TestSharedChaChaFillContiguous(t *testing.T) {
	const goroutines = 4
	const fills = 200
	const size = 24

	shared := NewAtomicChaCha8(&testSeed)
	var wg sync.WaitGroup
	chunks := make(chan []byte, goroutines*fills)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < fills; i++ {
				b := make([]byte, size)
				shared.Fill(b)
				chunks <- b
			}
		}()
	}
	wg.Wait()
	close(chunks)

	stream := make([]byte, goroutines*fills*size)
	NewChaCha8(&testSeed).Fill(stream)
	valid := make(map[string]struct{})
	for off := 0; off < len(stream); off += size {
		valid[string(stream[off:off+size])] = struct{}{}
	}
	for b := range chunks {
		if _, ok := valid[string(b)]; !ok {
			t.Fatalf("fill %x is not an aligned run of the keystream", b)
		}
	}
}

// TestReseedDiscardsBuffer ensures reseeding a partly consumed ChaCha8 core
// restarts its keystream.
func TestReseedDiscardsBuffer(t *testing.T) {
	c := NewChaCha8(&testSeed)
	c.Uint32()
	c.Reseed(&testSeed)
	if got, want := c.Uint64(), NewChaCha8(&testSeed).Uint64(); got != want {
		t.Fatalf("after reseed got %#x, want %#x", got, want)
	}
	if c.State().Remaining != 56 {
		t.Fatalf("remaining %d, want 56", c.State().Remaining)
	}
}
