// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turborand

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestClone ensures clones replay the same future output without disturbing
// the original.
func TestClone(t *testing.T) {
	rng := NewRng(21)
	rng.Uint64()
	clone := rng.Clone()
	for i := 0; i < 10; i++ {
		if a, b := rng.Uint64(), clone.Uint64(); a != b {
			t.Fatalf("wyrand clone diverged at %d: %#x != %#x", i, a, b)
		}
	}

	shared := NewAtomicRng(21)
	sharedClone := shared.Clone()
	if a, b := shared.Uint64(), sharedClone.Uint64(); a != b {
		t.Fatalf("shared wyrand clone diverged: %#x != %#x", a, b)
	}

	// Clone a partly consumed stream so the buffered bytes are carried over.
	cc := NewChaChaRng(testSeed)
	cc.Uint32()
	ccClone := cc.Clone()
	if a, b := cc.State(), ccClone.State(); a != b {
		t.Fatalf("chacha8 clone state differs:\n%s\n%s", spew.Sdump(a),
			spew.Sdump(b))
	}
	for i := 0; i < 40; i++ {
		if a, b := cc.Uint64(), ccClone.Uint64(); a != b {
			t.Fatalf("chacha8 clone diverged at %d", i)
		}
	}

	acc := NewAtomicChaChaRng(testSeed)
	acc.Uint32()
	accClone := acc.Clone()
	if a, b := acc.Uint64(), accClone.Uint64(); a != b {
		t.Fatalf("shared chacha8 clone diverged: %#x != %#x", a, b)
	}
}

// TestFork ensures forks advance the parent, differ from it, and are
// deterministic given the parent state.
func TestFork(t *testing.T) {
	a, b := NewRng(5), NewRng(5)
	fa, fb := a.Fork(), b.Fork()
	if fa.State() != fb.State() {
		t.Fatal("forks of equal generators differ")
	}
	if a.State() == NewRng(5).State() {
		t.Fatal("fork did not advance the parent")
	}
	if fa.Uint64() == a.Uint64() {
		t.Fatal("fork repeats its parent")
	}

	ca, cb := NewChaChaRng(testSeed), NewChaChaRng(testSeed)
	fca, fcb := ca.Fork(), cb.Fork()
	if fca.State() != fcb.State() {
		t.Fatal("forks of equal chacha8 generators differ")
	}
	if ca.State().Remaining != 24 {
		t.Fatalf("fork consumed %d bytes, want 40", 64-ca.State().Remaining)
	}
	if fca.State().Key == ca.State().Key {
		t.Fatal("fork reused the parent key")
	}

	sa := NewAtomicChaChaRng(testSeed)
	if sa.Fork().Uint64() != NewChaChaRng(testSeed).Fork().Uint64() {
		t.Fatal("shared chacha8 fork differs from exclusive fork")
	}
	if NewAtomicRng(5).Fork().State() != NewRng(5).Fork().State() {
		t.Fatal("shared wyrand fork differs from exclusive fork")
	}
}

// TestForkLocal ensures workers forked from a shared generator are distinct
// from each other and from their parent.
func TestForkLocal(t *testing.T) {
	shared := NewAtomicRng(1000)
	seen := make(map[uint64]struct{})
	for i := 0; i < 16; i++ {
		local := shared.ForkLocal()
		v := local.Uint64()
		if _, ok := seen[v]; ok {
			t.Fatalf("worker %d repeats an earlier worker", i)
		}
		seen[v] = struct{}{}
	}
	if _, ok := seen[shared.Uint64()]; ok {
		t.Fatal("parent repeats a worker")
	}

	sharedCC := NewAtomicChaChaRng(testSeed)
	l1, l2 := sharedCC.ForkLocal(), sharedCC.ForkLocal()
	if l1.State() == l2.State() {
		t.Fatal("chacha8 workers share state")
	}
}

// TestReseedAndState ensures reseeding with a saved state resumes the
// sequence.
func TestReseedAndState(t *testing.T) {
	r := NewRng(8)
	r.Uint64()
	saved := r.State()
	want := r.Uint64()
	r.Reseed(saved)
	if got := r.Uint64(); got != want {
		t.Fatalf("resumed %#x, want %#x", got, want)
	}

	shared := NewAtomicRng(0)
	shared.Reseed(8)
	if shared.Uint64() != NewRng(8).Uint64() {
		t.Fatal("shared reseed differs")
	}

	cc := NewChaChaRng(ChaChaSeed{})
	cc.Reseed(testSeed)
	if cc.Uint64() != NewChaChaRng(testSeed).Uint64() {
		t.Fatal("chacha8 reseed differs")
	}
	acc := NewAtomicChaChaRng(ChaChaSeed{})
	acc.Reseed(testSeed)
	if acc.Uint64() != NewChaChaRng(testSeed).Uint64() {
		t.Fatal("shared chacha8 reseed differs")
	}
}

// TestChaChaRestore ensures restoring a saved state replays the stream and
// malformed state is rejected.
func TestChaChaRestore(t *testing.T) {
	r := NewChaChaRng(testSeed)
	r.Fill(make([]byte, 100))
	saved := r.State()
	want := make([]byte, 90)
	r.Fill(want)

	tests := []struct {
		name string
		rng  interface {
			Restore(ChaChaState) error
			Fill([]byte)
		}
	}{
		{"exclusive", NewChaChaRng(ChaChaSeed{})},
		{"shared", NewAtomicChaChaRng(ChaChaSeed{})},
	}
	for _, test := range tests {
		if err := test.rng.Restore(saved); err != nil {
			t.Fatalf("%s: restore failed: %v", test.name, err)
		}
		got := make([]byte, 90)
		test.rng.Fill(got)
		if string(got) != string(want) {
			t.Fatalf("%s: replay differs", test.name)
		}

		bad := saved
		bad.Remaining = 65
		if err := test.rng.Restore(bad); !errorIs(err, ErrInvalidState) {
			t.Fatalf("%s: got %v, want %v", test.name, err, ErrInvalidState)
		}
	}
}
