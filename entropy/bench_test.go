// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	crand "crypto/rand"
	"testing"
)

// readBenchTest describes tests that are used for the read benchmarks.  It is
// defined separately so the same tests can easily be used in comparison
// benchmarks between the reader in this package and the stdlib crypto/rand
// reader.
type readBenchTest struct {
	name string // benchmark description
	n    int    // number of bytes to read
}

// makeReadBenches returns a slice of tests that consist of a specific number of
// bytes to read for use in the read benchmarks.
func makeReadBenches() []readBenchTest {
	return []readBenchTest{
		{name: "8b", n: 8},
		{name: "40b", n: 40},
		{name: "512b", n: 512},
		{name: "4KiB", n: 4096},
	}
}

// BenchmarkRead benchmarks reading seed material via the package Read
// function with various size reads.
func BenchmarkRead(b *testing.B) {
	benches := makeReadBenches()
	for benchIdx := range benches {
		bench := benches[benchIdx]
		b.Run(bench.name, func(b *testing.B) {
			buf := make([]byte, bench.n)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Read(buf)
			}
		})
	}
}

// BenchmarkStdlibRead benchmarks reading random values via the stdlib
// crypto/rand Read method with various size reads.
func BenchmarkStdlibRead(b *testing.B) {
	benches := makeReadBenches()
	for benchIdx := range benches {
		bench := benches[benchIdx]
		b.Run(bench.name, func(b *testing.B) {
			buf := make([]byte, bench.n)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				crand.Read(buf)
			}
		})
	}
}
