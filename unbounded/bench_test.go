// SPDX-License-Identifier: MIT

package unbounded_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsack/unbounded"
)

// benchmarkSolve runs Solve on a random catalog of n item types up to capacity.
func benchmarkSolve(b *testing.B, n, capacity int, opts unbounded.Options) {
	rng := rand.New(rand.NewSource(seedDet))
	weights, values := randomCatalog(rng, n, 50, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := unbounded.Solve(weights, values, n, capacity, &opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Starter benchmarks the 48-item example catalog at capacity 29.
func BenchmarkSolve_Starter(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := unbounded.Solve(starterWeights, starterValues, len(starterWeights), starterCapacity, nil); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkSolve_Small(b *testing.B) {
	benchmarkSolve(b, 10, 100, unbounded.DefaultOptions())
}

func BenchmarkSolve_Medium(b *testing.B) {
	benchmarkSolve(b, 50, 2000, unbounded.DefaultOptions())
}

// BenchmarkSolve_MediumTieFirst rewrites fewer selections than TieLast.
func BenchmarkSolve_MediumTieFirst(b *testing.B) {
	benchmarkSolve(b, 50, 2000, unbounded.Options{TieBreak: unbounded.TieFirst})
}
