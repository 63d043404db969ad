// Package emd_test — benchmarks for the dense and point-based EMD paths.
//
// Policy:
//   - Deterministic inputs (fixed seed); built outside the timer.
//   - Sizes stay small: the default simplex works on a dense tableau whose
//     size grows with (r·c)².
package emd_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/emdist/emd"
	"github.com/katalvlaran/emdist/minkowski"
)

func benchmarkPoints(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(seedDet))
	x, y := randWeights(rng, n), randWeights(rng, n)
	px, py := randPoints(rng, n, 2), randPoints(rng, n, 2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := emd.FromPointsEuclidean(x, px, y, py); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromPoints_n4(b *testing.B) { benchmarkPoints(b, 4) }
func BenchmarkFromPoints_n8(b *testing.B) { benchmarkPoints(b, 8) }

// BenchmarkCostMatrix_n64 isolates the pairwise Minkowski computation.
func BenchmarkCostMatrix_n64(b *testing.B) {
	rng := rand.New(rand.NewSource(seedDet))
	px, py := randPoints(rng, 64, 3), randPoints(rng, 64, 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := minkowski.CostMatrix(px, py, minkowski.Euclidean); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkNetwork(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(seedDet))
	x, y := randWeights(rng, n), randWeights(rng, n)
	px, py := randPoints(rng, n, 2), randPoints(rng, n, 2)
	net := emd.WithMethod(emd.MethodNetwork)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := emd.FromPointsEuclidean(x, px, y, py, net); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNetwork_n8(b *testing.B)  { benchmarkNetwork(b, 8) }
func BenchmarkNetwork_n32(b *testing.B) { benchmarkNetwork(b, 32) }
