package lrtc

import (
	"math/rand"
	"testing"
)

// BenchmarkComplete measures a full completion run on a mid-sized tensor.
func BenchmarkComplete(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	dense := lowRankTensor(rng, 20, 10, 24, 2, 10)
	sparse := corrupt(rng, dense, 0.3)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Complete(dense, sparse, WithRho(1e-2), WithEpsilon(1e-4), WithMaxIter(50)); err != nil {
			b.Fatalf("Complete failed: %v", err)
		}
	}
}
