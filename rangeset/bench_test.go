package rangeset

import (
	"fmt"
	"testing"

	"github.com/hupe1980/connectome/testutil"
)

func BenchmarkExtract(b *testing.B) {
	for _, size := range []int{1_000, 100_000} {
		for _, gapProb := range []float64{0, 0.01, 0.5} {
			rng := testutil.NewRNG(42)
			ids := rng.RandomPopulation(1, size, gapProb, 20)

			b.Run(fmt.Sprintf("size=%d/gapProb=%v", size, gapProb), func(b *testing.B) {
				for b.Loop() {
					_, _ = Extract(ids)
				}
			})
		}
	}
}

func BenchmarkFindRightBorder(b *testing.B) {
	rng := testutil.NewRNG(42)
	ids := rng.RandomPopulation(1, 1_000_000, 0, 2)

	for b.Loop() {
		_, _ = findRightBorder(ids, 0)
	}
}
