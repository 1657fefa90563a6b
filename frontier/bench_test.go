package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/netroute/frontier"
)

// benchFrontier inserts n random entries and drains them, b.N times.
func benchFrontier(b *testing.B, kind frontier.Kind, n int) {
	r := rand.New(rand.NewSource(42))
	dists := make([]float64, n)
	for i := range dists {
		dists[i] = r.Float64() * 1000
	}
	f, err := frontier.New[int](kind)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Reset()
		for j, d := range dists {
			f.Insert(d, j)
		}
		for !f.IsEmpty() {
			_, _ = f.ExtractMin()
		}
	}
}

func BenchmarkHeap_1K(b *testing.B)  { benchFrontier(b, frontier.KindHeap, 1_000) }
func BenchmarkArray_1K(b *testing.B) { benchFrontier(b, frontier.KindArray, 1_000) }

func BenchmarkHeap_10K(b *testing.B)  { benchFrontier(b, frontier.KindHeap, 10_000) }
func BenchmarkArray_10K(b *testing.B) { benchFrontier(b, frontier.KindArray, 10_000) }
