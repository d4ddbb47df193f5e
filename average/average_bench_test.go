package average

import (
	"fmt"
	"math"
	"testing"
)

func makeTraces(repeats, n int) [][]float64 {
	traces := make([][]float64, repeats)
	for r := range traces {
		trace := make([]float64, n)
		for i := range trace {
			trace[i] = math.Sin(2*math.Pi*float64(i)/128) + 0.01*float64(r)
		}
		traces[r] = trace
	}
	return traces
}

func BenchmarkMean(b *testing.B) {
	sizes := []struct {
		repeats int
		samples int
	}{
		{4, 1024},
		{16, 1024},
		{4, 16384},
		{16, 16384},
	}

	for _, size := range sizes {
		traces := makeTraces(size.repeats, size.samples)

		b.Run(fmt.Sprintf("repeats=%d_samples=%d", size.repeats, size.samples), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Mean(traces)
			}
		})
	}
}

func BenchmarkDifference(b *testing.B) {
	fg := makeTraces(8, 8192)
	bg := makeTraces(8, 8192)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Difference(fg, bg)
	}
}
