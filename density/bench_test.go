package density_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fixmat/density"
)

var sinkMap *density.Map

func BenchmarkCompute(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(1337))
	pts := make([]density.Point, 2000)
	for k := range pts {
		pts[k] = density.Point{X: rng.Float64() * 1024, Y: rng.Float64() * 768}
	}
	size := density.Size{Height: 768, Width: 1024}

	for _, s := range []float64{0.1, 0.25, 0.5} {
		b.Run(fmt.Sprintf("scale=%g", s), func(b *testing.B) {
			opts := density.DefaultOptions()
			opts.PixelsPerDegree = 45
			opts.ScaleFactor = s
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := density.Compute(pts, size, opts)
				if err != nil {
					b.Fatal(err)
				}
				sinkMap = m
			}
		})
	}
}
