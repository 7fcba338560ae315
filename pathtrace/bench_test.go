package pathtrace_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/drawpath/geom"
	"github.com/katalvlaran/drawpath/pathtrace"
)

// benchSegments builds a jittered comb of long shattered chains, the
// shape large plotter exports tend to have.
func benchSegments(chains, perChain int) []geom.Segment {
	rng := rand.New(rand.NewSource(42))
	segs := make([]geom.Segment, 0, chains*perChain)
	for c := 0; c < chains; c++ {
		y := float64(c)
		for i := 0; i < perChain; i++ {
			jitter := rng.Float64() * 1e-8
			segs = append(segs, geom.Segment{
				A: geom.Point{X: float64(i) + jitter, Y: y},
				B: geom.Point{X: float64(i + 1), Y: y},
			})
		}
	}

	return segs
}

// BenchmarkTrace measures a full run over 100 chains × 500 segments.
// Complexity: O(V+E) plus canonicalization.
func BenchmarkTrace(b *testing.B) {
	segs := benchSegments(100, 500)
	opts := pathtrace.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathtrace.Trace(segs, opts); err != nil {
			b.Fatalf("trace failed: %v", err)
		}
	}
}

// BenchmarkCanonicalize isolates the registry hot path.
func BenchmarkCanonicalize(b *testing.B) {
	segs := benchSegments(10, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg := geom.NewRegistry(geom.DefaultEpsilon)
		for _, s := range segs {
			reg.Canonicalize(s.A)
			reg.Canonicalize(s.B)
		}
	}
}
