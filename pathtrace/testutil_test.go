package pathtrace_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/drawpath/geom"
	"github.com/katalvlaran/drawpath/pathtrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertEdgePartition checks the coverage/partition property: the edge
// multiset of the emitted paths equals the canonical edge multiset of
// the input (after dropping self-loops), each edge exactly once.
func assertEdgePartition(t *testing.T, segs []geom.Segment, res *pathtrace.Result, eps float64) {
	t.Helper()

	// Re-canonicalizing in input order reproduces the run's node ids.
	reg := geom.NewRegistry(eps)
	counts := make(map[[2]int]int)
	for _, s := range segs {
		a, b := reg.Canonicalize(s.A), reg.Canonicalize(s.B)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		counts[[2]int{a, b}]++
	}

	for _, p := range res.Paths {
		for i := 0; i+1 < len(p.Points); i++ {
			a := reg.Canonicalize(p.Points[i])
			b := reg.Canonicalize(p.Points[i+1])
			require.NotEqual(t, a, b, "output path contains a self-loop step")
			if a > b {
				a, b = b, a
			}
			counts[[2]int{a, b}]--
		}
	}

	for k, v := range counts {
		assert.Zerof(t, v, "edge %v covered %+d times off balance", k, v)
	}
}

// normalizePaths renders each path as an order-independent key: open
// paths up to direction, closed paths up to direction and rotation.
func normalizePaths(paths []pathtrace.Path) []string {
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, normalizePath(p))
	}

	return keys
}

func normalizePath(p pathtrace.Path) string {
	pts := p.Points
	if p.Closed {
		ring := pts[:len(pts)-1] // drop the repeated closing point
		best := ""
		for start := range ring {
			for _, dir := range []int{1, -1} {
				if s := renderRing(ring, start, dir); best == "" || s < best {
					best = s
				}
			}
		}

		return "closed:" + best
	}

	fwd := renderPoints(pts, false)
	rev := renderPoints(pts, true)
	if rev < fwd {
		return "open:" + rev
	}

	return "open:" + fwd
}

func renderPoints(pts []geom.Point, reversed bool) string {
	var sb strings.Builder
	for i := range pts {
		j := i
		if reversed {
			j = len(pts) - 1 - i
		}
		fmt.Fprintf(&sb, "(%.9g,%.9g)", pts[j].X, pts[j].Y)
	}

	return sb.String()
}

func renderRing(ring []geom.Point, start, dir int) string {
	var sb strings.Builder
	n := len(ring)
	for i := 0; i < n; i++ {
		j := ((start+dir*i)%n + n) % n
		fmt.Fprintf(&sb, "(%.9g,%.9g)", ring[j].X, ring[j].Y)
	}

	return sb.String()
}
