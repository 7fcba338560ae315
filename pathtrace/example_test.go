package pathtrace_test

import (
	"fmt"

	"github.com/katalvlaran/drawpath/geom"
	"github.com/katalvlaran/drawpath/pathtrace"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Trace
////////////////////////////////////////////////////////////////////////////////

// ExampleTrace demonstrates merging a shattered "staple" of three
// segments into one polyline while a detached square stays a loop.
//
// Scenario:
//
//   - (0,0)─(1,0)─(2,0)─(2,1): three collinear-by-connectivity segments
//   - a 1×1 square far away, four segments, no junction
//
// Complexity: O(V+E)
func ExampleTrace() {
	segs := []geom.Segment{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}},
		{A: geom.Point{X: 1, Y: 0}, B: geom.Point{X: 2, Y: 0}},
		{A: geom.Point{X: 2, Y: 0}, B: geom.Point{X: 2, Y: 1}},

		{A: geom.Point{X: 10, Y: 10}, B: geom.Point{X: 11, Y: 10}},
		{A: geom.Point{X: 11, Y: 10}, B: geom.Point{X: 11, Y: 11}},
		{A: geom.Point{X: 11, Y: 11}, B: geom.Point{X: 10, Y: 11}},
		{A: geom.Point{X: 10, Y: 11}, B: geom.Point{X: 10, Y: 10}},
	}

	res, err := pathtrace.Trace(segs, pathtrace.DefaultOptions())
	if err != nil {
		fmt.Println("trace failed:", err)
		return
	}

	fmt.Println("segments:", res.Stats.OriginalSegments, "paths:", res.Stats.PathCount)
	for i, p := range res.Paths {
		kind := "open"
		if p.Closed {
			kind = "closed"
		}
		fmt.Printf("path %d (%s):", i, kind)
		for _, pt := range p.Points {
			fmt.Printf(" (%g,%g)", pt.X, pt.Y)
		}
		fmt.Println()
	}

	// Output:
	// segments: 7 paths: 2
	// path 0 (open): (0,0) (1,0) (2,0) (2,1)
	// path 1 (closed): (10,10) (11,10) (11,11) (10,11) (10,10)
}
