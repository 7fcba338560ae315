// Package pathtrace defines options, result types, and sentinel errors
// for polyline reconstruction.
package pathtrace

import (
	"errors"

	"github.com/katalvlaran/drawpath/geom"
)

// Sentinel errors for trace operations.
var (
	// ErrNoSegments indicates the input segment list is empty.
	ErrNoSegments = errors.New("pathtrace: input segments must be non-empty")

	// ErrNonFinite indicates an input coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("pathtrace: non-finite coordinate in input")

	// ErrNoUsableSegments indicates every input segment canonicalized
	// to a self-loop, leaving nothing to trace.
	ErrNoUsableSegments = errors.New("pathtrace: no usable segments after dropping self-loops")

	// ErrBadEpsilon indicates Options.Epsilon is not strictly positive.
	ErrBadEpsilon = errors.New("pathtrace: tolerance must be positive")

	// ErrInternalTrace indicates graph construction or the walk broke a
	// trace invariant (ambiguous branch, edge visited twice or never).
	// It signals a bug, never bad input.
	ErrInternalTrace = errors.New("pathtrace: internal trace invariant violated")
)

// degreeLabel classifies a node by its incident edge count, counting
// multiplicity. It is a computed tag, not a node subtype: the label is
// a pure function of the static degree.
type degreeLabel int

const (
	// isolated marks a node with no incident edges. It cannot occur for
	// nodes created from real segments and exists only for completeness.
	isolated degreeLabel = iota
	// endpoint marks a degree-1 node: a path terminus.
	endpoint
	// passThrough marks a degree-2 node: interior of a chain.
	passThrough
	// junction marks a degree-≥3 node: paths terminate here, merging
	// across it would be ambiguous.
	junction
)

// labelOf derives the degree label from a static degree count.
func labelOf(degree int) degreeLabel {
	switch {
	case degree == 0:
		return isolated
	case degree == 1:
		return endpoint
	case degree == 2:
		return passThrough
	default:
		return junction
	}
}

// Options configures one trace run.
//
// Epsilon is the distance below which two raw endpoints are treated as
// the same node. It is a run-level parameter; it is never inferred from
// the data.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns Options with Epsilon = geom.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: geom.DefaultEpsilon}
}

// Path is one traced polyline: an ordered sequence of at least two
// canonical coordinates. Closed reports a loop; closed paths repeat
// their first point at the end.
type Path struct {
	Points []geom.Point
	Closed bool
}

// Stats summarizes one trace run. It is computed once and immutable.
type Stats struct {
	// OriginalSegments is the number of input segments, degenerate ones
	// included.
	OriginalSegments int
	// DegenerateSegments counts self-loop segments that were dropped.
	DegenerateSegments int
	// PathCount is the number of emitted polylines.
	PathCount int
	// UniquePoints is the number of distinct canonical nodes.
	UniquePoints int
	// Endpoints is the number of degree-1 nodes.
	Endpoints int
	// Junctions is the number of degree-≥3 nodes.
	Junctions int
	// ReductionRatio is 1 − PathCount/OriginalSegments.
	ReductionRatio float64
}

// Result bundles the traced polylines with the run statistics.
type Result struct {
	Paths []Path
	Stats Stats
}
