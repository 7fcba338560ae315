package geom

import "math"

// DefaultEpsilon is the distance below which two raw coordinates are
// treated as the same node. It matches the 6-decimal precision the
// drawing formats are written with; callers may override it per run,
// never per Canonicalize call.
const DefaultEpsilon = 1e-6

// Point is a 2D coordinate in drawing space (Y axis up).
type Point struct {
	X, Y float64
}

// Segment is the atomic input unit: one straight edge between two
// endpoint coordinates, as extracted from a drawing file.
type Segment struct {
	A, B Point
}

// DistSq returns the squared Euclidean distance from p to q.
// Complexity: O(1).
func (p Point) DistSq(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// IsFinite reports whether both coordinates are finite numbers
// (not NaN, not ±Inf).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
