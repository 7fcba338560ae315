package geom

import "math"

// cellKey addresses one grid bucket: the integer cell coordinates of a
// point divided by the cell size.
type cellKey struct {
	ix, iy int64
}

// Registry assigns canonical integer node ids to raw coordinates.
// Two coordinates whose Euclidean distance is strictly below eps map to
// the same id; the coordinate seen first becomes the canonical one.
//
// A Registry is owned by a single simplification run and is not safe
// for concurrent use; concurrent runs each construct their own.
type Registry struct {
	eps    float64
	epsSq  float64
	cell   float64
	points []Point           // node id → canonical coordinate
	grid   map[cellKey][]int // grid cell → node ids stored in it
}

// NewRegistry creates an empty Registry with tolerance eps.
// Precondition: eps > 0 (enforced by the caller; pathtrace rejects
// non-positive tolerances before constructing a Registry).
// Complexity: O(1).
func NewRegistry(eps float64) *Registry {
	return &Registry{
		eps:   eps,
		epsSq: eps * eps,
		cell:  eps,
		grid:  make(map[cellKey][]int),
	}
}

// Canonicalize resolves p to a node id. If an existing canonical point
// lies strictly within eps of p, the nearest such id is returned;
// otherwise p becomes a new node with the next id.
// Deterministic within a run: the same raw coordinate always resolves
// to the same id.
// Complexity: O(1) amortized.
func (r *Registry) Canonicalize(p Point) int {
	key := r.cellOf(p)

	best := -1
	bestSq := r.epsSq
	for dy := int64(-1); dy <= 1; dy++ {
		for dx := int64(-1); dx <= 1; dx++ {
			for _, id := range r.grid[cellKey{key.ix + dx, key.iy + dy}] {
				if d := p.DistSq(r.points[id]); d < bestSq {
					best, bestSq = id, d
				}
			}
		}
	}
	if best >= 0 {
		return best
	}

	id := len(r.points)
	r.points = append(r.points, p)
	r.grid[key] = append(r.grid[key], id)

	return id
}

// Coordinate returns the canonical coordinate of a previously assigned
// node id. Complexity: O(1).
func (r *Registry) Coordinate(id int) Point {
	return r.points[id]
}

// Len returns the number of distinct nodes assigned so far.
// Complexity: O(1).
func (r *Registry) Len() int {
	return len(r.points)
}

// cellOf maps a point to its grid bucket. Cell size equals eps, so any
// point within eps of p lives in the 3×3 neighborhood of p's cell.
func (r *Registry) cellOf(p Point) cellKey {
	return cellKey{
		ix: int64(math.Floor(p.X / r.cell)),
		iy: int64(math.Floor(p.Y / r.cell)),
	}
}
