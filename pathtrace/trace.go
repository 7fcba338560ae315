package pathtrace

import "github.com/katalvlaran/drawpath/geom"

// Trace reconstructs the minimal set of continuous polylines covering
// the input segments. Each edge of the canonical multigraph appears in
// exactly one output path; paths terminate at endpoints (degree 1) and
// junctions (degree ≥3) and merge freely through pass-through nodes.
//
// The run owns its registry and graph exclusively and releases them on
// return; concurrent calls are independent.
//
// Returns ErrNoSegments, ErrNonFinite, ErrNoUsableSegments or
// ErrBadEpsilon for rejected input, ErrInternalTrace if a trace
// invariant breaks (no partial output in either case).
//
// Complexity: O(V + E) time and memory after canonicalization.
func Trace(segments []geom.Segment, opts Options) (*Result, error) {
	if opts.Epsilon <= 0 {
		return nil, ErrBadEpsilon
	}
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	// Validate everything up front: structured input errors must leave
	// no partial output behind.
	for _, s := range segments {
		if !s.A.IsFinite() || !s.B.IsFinite() {
			return nil, ErrNonFinite
		}
	}

	g := buildGraph(segments, opts.Epsilon)
	if len(g.edges) == 0 {
		return nil, ErrNoUsableSegments
	}

	tr := newTracer(g)
	paths, err := tr.run()
	if err != nil {
		return nil, err
	}

	res := &Result{Paths: paths}
	res.Stats = buildStats(g, len(segments), len(paths))

	return res, nil
}

// tracer holds the per-run visitation state: how many crossings each
// edge still allows. The graph itself stays read-only.
type tracer struct {
	g         *graph
	remaining []int // per edge: count not yet consumed
	labels    []degreeLabel
}

func newTracer(g *graph) *tracer {
	tr := &tracer{
		g:         g,
		remaining: make([]int, len(g.edges)),
		labels:    make([]degreeLabel, g.nodeCount()),
	}
	for i, e := range g.edges {
		tr.remaining[i] = e.count
	}
	for n := range tr.labels {
		tr.labels[n] = labelOf(g.degree(n))
	}

	return tr
}

// run executes both tracing passes and the coverage check.
func (tr *tracer) run() ([]Path, error) {
	var paths []Path

	// First pass: every non-pass-through node starts one path per
	// unvisited incident edge. Node ids ascend, so output is
	// deterministic for a given canonical graph.
	for n := range tr.labels {
		if tr.labels[n] == passThrough || tr.labels[n] == isolated {
			continue
		}
		for {
			seq, err := tr.walk(n)
			if err != nil {
				return nil, err
			}
			if seq == nil {
				break
			}
			paths = append(paths, tr.toPath(seq))
		}
	}

	// Second pass: all remaining edges belong to closed loops of pure
	// pass-through nodes. Each walk returns to its starting node.
	for n := range tr.labels {
		for tr.hasUnvisited(n) {
			seq, err := tr.walk(n)
			if err != nil {
				return nil, err
			}
			if seq == nil {
				return nil, ErrInternalTrace
			}
			paths = append(paths, tr.toPath(seq))
		}
	}

	// Coverage/partition check: every edge consumed exactly once.
	for _, rem := range tr.remaining {
		if rem != 0 {
			return nil, ErrInternalTrace
		}
	}

	return paths, nil
}

// walk starts a path at node start across its first unvisited edge and
// follows forced continuations through pass-through nodes until it
// reaches a non-pass-through node or runs out of unvisited edges.
// Returns nil when start has no unvisited edge left.
func (tr *tracer) walk(start int) ([]int, error) {
	next, ei := tr.firstUnvisited(start)
	if ei < 0 {
		return nil, nil
	}
	tr.consume(ei)
	seq := []int{start, next}
	cur := next

	for cur != start && tr.labels[cur] == passThrough {
		n, ei, cnt := tr.continuation(cur)
		if cnt == 0 {
			break // dead end: chain consumed
		}
		if cnt > 1 {
			// A pass-through node always has exactly one continuation
			// once entered; more means the graph build is broken.
			return nil, ErrInternalTrace
		}
		tr.consume(ei)
		seq = append(seq, n)
		cur = n
	}

	return seq, nil
}

// firstUnvisited returns the first incident edge of n with remaining
// multiplicity, in adjacency order, or (-1, -1).
func (tr *tracer) firstUnvisited(n int) (to, ei int) {
	for _, he := range tr.g.adj[n] {
		if tr.remaining[he.ei] > 0 {
			return he.to, he.ei
		}
	}

	return -1, -1
}

// continuation returns the unvisited continuation from a mid-walk node
// together with the total count of unvisited incidences there.
func (tr *tracer) continuation(n int) (to, ei, cnt int) {
	to, ei = -1, -1
	for _, he := range tr.g.adj[n] {
		if r := tr.remaining[he.ei]; r > 0 {
			cnt += r
			if ei < 0 {
				to, ei = he.to, he.ei
			}
		}
	}

	return to, ei, cnt
}

func (tr *tracer) hasUnvisited(n int) bool {
	_, ei := tr.firstUnvisited(n)

	return ei >= 0
}

// consume marks one crossing of edge ei as visited.
func (tr *tracer) consume(ei int) {
	tr.remaining[ei]--
}

// toPath resolves a node id sequence to canonical coordinates.
func (tr *tracer) toPath(seq []int) Path {
	pts := make([]geom.Point, len(seq))
	for i, n := range seq {
		pts[i] = tr.g.reg.Coordinate(n)
	}

	return Path{
		Points: pts,
		Closed: len(seq) >= 3 && seq[0] == seq[len(seq)-1],
	}
}

// buildStats derives the immutable run statistics.
func buildStats(g *graph, original, pathCount int) Stats {
	st := Stats{
		OriginalSegments:   original,
		DegenerateSegments: g.degenerate,
		PathCount:          pathCount,
		UniquePoints:       g.nodeCount(),
	}
	for n := 0; n < g.nodeCount(); n++ {
		switch labelOf(g.degree(n)) {
		case endpoint:
			st.Endpoints++
		case junction:
			st.Junctions++
		}
	}
	if original > 0 {
		st.ReductionRatio = 1 - float64(pathCount)/float64(original)
	}

	return st
}
