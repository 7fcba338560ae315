package pathtrace

import "github.com/katalvlaran/drawpath/geom"

// edge is an unordered pair of distinct node ids with a multiplicity
// counter for parallel segments between the same two nodes.
type edge struct {
	u, v  int // u < v
	count int // original segment multiplicity
}

// halfEdge is one directed incidence stored in an adjacency list.
type halfEdge struct {
	to int // neighbor node id
	ei int // index into graph.edges
}

// graph is the arena-style adjacency structure for one run: nodes and
// edges live in indexed slices and are referenced by integer ids only.
// It is built once and read-only during tracing; the remaining counters
// live outside it (see tracer).
type graph struct {
	reg        *geom.Registry
	edges      []edge
	adj        [][]halfEdge
	byPair     map[[2]int]int // (u,v) with u<v → edge index
	degenerate int            // dropped self-loop segments
}

// buildGraph canonicalizes all segment endpoints and assembles the
// undirected multigraph. Self-loop segments (both endpoints resolve to
// one node) are counted and skipped, never merged into geometry.
// Complexity: O(n) amortized over n segments.
func buildGraph(segments []geom.Segment, eps float64) *graph {
	g := &graph{
		reg:    geom.NewRegistry(eps),
		byPair: make(map[[2]int]int, len(segments)),
	}
	for _, s := range segments {
		a := g.reg.Canonicalize(s.A)
		b := g.reg.Canonicalize(s.B)
		if a == b {
			g.degenerate++
			continue
		}
		g.addEdge(a, b)
	}
	// Nodes seen only in dropped self-loops still need adjacency slots.
	for len(g.adj) < g.reg.Len() {
		g.adj = append(g.adj, nil)
	}

	return g
}

// addEdge inserts or increments the undirected edge a–b.
func (g *graph) addEdge(a, b int) {
	u, v := a, b
	if u > v {
		u, v = v, u
	}
	// Adjacency slots for freshly assigned node ids.
	for len(g.adj) <= v {
		g.adj = append(g.adj, nil)
	}
	if ei, ok := g.byPair[[2]int{u, v}]; ok {
		g.edges[ei].count++
		return
	}
	ei := len(g.edges)
	g.edges = append(g.edges, edge{u: u, v: v, count: 1})
	g.byPair[[2]int{u, v}] = ei
	g.adj[a] = append(g.adj[a], halfEdge{to: b, ei: ei})
	g.adj[b] = append(g.adj[b], halfEdge{to: a, ei: ei})
}

// nodeCount returns the number of canonical nodes, including nodes that
// only ever appeared in dropped self-loops.
func (g *graph) nodeCount() int {
	return g.reg.Len()
}

// degree returns the static incidence count of node n, counting edge
// multiplicity. Complexity: O(deg n) over distinct neighbors.
func (g *graph) degree(n int) int {
	if n >= len(g.adj) {
		return 0
	}
	d := 0
	for _, he := range g.adj[n] {
		d += g.edges[he.ei].count
	}

	return d
}
