// Package pathtrace reconstructs a minimal set of continuous polylines
// from an unordered collection of 2D line segments.
//
// What:
//
//   - Builds an undirected multigraph over canonical nodes (endpoints
//     deduplicated within ε by geom.Registry).
//   - Classifies nodes by degree: endpoint (1), pass-through (2),
//     junction (≥3).
//   - Emits the maximal simple paths and closed loops that partition
//     the edge multiset exactly once: paths run between non-degree-2
//     terminators, merging freely through pass-through nodes; two
//     segments are never joined across a junction.
//
// Why:
//
//   - CAD and plotter exports shatter drawings into thousands of unit
//     segments; downstream tooling (laser cutters, pen plotters, SVG
//     renderers) wants continuous polylines instead.
//
// Algorithm:
//
//  1. Canonicalize endpoints; drop self-loop segments as degenerate.
//  2. First pass — start a path at every node of degree 1 or ≥3 while
//     it still has unvisited edges; walk forward through degree-2
//     nodes until a non-degree-2 node or a dead end.
//  3. Second pass — whatever edges remain form closed loops of pure
//     degree-2 nodes; walk each until it returns to its start and emit
//     it with the first point repeated.
//  4. Verify every edge was consumed exactly once.
//
// Complexity:
//
//   - Trace: O(V + E) time after canonicalization, O(V + E) memory.
//
// Errors:
//
//   - ErrNoSegments       — the input slice is empty.
//   - ErrNonFinite        — an input coordinate is NaN or ±Inf.
//   - ErrNoUsableSegments — every segment collapsed to a self-loop.
//   - ErrBadEpsilon       — a non-positive tolerance was supplied.
//   - ErrInternalTrace    — a trace invariant was violated; the run is
//     aborted rather than returning partial polylines.
package pathtrace
