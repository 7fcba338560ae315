// Package geom provides the 2D primitives shared by the drawpath
// pipeline: points, raw segments, and the run-scoped point Registry
// that deduplicates floating-point coordinates within a tolerance ε.
//
// What:
//
//   - Point / Segment value types in drawing coordinates (Y-up).
//   - Registry canonicalizes raw coordinates to small integer node ids
//     using a uniform grid keyed by ⌊coord/ε⌋, so lookups probe at most
//     the 3×3 neighborhood of the query cell.
//   - First-seen coordinate wins: once an id is assigned, its canonical
//     Point never changes.
//
// Why:
//
//   - Drawing exports repeat "the same" endpoint with sub-ε jitter;
//     merging those is what lets segment chains connect at all.
//   - A linear scan per insertion would be O(n²) over tens of thousands
//     of segments; the grid keeps Canonicalize at O(1) amortized.
//
// Tolerance policy:
//
//	A query matches the nearest existing canonical point strictly within
//	ε, otherwise it becomes a new node. Near the ε boundary this can
//	chain-merge points that a transitive-closure policy would keep
//	apart; that approximation is accepted and documented, not corrected.
//
// Complexity:
//
//   - Canonicalize: O(1) amortized, O(k) for k points in the 3×3 probe.
//   - Coordinate / Len: O(1).
package geom
