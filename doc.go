// Package drawpath reconstructs minimal continuous polylines from the
// unordered line-segment soup that CAD exports and vector tracers
// produce, and serves the result over HTTP in both DXF and SVG.
//
// 🚀 What is drawpath?
//
//	A small, focused toolkit that brings together:
//		• geom/      — epsilon-tolerant point registry with a grid spatial index
//		• pathtrace/ — the core tracer: degree-classified graph walking that
//		               merges touching segments into maximal open and closed paths
//		• dxf/, svg/ — minimal readers and writers for the two drawing formats
//		• convert/   — DXF ↔ SVG translation through the shared polyline form
//		• web/       — gin upload endpoint returning a ZIP of both outputs
//		• cmd/       — the drawpath server binary
//
// ✨ Why choose drawpath?
//
//   - Deterministic – identical input yields identical paths, regardless
//     of segment order
//   - Lossless – every usable input segment appears in exactly one
//     output path, verified after every run
//   - Tolerant – endpoints within a configurable epsilon are treated as
//     the same point, so almost-touching geometry still chains
//
// Quick ASCII example:
//
//	A───B───C        three raw segments sharing endpoints
//	        │
//	        D        become one polyline  A→B→C→D
//
//	segs := []geom.Segment{ ... }
//	res, err := pathtrace.Trace(segs, pathtrace.DefaultOptions())
//	// res.Paths holds the minimal polylines, res.Stats the reduction.
//
// See each package's doc.go for algorithms, complexity and error
// contracts.
package drawpath
