// Package dxf reads and writes the subset of ASCII DXF that the
// simplifier needs: LINE entities in, LWPOLYLINE entities out.
//
// What:
//
//   - ReadSegments extracts every LINE entity of the ENTITIES section
//     as a geom.Segment.
//   - ReadPolylines additionally walks LWPOLYLINE and POLYLINE/VERTEX
//     chains, for format conversion.
//   - WritePolylines emits a minimal R2000 (AC1015) document with one
//     LWPOLYLINE per path; closed paths set the closed flag (70 = 1)
//     instead of repeating their first vertex.
//
// The ASCII DXF format is a flat stream of tag pairs: a numeric group
// code on one line, its value on the next. Arcs, circles, splines and
// every other entity type are skipped, not translated.
//
// Errors:
//
//   - ErrBadTagPair — the stream ends inside a tag pair or a group code
//     is not numeric.
//   - ErrNoEntities — ReadSegments found no LINE entity to simplify.
package dxf
