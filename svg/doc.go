// Package svg reads and writes the line geometry of SVG documents.
//
// What:
//
//   - ReadSegments / ReadPolylines walk <line>, <polyline>, <polygon>
//     and <path> elements (path commands M/L/H/V/Z, absolute and
//     relative, with the implicit lineto after a moveto). Curve
//     commands are skipped, not approximated.
//   - WritePolylines emits one <path> element per polyline with a
//     viewBox fitted to the geometry bounds.
//
// Coordinates: the rest of the pipeline works in drawing space with the
// Y axis pointing up, SVG's Y axis points down. The readers negate Y on
// the way in and WritePolylines negates it back on the way out, so an
// SVG round trip is exact and DXF↔SVG conversion lands the right way
// up.
//
// Errors:
//
//   - ErrNotSVG     — the input is not well-formed XML with an <svg> root.
//   - ErrNoGeometry — ReadSegments found no line geometry to simplify.
package svg
