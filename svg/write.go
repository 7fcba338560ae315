package svg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/drawpath/pathtrace"
)

// WritePolylines emits an SVG document with one <path> element per
// polyline. Drawing-space Y (up) is negated into SVG-space Y (down)
// and the viewBox is fitted to the geometry bounds, so the output
// renders the same way up as the source drawing.
// Complexity: O(total points).
func WritePolylines(w io.Writer, paths []pathtrace.Path) error {
	minX, minY, maxX, maxY := bounds(paths)
	width, height := maxX-minX, maxY-minY

	bw := bufio.NewWriter(w)
	bw.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(bw,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="%s %s %s %s">`+"\n",
		fc(width), fc(height), fc(minX), fc(-maxY), fc(width), fc(height))

	for _, p := range paths {
		if len(p.Points) < 2 {
			continue
		}
		fmt.Fprintf(bw, `  <path d="%s" stroke="black" fill="none" stroke-width="0.5"/>`+"\n", pathData(p))
	}

	bw.WriteString("</svg>\n")

	return bw.Flush()
}

// pathData renders one polyline as a path data string; closed paths
// end in Z instead of repeating their first point.
func pathData(p pathtrace.Path) string {
	pts := p.Points
	closed := p.Closed && len(pts) >= 3 && pts[0] == pts[len(pts)-1]
	if closed {
		pts = pts[:len(pts)-1]
	}

	d := fmt.Sprintf("M %s,%s", fc(pts[0].X), fc(-pts[0].Y))
	for _, pt := range pts[1:] {
		d += fmt.Sprintf(" L %s,%s", fc(pt.X), fc(-pt.Y))
	}
	if closed {
		d += " Z"
	}

	return d
}

// bounds returns the drawing-space bounding box of all points, or a
// 100×100 box at the origin when there is nothing to draw.
func bounds(paths []pathtrace.Path) (minX, minY, maxX, maxY float64) {
	first := true
	for _, p := range paths {
		for _, pt := range p.Points {
			if first {
				minX, maxX = pt.X, pt.X
				minY, maxY = pt.Y, pt.Y
				first = false
				continue
			}
			minX = min(minX, pt.X)
			maxX = max(maxX, pt.X)
			minY = min(minY, pt.Y)
			maxY = max(maxY, pt.Y)
		}
	}
	if first {
		return 0, 0, 100, 100
	}

	return minX, minY, maxX, maxY
}

// fc formats one coordinate without trailing zeros.
func fc(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
