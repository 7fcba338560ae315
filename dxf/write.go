package dxf

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/drawpath/pathtrace"
)

// WritePolylines emits a minimal R2000 DXF document whose ENTITIES
// section holds one LWPOLYLINE per path. Closed paths are written with
// the closed flag set and without the repeated closing vertex, which is
// how DXF expresses loops.
// Complexity: O(total points).
func WritePolylines(w io.Writer, paths []pathtrace.Path) error {
	bw := bufio.NewWriter(w)
	put := func(code int, value string) {
		bw.WriteString(strconv.Itoa(code))
		bw.WriteByte('\n')
		bw.WriteString(value)
		bw.WriteByte('\n')
	}

	put(0, "SECTION")
	put(2, "HEADER")
	put(9, "$ACADVER")
	put(1, "AC1015")
	put(0, "ENDSEC")

	put(0, "SECTION")
	put(2, "ENTITIES")
	for _, p := range paths {
		pts := p.Points
		flag := 0
		if p.Closed && len(pts) >= 2 {
			pts = pts[:len(pts)-1]
			flag = 1
		}
		if len(pts) < 2 {
			continue
		}
		put(0, "LWPOLYLINE")
		put(8, "0")
		put(90, strconv.Itoa(len(pts)))
		put(70, strconv.Itoa(flag))
		for _, pt := range pts {
			put(10, formatCoord(pt.X))
			put(20, formatCoord(pt.Y))
		}
	}
	put(0, "ENDSEC")
	put(0, "EOF")

	return bw.Flush()
}

// formatCoord renders a coordinate without trailing zeros.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
