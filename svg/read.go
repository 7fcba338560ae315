package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/katalvlaran/drawpath/geom"
	"github.com/katalvlaran/drawpath/pathtrace"
)

// Sentinel errors for SVG reading.
var (
	// ErrNotSVG indicates the input is not well-formed XML or its root
	// element is not <svg>.
	ErrNotSVG = errors.New("svg: input is not an SVG document")

	// ErrNoGeometry indicates the document holds no line geometry.
	ErrNoGeometry = errors.New("svg: no line geometry found")
)

var (
	// pathToken matches one path command letter or one number.
	pathToken = regexp.MustCompile(`([A-Za-z])|(-?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	// number matches one coordinate in a points attribute.
	number = regexp.MustCompile(`-?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
)

// ReadPolylines extracts all line geometry as polylines in drawing
// space (Y negated relative to SVG coordinates).
// Complexity: O(n) over the document.
func ReadPolylines(r io.Reader) ([]pathtrace.Path, error) {
	dec := xml.NewDecoder(r)

	var (
		paths   []pathtrace.Path
		sawRoot bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotSVG, err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !sawRoot {
			if el.Name.Local != "svg" {
				return nil, ErrNotSVG
			}
			sawRoot = true
			continue
		}
		switch el.Name.Local {
		case "line":
			if p, ok := lineElement(el); ok {
				paths = append(paths, p)
			}
		case "polyline":
			if p, ok := pointsElement(el, false); ok {
				paths = append(paths, p)
			}
		case "polygon":
			if p, ok := pointsElement(el, true); ok {
				paths = append(paths, p)
			}
		case "path":
			paths = append(paths, parsePathD(attr(el, "d"))...)
		}
	}
	if !sawRoot {
		return nil, ErrNotSVG
	}

	return paths, nil
}

// ReadSegments extracts all line geometry as unit segments.
// Returns ErrNoGeometry when the document draws no lines.
func ReadSegments(r io.Reader) ([]geom.Segment, error) {
	paths, err := ReadPolylines(r)
	if err != nil {
		return nil, err
	}

	var segs []geom.Segment
	for _, p := range paths {
		for i := 0; i+1 < len(p.Points); i++ {
			if p.Points[i] == p.Points[i+1] {
				continue
			}
			segs = append(segs, geom.Segment{A: p.Points[i], B: p.Points[i+1]})
		}
	}
	if len(segs) == 0 {
		return nil, ErrNoGeometry
	}

	return segs, nil
}

// attr returns the value of the named attribute, ignoring namespaces.
func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}

// drawPoint converts an SVG-space coordinate to drawing space.
func drawPoint(x, y float64) geom.Point {
	return geom.Point{X: x, Y: -y}
}

// lineElement parses a <line> element.
func lineElement(el xml.StartElement) (pathtrace.Path, bool) {
	coords := [4]float64{}
	for i, name := range []string{"x1", "y1", "x2", "y2"} {
		v := attr(el, name)
		if v == "" {
			continue // SVG defaults missing coordinates to 0
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pathtrace.Path{}, false
		}
		coords[i] = f
	}
	a := drawPoint(coords[0], coords[1])
	b := drawPoint(coords[2], coords[3])
	if a == b {
		return pathtrace.Path{}, false
	}

	return pathtrace.Path{Points: []geom.Point{a, b}}, true
}

// pointsElement parses a <polyline> or <polygon> points attribute.
func pointsElement(el xml.StartElement, polygon bool) (pathtrace.Path, bool) {
	nums := number.FindAllString(attr(el, "points"), -1)

	var pts []geom.Point
	for i := 0; i+1 < len(nums); i += 2 {
		x, errX := strconv.ParseFloat(nums[i], 64)
		y, errY := strconv.ParseFloat(nums[i+1], 64)
		if errX != nil || errY != nil {
			continue
		}
		p := drawPoint(x, y)
		if len(pts) == 0 || pts[len(pts)-1] != p {
			pts = append(pts, p)
		}
	}
	if len(pts) < 2 {
		return pathtrace.Path{}, false
	}

	path := pathtrace.Path{Points: pts}
	if polygon && pts[0] != pts[len(pts)-1] {
		path.Points = append(path.Points, pts[0])
		path.Closed = len(path.Points) >= 4
	}

	return path, true
}

// parsePathD parses a path data string into subpaths. Supported
// commands: M/m, L/l, H/h, V/v, Z/z; numbers under other commands are
// discarded so curves do not corrupt the position.
func parsePathD(d string) []pathtrace.Path {
	toks := pathToken.FindAllStringSubmatch(d, -1)

	var (
		out    []pathtrace.Path
		cur    []geom.Point
		closed bool
		pos    [2]float64 // SVG space
		start  [2]float64
		cmd    byte
	)
	flush := func() {
		if len(cur) >= 2 {
			out = append(out, pathtrace.Path{Points: cur, Closed: closed})
		}
		cur, closed = nil, false
	}
	add := func(x, y float64) {
		p := drawPoint(x, y)
		if len(cur) == 0 || cur[len(cur)-1] != p {
			cur = append(cur, p)
		}
	}

	i := 0
	num := func() (float64, bool) {
		if i >= len(toks) || toks[i][1] != "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(toks[i][2], 64)
		i++
		if err != nil {
			return 0, false
		}

		return v, true
	}

	for i < len(toks) {
		if toks[i][1] != "" {
			cmd = toks[i][1][0]
			i++
			if cmd == 'Z' || cmd == 'z' {
				if len(cur) > 0 {
					add(start[0], start[1])
					closed = len(cur) >= 3
				}
				pos = start
				flush()
				// Anything drawn after Z starts at the subpath start.
				add(pos[0], pos[1])
			}
			continue
		}

		switch cmd {
		case 'M', 'm':
			x, okX := num()
			y, okY := num()
			if !okX || !okY {
				continue
			}
			if cmd == 'm' {
				pos[0] += x
				pos[1] += y
			} else {
				pos = [2]float64{x, y}
			}
			start = pos
			flush()
			add(pos[0], pos[1])
			// Subsequent pairs are implicit linetos.
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L', 'l':
			x, okX := num()
			y, okY := num()
			if !okX || !okY {
				continue
			}
			if cmd == 'l' {
				pos[0] += x
				pos[1] += y
			} else {
				pos = [2]float64{x, y}
			}
			add(pos[0], pos[1])
		case 'H', 'h':
			x, ok := num()
			if !ok {
				continue
			}
			if cmd == 'h' {
				pos[0] += x
			} else {
				pos[0] = x
			}
			add(pos[0], pos[1])
		case 'V', 'v':
			y, ok := num()
			if !ok {
				continue
			}
			if cmd == 'v' {
				pos[1] += y
			} else {
				pos[1] = y
			}
			add(pos[0], pos[1])
		default:
			// Number belonging to an unsupported command (curves, arcs).
			i++
		}
	}
	flush()

	return out
}
