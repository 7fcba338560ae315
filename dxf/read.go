package dxf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/drawpath/geom"
	"github.com/katalvlaran/drawpath/pathtrace"
)

// Sentinel errors for DXF reading.
var (
	// ErrBadTagPair indicates a truncated or malformed group-code/value
	// pair in the tag stream.
	ErrBadTagPair = errors.New("dxf: malformed tag pair")

	// ErrNoEntities indicates the document holds no LINE entity, so
	// there is nothing to simplify.
	ErrNoEntities = errors.New("dxf: no LINE entities found")
)

// tag is one group-code/value pair of the ASCII DXF stream.
type tag struct {
	code  int
	value string
}

// readTags scans the whole stream into tag pairs.
// Complexity: O(n) over input lines.
func readTags(r io.Reader) ([]tag, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var tags []tag
	for sc.Scan() {
		codeLine := strings.TrimSpace(sc.Text())
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: code %q without value", ErrBadTagPair, codeLine)
		}
		code, err := strconv.Atoi(codeLine)
		if err != nil {
			return nil, fmt.Errorf("%w: group code %q", ErrBadTagPair, codeLine)
		}
		tags = append(tags, tag{code: code, value: strings.TrimRight(sc.Text(), "\r\n ")})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dxf: read: %w", err)
	}

	return tags, nil
}

// entity is one parsed entity: its type name and body tags up to the
// next entity marker.
type entity struct {
	kind string
	tags []tag
}

// entities splits the ENTITIES section into individual entities.
func entities(tags []tag) []entity {
	var (
		out       []entity
		inSection bool
		section   string
	)
	for i := 0; i < len(tags); i++ {
		t := tags[i]
		switch {
		case t.code == 0 && t.value == "SECTION":
			inSection = true
			section = ""
		case t.code == 2 && inSection && section == "":
			section = t.value
		case t.code == 0 && t.value == "ENDSEC":
			inSection = false
			section = ""
		case t.code == 0 && section == "ENTITIES":
			e := entity{kind: t.value}
			for j := i + 1; j < len(tags) && tags[j].code != 0; j++ {
				e.tags = append(e.tags, tags[j])
				i = j
			}
			out = append(out, e)
		}
	}

	return out
}

// coord returns the float value of the first tag with the given group
// code, or (0, false).
func (e entity) floatTag(code int) (float64, bool) {
	for _, t := range e.tags {
		if t.code == code {
			v, err := strconv.ParseFloat(strings.TrimSpace(t.value), 64)
			if err != nil {
				return 0, false
			}

			return v, true
		}
	}

	return 0, false
}

// ReadSegments extracts all LINE entities as raw segments.
// Returns ErrNoEntities when the document has no LINE entity.
// Complexity: O(n) over tags.
func ReadSegments(r io.Reader) ([]geom.Segment, error) {
	tags, err := readTags(r)
	if err != nil {
		return nil, err
	}

	var segs []geom.Segment
	for _, e := range entities(tags) {
		if e.kind != "LINE" {
			continue
		}
		x1, ok1 := e.floatTag(10)
		y1, ok2 := e.floatTag(20)
		x2, ok3 := e.floatTag(11)
		y2, ok4 := e.floatTag(21)
		if !(ok1 && ok2 && ok3 && ok4) {
			continue
		}
		segs = append(segs, geom.Segment{
			A: geom.Point{X: x1, Y: y1},
			B: geom.Point{X: x2, Y: y2},
		})
	}
	if len(segs) == 0 {
		return nil, ErrNoEntities
	}

	return segs, nil
}

// ReadPolylines extracts LWPOLYLINE, POLYLINE/VERTEX and LINE entities
// as polylines, for format conversion. Entities of other types are
// skipped. Complexity: O(n) over tags.
func ReadPolylines(r io.Reader) ([]pathtrace.Path, error) {
	tags, err := readTags(r)
	if err != nil {
		return nil, err
	}

	var (
		paths []pathtrace.Path
		poly  *pathtrace.Path // open POLYLINE awaiting VERTEX entities
	)
	flush := func() {
		if poly != nil && len(poly.Points) >= 2 {
			closePath(poly)
			paths = append(paths, *poly)
		}
		poly = nil
	}

	for _, e := range entities(tags) {
		switch e.kind {
		case "LINE":
			flush()
			x1, ok1 := e.floatTag(10)
			y1, ok2 := e.floatTag(20)
			x2, ok3 := e.floatTag(11)
			y2, ok4 := e.floatTag(21)
			if ok1 && ok2 && ok3 && ok4 {
				paths = append(paths, pathtrace.Path{Points: []geom.Point{
					{X: x1, Y: y1}, {X: x2, Y: y2},
				}})
			}
		case "LWPOLYLINE":
			flush()
			p := lwpolyline(e)
			if len(p.Points) >= 2 {
				paths = append(paths, p)
			}
		case "POLYLINE":
			flush()
			closed := false
			if f, ok := e.floatTag(70); ok && int(f)&1 != 0 {
				closed = true
			}
			poly = &pathtrace.Path{Closed: closed}
		case "VERTEX":
			if poly == nil {
				continue
			}
			x, ok1 := e.floatTag(10)
			y, ok2 := e.floatTag(20)
			if ok1 && ok2 {
				poly.Points = append(poly.Points, geom.Point{X: x, Y: y})
			}
		case "SEQEND":
			flush()
		default:
			flush()
		}
	}
	flush()

	return paths, nil
}

// lwpolyline collects the repeated 10/20 vertex pairs of an LWPOLYLINE.
func lwpolyline(e entity) pathtrace.Path {
	var p pathtrace.Path
	if f, ok := e.floatTag(70); ok && int(f)&1 != 0 {
		p.Closed = true
	}
	var x float64
	var haveX bool
	for _, t := range e.tags {
		v, err := strconv.ParseFloat(strings.TrimSpace(t.value), 64)
		if err != nil {
			continue
		}
		switch t.code {
		case 10:
			x, haveX = v, true
		case 20:
			if haveX {
				p.Points = append(p.Points, geom.Point{X: x, Y: v})
				haveX = false
			}
		}
	}
	closePath(&p)

	return p
}

// closePath normalizes a closed polyline to repeat its first point.
func closePath(p *pathtrace.Path) {
	if !p.Closed || len(p.Points) < 2 {
		return
	}
	if p.Points[0] != p.Points[len(p.Points)-1] {
		p.Points = append(p.Points, p.Points[0])
	}
}
