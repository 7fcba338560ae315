// Package convert translates between the two supported drawing formats
// through the shared polyline representation: every conversion is
// read-polylines from one format, write-polylines to the other, with
// no geometric processing in between.
package convert

import (
	"fmt"
	"io"

	"github.com/katalvlaran/drawpath/dxf"
	"github.com/katalvlaran/drawpath/svg"
)

// DXFToSVG converts a DXF document into an SVG document.
func DXFToSVG(r io.Reader, w io.Writer) error {
	paths, err := dxf.ReadPolylines(r)
	if err != nil {
		return fmt.Errorf("convert: read dxf: %w", err)
	}
	if err := svg.WritePolylines(w, paths); err != nil {
		return fmt.Errorf("convert: write svg: %w", err)
	}

	return nil
}

// SVGToDXF converts an SVG document into a DXF document.
func SVGToDXF(r io.Reader, w io.Writer) error {
	paths, err := svg.ReadPolylines(r)
	if err != nil {
		return fmt.Errorf("convert: read svg: %w", err)
	}
	if err := dxf.WritePolylines(w, paths); err != nil {
		return fmt.Errorf("convert: write dxf: %w", err)
	}

	return nil
}
