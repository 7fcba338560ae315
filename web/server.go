// Package web exposes the simplifier over HTTP: an upload endpoint
// that returns a ZIP with both output formats, a health check, and a
// small embedded upload page. All geometry work happens in pathtrace;
// this layer only moves bytes.
package web

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/drawpath/config"
	"github.com/katalvlaran/drawpath/dxf"
	"github.com/katalvlaran/drawpath/pathtrace"
	"github.com/katalvlaran/drawpath/svg"
)

// Server wires the HTTP handlers to the run configuration.
type Server struct {
	cfg *config.Config
}

// NewServer creates a Server for the given configuration.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// SetupRouter builds the gin engine with all routes attached.
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.MaxMultipartMemory = s.cfg.Server.MaxUploadBytes

	r.GET("/", s.Index)
	r.HEAD("/", s.Index)
	r.GET("/health", s.Health)
	r.POST("/simplify", s.Simplify)

	return r
}

// Index serves the embedded upload page.
func (s *Server) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// Health reports service liveness.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "drawpath"})
}

// statsPayload is the X-Stats header body, snake_cased for the UI.
type statsPayload struct {
	OriginalSegmentCount   int     `json:"original_segment_count"`
	DegenerateSegmentCount int     `json:"degenerate_segment_count"`
	PathCount              int     `json:"path_count"`
	UniquePoints           int     `json:"unique_points"`
	Endpoints              int     `json:"endpoints"`
	Junctions              int     `json:"junctions"`
	ReductionRatio         float64 `json:"reduction_ratio"`
}

// Simplify accepts one multipart drawing upload, traces it, and
// responds with a ZIP holding the simplified drawing in both formats.
// Cancellation is honored only before the run starts; the trace itself
// is a short, bounded computation and is never interrupted mid-walk.
func (s *Server) Simplify(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".dxf" && ext != ".svg" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file format, upload .dxf or .svg"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read upload"})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, s.cfg.Server.MaxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read upload"})
		return
	}
	if len(content) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty file uploaded"})
		return
	}
	if int64(len(content)) > s.cfg.Server.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload limit"})
		return
	}

	// I/O boundary: last point where a client abort is honored.
	if err := c.Request.Context().Err(); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	res, err := s.simplify(ext, content)
	if err != nil {
		status := http.StatusInternalServerError
		if isInputError(err) {
			status = http.StatusBadRequest
		} else {
			log.Printf("simplify %s: %v", file.Filename, err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	var dxfOut, svgOut bytes.Buffer
	if err := dxf.WritePolylines(&dxfOut, res.Paths); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "writing dxf output failed"})
		return
	}
	if err := svg.WritePolylines(&svgOut, res.Paths); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "writing svg output failed"})
		return
	}

	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	archive, err := zipOutputs(base, dxfOut.Bytes(), svgOut.Bytes())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "packaging failed"})
		return
	}

	header, _ := json.Marshal(statsPayload{
		OriginalSegmentCount:   res.Stats.OriginalSegments,
		DegenerateSegmentCount: res.Stats.DegenerateSegments,
		PathCount:              res.Stats.PathCount,
		UniquePoints:           res.Stats.UniquePoints,
		Endpoints:              res.Stats.Endpoints,
		Junctions:              res.Stats.Junctions,
		ReductionRatio:         res.Stats.ReductionRatio,
	})
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+"_simplified.zip"))
	c.Header("X-Stats", string(header))
	c.Data(http.StatusOK, "application/zip", archive)
}

// simplify parses the upload in its native format and traces it.
func (s *Server) simplify(ext string, content []byte) (*pathtrace.Result, error) {
	opts := pathtrace.DefaultOptions()
	opts.Epsilon = s.cfg.Simplify.Epsilon

	if ext == ".dxf" {
		segs, err := dxf.ReadSegments(bytes.NewReader(content))
		if err != nil {
			return nil, err
		}

		return pathtrace.Trace(segs, opts)
	}

	segs, err := svg.ReadSegments(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	return pathtrace.Trace(segs, opts)
}

// zipOutputs bundles both simplified formats into one archive.
func zipOutputs(base string, dxfData, svgData []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range []struct {
		name string
		data []byte
	}{
		{base + "_simplified.dxf", dxfData},
		{base + "_simplified.svg", svgData},
	} {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(f.data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// isInputError classifies the sentinel errors that mean "bad upload"
// rather than "server bug".
func isInputError(err error) bool {
	for _, sentinel := range []error{
		pathtrace.ErrNoSegments,
		pathtrace.ErrNonFinite,
		pathtrace.ErrNoUsableSegments,
		pathtrace.ErrBadEpsilon,
		dxf.ErrBadTagPair,
		dxf.ErrNoEntities,
		svg.ErrNotSVG,
		svg.ErrNoGeometry,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
