package web_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drawpath/config"
	"github.com/katalvlaran/drawpath/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()

	return web.NewServer(config.Default()).SetupRouter()
}

// upload builds a multipart request with one file field.
func upload(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/simplify", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

// chainSVG draws two touching segments that trace to one path.
const chainSVG = `<?xml version="1.0"?>` +
	`<svg xmlns="http://www.w3.org/2000/svg">` +
	`<line x1="0" y1="0" x2="1" y2="0"/>` +
	`<line x1="1" y1="0" x2="2" y2="0"/>` +
	`</svg>`

// TestHealth responds with the liveness payload.
func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"drawpath"}`, w.Body.String())
}

// TestIndex serves the embedded upload page.
func TestIndex(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<html")
}

// TestSimplify_SVGUpload returns a ZIP with both formats and the run
// statistics in the X-Stats header.
func TestSimplify_SVGUpload(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, upload(t, "drawing.svg", []byte(chainSVG)))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "drawing_simplified.zip")

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	names := []string{zr.File[0].Name, zr.File[1].Name}
	assert.ElementsMatch(t, []string{"drawing_simplified.dxf", "drawing_simplified.svg"}, names)

	var stats struct {
		OriginalSegmentCount int     `json:"original_segment_count"`
		PathCount            int     `json:"path_count"`
		ReductionRatio       float64 `json:"reduction_ratio"`
	}
	require.NoError(t, json.Unmarshal([]byte(w.Header().Get("X-Stats")), &stats))
	assert.Equal(t, 2, stats.OriginalSegmentCount)
	assert.Equal(t, 1, stats.PathCount)
	assert.InDelta(t, 0.5, stats.ReductionRatio, 1e-12)
}

// TestSimplify_DXFUpload accepts the other input format.
func TestSimplify_DXFUpload(t *testing.T) {
	dxfDoc := "0\nSECTION\n2\nENTITIES\n" +
		"0\nLINE\n10\n0\n20\n0\n11\n1\n21\n0\n" +
		"0\nLINE\n10\n1\n20\n0\n11\n2\n21\n0\n" +
		"0\nENDSEC\n0\nEOF\n"

	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, upload(t, "plan.dxf", []byte(dxfDoc)))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
}

// TestSimplify_BadRequests rejects unusable uploads with 400.
func TestSimplify_BadRequests(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		name     string
		filename string
		content  []byte
	}{
		{"unsupported extension", "drawing.png", []byte("data")},
		{"empty file", "drawing.svg", nil},
		{"not an svg", "drawing.svg", []byte("plain text")},
		{"dxf without lines", "drawing.dxf", []byte("0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF\n")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, upload(t, tc.filename, tc.content))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// TestSimplify_MissingFileField rejects a form without the file part.
func TestSimplify_MissingFileField(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/simplify", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestSimplify_UploadLimit rejects files above the configured cap.
func TestSimplify_UploadLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Server.MaxUploadBytes = 64
	r := web.NewServer(cfg).SetupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, upload(t, "big.svg", bytes.Repeat([]byte("x"), 200)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
