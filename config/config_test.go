package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/drawpath/config"
	"github.com/katalvlaran/drawpath/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault carries the documented defaults.
func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, geom.DefaultEpsilon, cfg.Simplify.Epsilon)
}

// TestLoad parses a TOML file, keeping defaults for omitted fields.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawpath.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"[server]\naddress = \":9090\"\n\n[simplify]\nepsilon = 0.001\n",
	), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 0.001, cfg.Simplify.Epsilon)
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes, "omitted field keeps default")
}

// TestLoad_Errors reports missing and malformed files.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\naddress"), 0o600))
	_, err = config.Load(path)
	assert.Error(t, err)
}

// TestFromEnv applies environment overrides on top of the defaults and
// ignores unparseable values.
func TestFromEnv(t *testing.T) {
	t.Setenv("DRAWPATH_ADDR", "127.0.0.1:7000")
	t.Setenv("DRAWPATH_MAX_UPLOAD", "1048576")
	t.Setenv("DRAWPATH_EPSILON", "0.5")

	cfg := config.FromEnv()
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Address)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, 0.5, cfg.Simplify.Epsilon)

	t.Setenv("DRAWPATH_MAX_UPLOAD", "not-a-number")
	t.Setenv("DRAWPATH_EPSILON", "-1")

	cfg = config.FromEnv()
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, geom.DefaultEpsilon, cfg.Simplify.Epsilon)
}
