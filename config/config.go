// Package config loads the drawpath service configuration from a TOML
// file, with environment-variable overrides applied on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/drawpath/geom"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// Address is the listen address, e.g. ":8080".
	Address string `toml:"address"`
	// MaxUploadBytes caps the size of one uploaded drawing.
	MaxUploadBytes int64 `toml:"max_upload_bytes"`
}

// SimplifyConfig holds the tracing parameters.
type SimplifyConfig struct {
	// Epsilon is the endpoint merge tolerance passed to every run.
	Epsilon float64 `toml:"epsilon"`
}

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Simplify SimplifyConfig `toml:"simplify"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:        ":8080",
			MaxUploadBytes: 32 << 20, // 32 MiB
		},
		Simplify: SimplifyConfig{
			Epsilon: geom.DefaultEpsilon,
		},
	}
}

// Load reads a TOML configuration file and applies env overrides.
// Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyEnv()

	return cfg, nil
}

// FromEnv returns the defaults with env overrides applied, for running
// without a configuration file.
func FromEnv() *Config {
	cfg := Default()
	cfg.applyEnv()

	return cfg
}

// applyEnv overrides individual fields from the environment:
// DRAWPATH_ADDR, DRAWPATH_MAX_UPLOAD and DRAWPATH_EPSILON.
func (c *Config) applyEnv() {
	if addr := os.Getenv("DRAWPATH_ADDR"); addr != "" {
		c.Server.Address = addr
	}
	if raw := os.Getenv("DRAWPATH_MAX_UPLOAD"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			c.Server.MaxUploadBytes = v
		}
	}
	if raw := os.Getenv("DRAWPATH_EPSILON"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			c.Simplify.Epsilon = v
		}
	}
}
