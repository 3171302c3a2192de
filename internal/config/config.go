// Package config loads CLI defaults from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvThickness  = "UVVIS_THICKNESS"
	EnvUnit       = "UVVIS_UNIT"
	EnvHeaderMode = "UVVIS_HEADER_MODE"
	EnvOutputDir  = "UVVIS_OUTPUT_DIR"
	EnvLogLevel   = "UVVIS_LOG_LEVEL"
)

// Config holds defaults for CLI flags.
type Config struct {
	// Thickness is the film thickness in nm, nil when unset.
	Thickness  *float64
	Unit       string
	HeaderMode string
	OutputDir  string
	LogLevel   string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Unit:       "eV",
		HeaderMode: "auto",
		LogLevel:   "info",
	}
}

// Load reads the given .env files (".env" when none are given) if they
// exist and then applies UVVIS_* variables on top of the defaults.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvThickness); ok && strings.TrimSpace(v) != "" {
		t, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvThickness, err)
		}
		cfg.Thickness = &t
	}
	if v, ok := lookup(EnvUnit); ok && v != "" {
		cfg.Unit = v
	}
	if v, ok := lookup(EnvHeaderMode); ok && v != "" {
		cfg.HeaderMode = v
	}
	if v, ok := lookup(EnvOutputDir); ok {
		cfg.OutputDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
