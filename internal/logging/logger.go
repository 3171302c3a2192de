// Package logging builds the zap loggers used by the uvvis CLI.
package logging

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option mutates the zap configuration before the logger is built.
type Option func(*zap.Config)

// WithLevel sets the minimum level. Unknown names fall back to info.
func WithLevel(level string) Option {
	return func(cfg *zap.Config) {
		cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	}
}

// WithDevelopment switches to the human readable console encoder.
func WithDevelopment(dev bool) Option {
	return func(cfg *zap.Config) {
		if !dev {
			return
		}
		level, fields := cfg.Level, cfg.InitialFields
		*cfg = zap.NewDevelopmentConfig()
		cfg.Level = level
		cfg.InitialFields = fields
		cfg.OutputPaths = []string{"stderr"}
	}
}

// WithFields attaches fields to every log line.
func WithFields(fields map[string]interface{}) Option {
	return func(cfg *zap.Config) {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]interface{}{}
		}
		for key, value := range fields {
			if key == "" {
				continue
			}
			cfg.InitialFields[key] = value
		}
	}
}

// New builds a logger writing to stderr. Every line carries the schema id
// and a fresh run id.
func New(options ...Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil

	for _, option := range options {
		option(&cfg)
	}

	if cfg.InitialFields == nil {
		cfg.InitialFields = map[string]interface{}{}
	}
	cfg.InitialFields[FieldSchema] = SchemaID
	cfg.InitialFields[FieldRunID] = uuid.NewString()

	return cfg.Build()
}

// ParseLevel converts a level name to a zapcore.Level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
