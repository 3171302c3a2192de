package uvvis

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrFileUnreadable indicates the input file exists but could not be opened or read.
var ErrFileUnreadable = errors.New("file unreadable")

// ErrInvalidFormat indicates the input file could not be read as a table.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrInvalidOptions indicates a bad thickness, unit or header mode.
var ErrInvalidOptions = errors.New("invalid options")

// ExportError represents a failure to write an output file.
type ExportError struct {
	Path string
	Kind string // "csv", "xlsx", "parquet", "json", "png", "dir"
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error writing %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(path, kind string, err error) *ExportError {
	return &ExportError{
		Path: path,
		Kind: kind,
		Err:  err,
	}
}
