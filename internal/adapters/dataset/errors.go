package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is wrapped by SchemaError when a required column is absent
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptyFile is returned for files without a header row
	ErrEmptyFile = errors.New("file has no header row")
)

// SchemaError describes a structural problem of an input table. It aborts the
// whole load; row level anomalies never produce one.
type SchemaError struct {
	File   string
	Column string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: column %q: %v", e.File, e.Column, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// LoadStats counts rows loaded and the row level anomalies recovered locally
type LoadStats struct {
	File          string `json:"file" yaml:"file"`
	Rows          int    `json:"rows" yaml:"rows"`
	InvalidDates  int    `json:"invalid_dates" yaml:"invalid_dates"`
	InvalidValues int    `json:"invalid_values" yaml:"invalid_values"`
}
