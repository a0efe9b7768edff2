package schema

import "errors"

// Package-specific errors
var (
	// ErrInvalidSchema is returned when a generated schema document cannot
	// be compiled. This signals a bug in schema generation, not bad input.
	ErrInvalidSchema = errors.New("failed to compile schema document")
)
