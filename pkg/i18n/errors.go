package i18n

import "errors"

// Package-specific errors
var (
	// ErrNilSource is returned when NewTranslator receives a nil source.
	ErrNilSource = errors.New("translation source is nil")

	// ErrInvalidCatalog is returned when a source yields a structurally
	// invalid catalog (empty language code or nil template map).
	ErrInvalidCatalog = errors.New("invalid translation catalog")

	// ErrFailedToParseCatalog is returned when catalog bytes cannot be
	// decoded.
	ErrFailedToParseCatalog = errors.New("failed to parse translation catalog")
)
