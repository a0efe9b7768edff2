package i18n

import (
	"context"
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// StaticSource serves a catalog from an in-memory map.
type StaticSource struct {
	catalog Catalog
}

// NewStaticSource wraps an in-memory catalog as a Source.
func NewStaticSource(catalog Catalog) *StaticSource {
	return &StaticSource{catalog: catalog}
}

// Load returns the wrapped catalog.
func (s *StaticSource) Load(_ context.Context) (Catalog, error) {
	if s.catalog == nil {
		return Catalog{}, nil
	}
	return s.catalog, nil
}

// JSONSource parses a catalog from JSON bytes shaped as
// {"en": {"validation.minimum": "..."}, "de": {...}}.
type JSONSource struct {
	data []byte
}

// NewJSONSource wraps raw JSON catalog bytes as a Source.
func NewJSONSource(data []byte) *JSONSource {
	return &JSONSource{data: data}
}

// Load decodes the JSON catalog.
func (s *JSONSource) Load(_ context.Context) (Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(s.data, &catalog); err != nil {
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}
	return catalog, nil
}

// YAMLSource parses a catalog from YAML bytes with the same two-level shape
// as JSONSource.
type YAMLSource struct {
	data []byte
}

// NewYAMLSource wraps raw YAML catalog bytes as a Source.
func NewYAMLSource(data []byte) *YAMLSource {
	return &YAMLSource{data: data}
}

// Load decodes the YAML catalog.
func (s *YAMLSource) Load(_ context.Context) (Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(s.data, &catalog); err != nil {
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}
	return catalog, nil
}
