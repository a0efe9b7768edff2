package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Cache compiles schema documents at most once per type name per cache
// instance and hands out the shared compiled form. Compiled schemas are pure
// functions of the declared type, so concurrent first-use races may each
// compile independently; the last writer wins and every result is
// interchangeable.
//
// The cache is an explicit object: construct one per application and inject
// it where needed, tying its lifetime to the application's.
type Cache struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewCache creates an empty schema cache.
func NewCache() *Cache {
	return &Cache{compiled: make(map[string]*jsonschema.Schema)}
}

// Compile returns the compiled schema for a type name, compiling and storing
// the document on first use. The document is round-tripped through JSON so
// typed Go numbers inside a generated document become plain JSON numbers
// before compilation.
func (c *Cache) Compile(name string, doc map[string]any) (*jsonschema.Schema, error) {
	c.mu.RLock()
	if sch, ok := c.compiled[name]; ok {
		c.mu.RUnlock()
		return sch, nil
	}
	c.mu.RUnlock()

	sch, err := compile(name, doc)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.compiled[name] = sch
	c.mu.Unlock()
	return sch, nil
}

// Len reports how many compiled schemas the cache holds.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.compiled)
}

func compile(name string, doc map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	decoded, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	resource := name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resource, decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	sch, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return sch, nil
}

// Violation is one schema failure located by a slash-delimited instance
// pointer, matching the path convention of errtree.Flat.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// englishPrinter renders violation descriptions; schema pre-validation
// reports structural problems, which are not routed through the message
// catalog used for business-rule failures.
var englishPrinter = message.NewPrinter(language.English)

// Check validates a decoded generic value against a compiled schema and
// flattens any failure into ordered violations, leaf-first within each
// cause branch.
func Check(sch *jsonschema.Schema, value any) []Violation {
	err := sch.Validate(value)
	if err == nil {
		return nil
	}
	return Violations(err)
}

// Violations flattens a jsonschema validation error's cause tree into
// (path, message) pairs. Non-schema errors yield a single root violation.
func Violations(err error) []Violation {
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []Violation{{Path: "", Message: err.Error()}}
	}
	var out []Violation
	walk(ve, &out)
	return out
}

func walk(ve *jsonschema.ValidationError, out *[]Violation) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Violation{
			Path:    pointer(ve.InstanceLocation),
			Message: ve.ErrorKind.LocalizedString(englishPrinter),
		})
		return
	}
	for _, cause := range ve.Causes {
		walk(cause, out)
	}
}

func pointer(location []string) string {
	if len(location) == 0 {
		return ""
	}
	return "/" + strings.Join(location, "/")
}
