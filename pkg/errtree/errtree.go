package errtree

import (
	"bytes"
	"encoding/json"
	"slices"
	"sort"
)

// Shape describes which structural variant an Errors node represents.
// It mirrors the shape of the validated value itself: composite objects
// carry per-field children, collections carry per-index children, and
// everything else collapses to a bare list of failures.
type Shape int

const (
	// NewType is a node holding direct failures for a single wrapped value
	// with no further structure.
	NewType Shape = iota
	// Object is a node holding object-level failures plus per-field children.
	Object
	// Array is a node holding collection-level failures plus per-index children.
	Array
)

func (s Shape) String() string {
	switch s {
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "newtype"
	}
}

// Error is a single constraint failure: the rule that failed, the rendered
// message, and the constant parameters needed to re-render it in another
// language. Params also carries the offending value under the "value" key.
type Error struct {
	Rule    string
	Message string
	Key     string
	Params  map[string]any
}

// Args flattens Params into alternating key/value string pairs with keys in
// lexical order, the form message catalogs consume. Ordering is fixed so the
// same failure always renders the same way.
func (e *Error) Args() []string {
	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, stringify(e.Params[k]))
	}
	return args
}

// Errors is the shaped failure tree produced by one validation run.
// It mirrors the validated value: Object nodes key children by field name,
// Array nodes key children by zero-based index, NewType nodes hold only
// direct failures. Child insertion order is preserved for deterministic
// serialization and flattening.
//
// A nil *Errors means success. Producers must never hand out a node that is
// observably empty; use OrNil before returning.
type Errors struct {
	shape      Shape
	direct     []*Error
	propKeys   []string
	properties map[string]*Errors
	itemKeys   []int
	items      map[int]*Errors
}

// NewTypeErrors builds a NewType node from direct failures.
func NewTypeErrors(direct ...*Error) *Errors {
	return &Errors{shape: NewType, direct: direct}
}

// ObjectErrors builds an Object node, optionally seeded with object-level
// (cross-field) failures.
func ObjectErrors(direct ...*Error) *Errors {
	return &Errors{shape: Object, direct: direct}
}

// ArrayErrors builds an Array node, optionally seeded with collection-level
// failures.
func ArrayErrors(direct ...*Error) *Errors {
	return &Errors{shape: Array, direct: direct}
}

// Shape reports the node's structural variant.
func (e *Errors) Shape() Shape { return e.shape }

// Direct returns the node's own failures in insertion order.
func (e *Errors) Direct() []*Error { return e.direct }

// AddDirect appends failures to the node's own error list.
func (e *Errors) AddDirect(errs ...*Error) {
	e.direct = append(e.direct, errs...)
}

// PrependDirect inserts failures ahead of the node's existing error list.
// Used when a field carries both its own constraint failures and a nested
// tree: the field's failures were discovered first and keep that position.
func (e *Errors) PrependDirect(errs ...*Error) {
	if len(errs) == 0 {
		return
	}
	e.direct = append(slices.Clone(errs), e.direct...)
}

// SetProperty attaches a child tree under a field key. Nil and empty
// children are dropped, re-setting an existing key replaces the child
// without changing its position.
func (e *Errors) SetProperty(name string, child *Errors) {
	if child == nil || child.IsEmpty() {
		return
	}
	if e.properties == nil {
		e.properties = make(map[string]*Errors)
	}
	if _, exists := e.properties[name]; !exists {
		e.propKeys = append(e.propKeys, name)
	}
	e.properties[name] = child
}

// PropertyKeys returns field keys in insertion order.
func (e *Errors) PropertyKeys() []string { return e.propKeys }

// Property returns the child tree for a field key, or nil.
func (e *Errors) Property(name string) *Errors { return e.properties[name] }

// SetItem attaches a child tree under a zero-based collection index.
func (e *Errors) SetItem(index int, child *Errors) {
	if child == nil || child.IsEmpty() {
		return
	}
	if e.items == nil {
		e.items = make(map[int]*Errors)
	}
	if _, exists := e.items[index]; !exists {
		e.itemKeys = append(e.itemKeys, index)
	}
	e.items[index] = child
}

// ItemIndexes returns collection indices in insertion order.
func (e *Errors) ItemIndexes() []int { return e.itemKeys }

// Item returns the child tree for a collection index, or nil.
func (e *Errors) Item(index int) *Errors { return e.items[index] }

// IsEmpty reports whether the node records no failure at all.
func (e *Errors) IsEmpty() bool {
	return e == nil || (len(e.direct) == 0 && len(e.propKeys) == 0 && len(e.itemKeys) == 0)
}

// OrNil collapses an empty node to nil. Absence of error is represented by
// omission, never by an empty container.
func (e *Errors) OrNil() *Errors {
	if e.IsEmpty() {
		return nil
	}
	return e
}

// Error implements the error interface by rendering the JSON serialization,
// so a failure logged or printed as a plain error still shows every field.
func (e *Errors) Error() string {
	b, err := e.MarshalJSON()
	if err != nil {
		return "validation failed"
	}
	return string(b)
}

// MarshalJSON renders the node as nested keyed containers: an object with
// optional "errors" (message strings), "properties" (field-keyed children in
// declaration order) and "items" (index-keyed children) members. Empty
// members are omitted.
func (e *Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Errors) encode(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	first := true

	writeKey := func(key string) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		b, _ := json.Marshal(key)
		buf.Write(b)
		buf.WriteByte(':')
	}

	if len(e.direct) > 0 {
		writeKey("errors")
		messages := make([]string, len(e.direct))
		for i, err := range e.direct {
			messages[i] = err.Message
		}
		b, err := json.Marshal(messages)
		if err != nil {
			return err
		}
		buf.Write(b)
	}

	if len(e.propKeys) > 0 {
		writeKey("properties")
		buf.WriteByte('{')
		for i, key := range e.propKeys {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, _ := json.Marshal(key)
			buf.Write(b)
			buf.WriteByte(':')
			if err := e.properties[key].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}

	if len(e.itemKeys) > 0 {
		writeKey("items")
		buf.WriteByte('{')
		indexes := slices.Clone(e.itemKeys)
		slices.Sort(indexes)
		for i, idx := range indexes {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, _ := json.Marshal(itoa(idx))
			buf.Write(b)
			buf.WriteByte(':')
			if err := e.items[idx].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return nil
}
