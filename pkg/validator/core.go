package validator

import (
	"fmt"

	"github.com/validtree/validtree/pkg/errtree"
	"github.com/validtree/validtree/pkg/rules"
)

// Validatable is implemented by any type that carries its own compiled
// validator. Composite fields whose type implements Validatable can be
// validated by delegation, nesting the sub-result into the parent tree.
type Validatable interface {
	Validate() error
}

// Value validates one already-typed value and reports a shaped error node,
// or nil when the value is clean. Value implementations are immutable after
// construction and safe for concurrent use.
type Value[V any] interface {
	Validate(V) *errtree.Errors
	// Schema returns the JSON Schema fragment describing this value.
	Schema() map[string]any
}

// FieldValidator binds a value validator to one named field of T. The name
// is the external (wire) name of the field, not the Go identifier: nested
// error paths and schema properties use it verbatim.
type FieldValidator[T any] struct {
	name     string
	required bool
	validate func(*T) *errtree.Errors
	schema   func() map[string]any
}

// Name returns the field's wire name.
func (f FieldValidator[T]) Name() string { return f.name }

// Field binds a value validator to a named field via an accessor.
func Field[T, V any](name string, get func(*T) V, val Value[V]) FieldValidator[T] {
	_, opt := any(val).(optionalMarker)
	return FieldValidator[T]{
		name:     name,
		required: !opt,
		validate: func(t *T) *errtree.Errors { return val.Validate(get(t)) },
		schema:   val.Schema,
	}
}

// Checks is shorthand for Field(name, get, Scalar(constraints...)).
func Checks[T, V any](name string, get func(*T) V, cs ...rules.Constraint[V]) FieldValidator[T] {
	return Field(name, get, Scalar(cs...))
}

// ObjectRule is a cross-field constraint evaluated against the whole
// instance after every per-field validator has run, regardless of per-field
// outcome. Its failures populate the object node's own error list.
type ObjectRule[T any] func(*T) *errtree.Error

// TypeValidator is the compiled validator for one composite type: an ordered
// sequence of field validators plus zero or more whole-object rules. It is
// built once per declared type, is immutable afterwards, and may be shared
// across concurrent validation runs without synchronization.
type TypeValidator[T any] struct {
	typeName    string
	fields      []FieldValidator[T]
	objectRules []ObjectRule[T]
}

// New compiles a type validator from field validators in declaration order.
// The order fixes the error key ordering in serialized output. Panics if two
// fields share a wire name.
func New[T any](typeName string, fields ...FieldValidator[T]) *TypeValidator[T] {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.name]; dup {
			panic(fmt.Sprintf("validator: duplicate field name %q in type %q", f.name, typeName))
		}
		seen[f.name] = struct{}{}
	}
	return &TypeValidator[T]{typeName: typeName, fields: fields}
}

// Rule appends whole-object rules, returning the validator for chaining.
// Rules must be attached before the validator is shared between goroutines.
func (tv *TypeValidator[T]) Rule(rule ...ObjectRule[T]) *TypeValidator[T] {
	tv.objectRules = append(tv.objectRules, rule...)
	return tv
}

// TypeName returns the declared type name, used as the schema cache key.
func (tv *TypeValidator[T]) TypeName() string { return tv.typeName }

// ValidateTree runs every field validator unconditionally — a failure in one
// field never aborts validation of its siblings — then every whole-object
// rule, and merges the results into one Object node. Returns nil when the
// instance is clean.
func (tv *TypeValidator[T]) ValidateTree(v *T) *errtree.Errors {
	root := errtree.ObjectErrors()
	for _, f := range tv.fields {
		root.SetProperty(f.name, f.validate(v))
	}
	for _, rule := range tv.objectRules {
		if err := rule(v); err != nil {
			root.AddDirect(err)
		}
	}
	return root.OrNil()
}

// Validate reports the instance's full error tree as an error, or nil on
// success. The returned error is always a *errtree.Errors and can be
// recovered with errors.As.
func (tv *TypeValidator[T]) Validate(v *T) error {
	if tree := tv.ValidateTree(v); tree != nil {
		return tree
	}
	return nil
}
