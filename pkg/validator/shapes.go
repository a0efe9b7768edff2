package validator

import (
	"errors"
	"reflect"

	"github.com/validtree/validtree/pkg/errtree"
	"github.com/validtree/validtree/pkg/rules"
)

// optionalMarker tags Value implementations whose absence is never a
// violation, so schema generation can leave them out of the required list.
type optionalMarker interface {
	optionalValue()
}

// schemaProvider is the optional capability a Validatable type can expose to
// contribute its own schema fragment to a parent's generated schema.
type schemaProvider interface {
	JSONSchema() map[string]any
}

// Scalar composes constraints over a single plain value. All constraints run
// in declaration order and every failure is collected into one NewType node.
func Scalar[V any](cs ...rules.Constraint[V]) Value[V] {
	return scalarValue[V]{constraints: cs}
}

type scalarValue[V any] struct {
	constraints []rules.Constraint[V]
}

func (s scalarValue[V]) Validate(v V) *errtree.Errors {
	failures := rules.Apply(v, s.constraints...)
	if len(failures) == 0 {
		return nil
	}
	return errtree.NewTypeErrors(failures...)
}

func (s scalarValue[V]) Schema() map[string]any {
	node := make(map[string]any)
	if t := jsonType(reflect.TypeOf((*V)(nil)).Elem()); t != "" {
		node["type"] = t
	}
	mergeConstraintParams(node, s.constraints)
	return node
}

// Nested composes constraints over a value that is itself validatable. The
// field's own constraints run first, then validation is delegated to the
// value; the delegate's whole-value tree is embedded as a single child, with
// any direct failures prepended — nesting composes by containment, never by
// flattening.
func Nested[V Validatable](cs ...rules.Constraint[V]) Value[V] {
	return nestedValue[V]{constraints: cs}
}

type nestedValue[V Validatable] struct {
	constraints []rules.Constraint[V]
}

func (n nestedValue[V]) Validate(v V) *errtree.Errors {
	direct := rules.Apply(v, n.constraints...)

	var child *errtree.Errors
	if err := v.Validate(); err != nil {
		if !errors.As(err, &child) {
			// A Validatable that reports a plain error instead of a tree
			// still surfaces as a single leaf.
			child = errtree.NewTypeErrors(&errtree.Error{
				Rule:    "custom",
				Message: err.Error(),
				Key:     "validation.custom",
				Params:  map[string]any{"message": err.Error()},
			})
		}
	}

	if child == nil {
		if len(direct) == 0 {
			return nil
		}
		return errtree.NewTypeErrors(direct...)
	}
	child.PrependDirect(direct...)
	return child
}

func (n nestedValue[V]) Schema() map[string]any {
	var zero V
	if p, ok := any(zero).(schemaProvider); ok && !isNil(zero) {
		node := p.JSONSchema()
		mergeConstraintParams(node, n.constraints)
		return node
	}
	node := map[string]any{"type": "object"}
	mergeConstraintParams(node, n.constraints)
	return node
}

// Optional wraps a value validator for a pointer field: a nil pointer skips
// every constraint and any nested delegation. Absence is never a violation.
func Optional[V any](inner Value[V]) Value[*V] {
	return optionalWrap[V]{inner: inner}
}

type optionalWrap[V any] struct {
	inner Value[V]
}

func (optionalWrap[V]) optionalValue() {}

func (o optionalWrap[V]) Validate(v *V) *errtree.Errors {
	if v == nil {
		return nil
	}
	return o.inner.Validate(*v)
}

func (o optionalWrap[V]) Schema() map[string]any { return o.inner.Schema() }

// Each composes collection validation: whole-slice constraints (length,
// uniqueness) run first against the collection itself, then every element is
// validated independently through elem and merged into an index-keyed map.
// Pass a nil elem to validate only the collection. Composition is closed
// under nesting — Each(Optional(Nested(...))) is a valid element validator.
func Each[E any](elem Value[E], whole ...rules.Constraint[[]E]) Value[[]E] {
	return eachValue[E]{elem: elem, whole: whole}
}

// Slice composes only whole-collection constraints, with no per-element
// validation. Shorthand for Each[E](nil, whole...).
func Slice[E any](whole ...rules.Constraint[[]E]) Value[[]E] {
	return eachValue[E]{whole: whole}
}

type eachValue[E any] struct {
	whole []rules.Constraint[[]E]
	elem  Value[E]
}

func (e eachValue[E]) Validate(v []E) *errtree.Errors {
	node := errtree.ArrayErrors(rules.Apply(v, e.whole...)...)
	if e.elem != nil {
		for i, item := range v {
			node.SetItem(i, e.elem.Validate(item))
		}
	}
	return node.OrNil()
}

func (e eachValue[E]) Schema() map[string]any {
	node := map[string]any{"type": "array"}
	mergeConstraintParams(node, e.whole)
	if e.elem != nil {
		node["items"] = e.elem.Schema()
	}
	return node
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Invalid:
		return true
	default:
		return false
	}
}
