package rules

import (
	"maps"

	"github.com/validtree/validtree/pkg/errtree"
)

// Numeric covers every built-in numeric type, including named types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer covers the integer subset of Numeric.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float covers the floating-point subset of Numeric.
type Float interface {
	~float32 | ~float64
}

// Constraint is one declared rule over a value of type V: an immutable pair
// of rule name and constant parameters plus the compiled check. Constraints
// are built once per declared field and are safe for concurrent use.
//
// Rule names and parameter keys follow JSON Schema keyword spelling
// ("minimum", "minLength", "uniqueItems", ...), which lets schema generation
// merge parameters into a schema document verbatim and keeps translation
// keys ("validation.minimum") derivable from the rule name.
type Constraint[V any] struct {
	rule   string
	params map[string]any
	check  func(V) *errtree.Error
}

// Rule returns the rule name.
func (c Constraint[V]) Rule() string { return c.rule }

// Params returns the declared constant parameters. The map is shared and
// must be treated as read-only.
func (c Constraint[V]) Params() map[string]any { return c.params }

// Check evaluates the value, returning nil on pass or a single failure leaf.
func (c Constraint[V]) Check(v V) *errtree.Error { return c.check(v) }

// define builds a constraint whose failure leaf carries the rule name, the
// declared parameters plus the offending value, and a fixed English message.
func define[V any](rule string, params map[string]any, message string, ok func(V) bool) Constraint[V] {
	key := "validation." + rule
	return Constraint[V]{
		rule:   rule,
		params: params,
		check: func(v V) *errtree.Error {
			if ok(v) {
				return nil
			}
			p := make(map[string]any, len(params)+1)
			maps.Copy(p, params)
			p["value"] = v
			return &errtree.Error{Rule: rule, Message: message, Key: key, Params: p}
		},
	}
}

// Apply runs every constraint in declaration order against one value,
// collecting all failures. There is no short-circuit: a value can violate
// several constraints at once and each violation is reported.
func Apply[V any](v V, constraints ...Constraint[V]) []*errtree.Error {
	var failures []*errtree.Error
	for _, c := range constraints {
		if err := c.Check(v); err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}
