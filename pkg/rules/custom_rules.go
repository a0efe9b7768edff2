package rules

import "github.com/validtree/validtree/pkg/errtree"

// Custom adapts a user-supplied predicate into a constraint. The value is
// passed by reference semantics of V itself; fn must not mutate it. A
// returned non-nil error becomes the failure message, tagged with the
// declared name so it stays traceable after translation.
func Custom[V any](name string, fn func(V) error) Constraint[V] {
	return Constraint[V]{
		rule:   "custom",
		params: map[string]any{"name": name},
		check: func(v V) *errtree.Error {
			err := fn(v)
			if err == nil {
				return nil
			}
			return &errtree.Error{
				Rule:    "custom",
				Message: err.Error(),
				Key:     "validation.custom",
				Params:  map[string]any{"name": name, "message": err.Error()},
			}
		},
	}
}
