package rules

import "fmt"

// MinItems validates that a slice has at least min elements.
func MinItems[E any](min int) Constraint[[]E] {
	return define(
		"minItems",
		map[string]any{"minItems": min},
		fmt.Sprintf("the length of the items must be >= %v.", min),
		func(v []E) bool { return len(v) >= min },
	)
}

// MaxItems validates that a slice has at most max elements.
func MaxItems[E any](max int) Constraint[[]E] {
	return define(
		"maxItems",
		map[string]any{"maxItems": max},
		fmt.Sprintf("the length of the items must be <= %v.", max),
		func(v []E) bool { return len(v) <= max },
	)
}

// UniqueItems validates that no two elements of a slice compare equal.
// It fails on the first duplicate found and reports nothing else.
func UniqueItems[E comparable]() Constraint[[]E] {
	return define(
		"uniqueItems",
		map[string]any{"uniqueItems": true},
		"the items must be unique.",
		func(v []E) bool {
			seen := make(map[E]struct{}, len(v))
			for _, item := range v {
				if _, dup := seen[item]; dup {
					return false
				}
				seen[item] = struct{}{}
			}
			return true
		},
	)
}

// MinProperties validates that a map has at least min entries.
func MinProperties[K comparable, V any](min int) Constraint[map[K]V] {
	return define(
		"minProperties",
		map[string]any{"minProperties": min},
		fmt.Sprintf("the size of the properties must be >= %v.", min),
		func(v map[K]V) bool { return len(v) >= min },
	)
}

// MaxProperties validates that a map has at most max entries.
func MaxProperties[K comparable, V any](max int) Constraint[map[K]V] {
	return define(
		"maxProperties",
		map[string]any{"maxProperties": max},
		fmt.Sprintf("the size of the properties must be <= %v.", max),
		func(v map[K]V) bool { return len(v) <= max },
	)
}
