package rules

import (
	"fmt"
	"slices"
	"strings"
)

// Enumerate validates that a value equals one member of a fixed allowed set.
func Enumerate[V comparable](allowed ...V) Constraint[V] {
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return define(
		"enum",
		map[string]any{"enum": allowed},
		fmt.Sprintf("the value must be in [%s].", strings.Join(parts, ", ")),
		func(v V) bool { return slices.Contains(allowed, v) },
	)
}
