package rules

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// MinLength validates that a string is at least min characters long.
// Lengths count Unicode code points, not bytes.
func MinLength(min int) Constraint[string] {
	return define(
		"minLength",
		map[string]any{"minLength": min},
		fmt.Sprintf("the length of the value must be >= %v.", min),
		func(v string) bool { return utf8.RuneCountInString(v) >= min },
	)
}

// MaxLength validates that a string is at most max characters long.
// Lengths count Unicode code points, not bytes.
func MaxLength(max int) Constraint[string] {
	return define(
		"maxLength",
		map[string]any{"maxLength": max},
		fmt.Sprintf("the length of the value must be <= %v.", max),
		func(v string) bool { return utf8.RuneCountInString(v) <= max },
	)
}

// Pattern validates a string against a regular expression. The expression is
// compiled once at declaration time and matched against the whole string:
// the pattern is wrapped in \A(?:...)\z, so "ab+" rejects "xabby". Patterns
// that anchor themselves remain valid inside the wrapper. Panics at
// declaration time on an invalid expression.
func Pattern(pattern string) Constraint[string] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)\z`)
	return define(
		"pattern",
		map[string]any{"pattern": pattern},
		fmt.Sprintf("the value must match the pattern of %q.", pattern),
		re.MatchString,
	)
}
