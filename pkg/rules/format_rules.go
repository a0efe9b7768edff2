package rules

import "github.com/google/uuid"

// UUID validates standard UUID format with pre-validation to avoid
// expensive parsing.
func UUID() Constraint[string] {
	return define(
		"format",
		map[string]any{"format": "uuid"},
		"the value must be a valid UUID.",
		func(v string) bool {
			// Fast rejection: check length and hyphen positions before parsing
			if len(v) != 36 {
				return false
			}
			if v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
				return false
			}
			_, err := uuid.Parse(v)
			return err == nil
		},
	)
}
