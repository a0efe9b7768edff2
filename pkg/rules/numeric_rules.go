package rules

import (
	"fmt"
	"math"
)

// Minimum validates that a number is greater than or equal to the bound.
func Minimum[V Numeric](min V) Constraint[V] {
	return define(
		"minimum",
		map[string]any{"minimum": min},
		fmt.Sprintf("the number must be >= %v.", min),
		func(v V) bool { return v >= min },
	)
}

// Maximum validates that a number is less than or equal to the bound.
func Maximum[V Numeric](max V) Constraint[V] {
	return define(
		"maximum",
		map[string]any{"maximum": max},
		fmt.Sprintf("the number must be <= %v.", max),
		func(v V) bool { return v <= max },
	)
}

// ExclusiveMinimum validates that a number is strictly greater than the bound.
func ExclusiveMinimum[V Numeric](min V) Constraint[V] {
	return define(
		"exclusiveMinimum",
		map[string]any{"exclusiveMinimum": min},
		fmt.Sprintf("the number must be > %v.", min),
		func(v V) bool { return v > min },
	)
}

// ExclusiveMaximum validates that a number is strictly less than the bound.
func ExclusiveMaximum[V Numeric](max V) Constraint[V] {
	return define(
		"exclusiveMaximum",
		map[string]any{"exclusiveMaximum": max},
		fmt.Sprintf("the number must be < %v.", max),
		func(v V) bool { return v < max },
	)
}

// MultipleOf validates that an integer is an exact multiple of the divisor.
// Panics at declaration time if the divisor is zero.
func MultipleOf[V Integer](divisor V) Constraint[V] {
	if divisor == 0 {
		panic("rules: MultipleOf divisor must not be zero")
	}
	return define(
		"multipleOf",
		map[string]any{"multipleOf": divisor},
		fmt.Sprintf("the value must be multiple of %v.", divisor),
		func(v V) bool { return v%divisor == 0 },
	)
}

// floatMultipleTolerance bounds the relative error accepted by
// MultipleOfFloat. Remainder-of-division on binary floats is approximate,
// so exact equality would reject values like 0.3 % 0.1.
const floatMultipleTolerance = 1e-9

// MultipleOfFloat validates that a float is a multiple of the divisor within
// a relative tolerance of 1e-9, scaled by the magnitude of the value.
// Panics at declaration time if the divisor is zero.
func MultipleOfFloat[V Float](divisor V) Constraint[V] {
	if divisor == 0 {
		panic("rules: MultipleOfFloat divisor must not be zero")
	}
	d := math.Abs(float64(divisor))
	return define(
		"multipleOf",
		map[string]any{"multipleOf": divisor},
		fmt.Sprintf("the value must be multiple of %v.", divisor),
		func(v V) bool {
			r := math.Abs(math.Mod(float64(v), d))
			tol := floatMultipleTolerance * math.Max(1, math.Abs(float64(v)))
			return r <= tol || d-r <= tol
		},
	)
}
