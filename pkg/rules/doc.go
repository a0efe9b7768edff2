// Package rules provides the constraint primitives of the validation system:
// pure, stateless, generically typed predicates over an already-typed value
// and one or more constant parameters.
//
// Each source file groups a family of rules for one domain
// (numeric_rules.go, string_rules.go, collection_rules.go, ...). Every
// exported function returns an immutable Constraint built once per declared
// field; checking never mutates the constraint, so a compiled constraint is
// safe to share across concurrent validation runs without synchronization.
//
// A failing check produces a single errtree.Error leaf carrying the rule
// name, a rendered English message, a translation key derived from the rule
// name, and the constant parameters plus the offending value — everything a
// message catalog needs to re-render the failure in another language.
//
// Fixed semantics worth knowing:
//   - MinLength/MaxLength count Unicode code points, not bytes.
//   - Pattern compiles once and matches the whole string.
//   - MultipleOf on integers is exact; MultipleOfFloat accepts a relative
//     tolerance of 1e-9 because float remainders are approximate.
//   - UniqueItems reports the first duplicate and nothing else.
//
// # Usage
//
//	failures := rules.Apply(age,
//		rules.Minimum(0),
//		rules.Maximum(150),
//	)
//
// Apply never short-circuits: a value violating several constraints reports
// every violation in declaration order.
package rules
