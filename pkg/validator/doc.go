// Package validator compiles declarative constraint tables into immutable
// validator graphs: constraint primitives from pkg/rules are bound to fields
// with shape-aware wrapping, fields are aggregated into a per-type validator,
// and a validation run produces a shaped errtree mirroring the instance.
//
// # Building a validator
//
// A validator is declared once, typically in a package-level variable, and
// reused for every instance of the type:
//
//	type Profile struct {
//		Val  int      `json:"val"`
//		Tags []string `json:"tags"`
//	}
//
//	var profileValidator = validator.New[Profile]("Profile",
//		validator.Checks("val", func(p *Profile) int { return p.Val },
//			rules.Minimum(0),
//			rules.Maximum(1000),
//		),
//		validator.Field("tags", func(p *Profile) []string { return p.Tags },
//			validator.Each(
//				validator.Scalar(rules.MinLength(1)),
//				rules.UniqueItems[string](),
//			),
//		),
//	)
//
//	func (p Profile) Validate() error { return profileValidator.Validate(&p) }
//
// Field names are wire names (the json tag), not Go identifiers; error paths
// and generated schema properties use them verbatim.
//
// # Shape composition
//
// Value validators compose and close under nesting:
//
//	validator.Scalar(cs...)              // plain value
//	validator.Optional(inner)            // *V, nil skips everything
//	validator.Each(elem, whole...)       // []E, collection rules then per-element
//	validator.Nested[V](cs...)           // V validates itself, result embedded
//
// An array of optional nested values is Each(Optional(Nested[...]())).
//
// # Concurrency
//
// Compiled validators hold no mutable state. One TypeValidator may serve any
// number of concurrent Validate calls; each call builds a fresh error tree.
package validator
