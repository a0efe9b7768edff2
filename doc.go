// Package validtree is a declarative validation toolkit built around a
// recursive error tree.
//
// Validators are declared once per type from composable constraint rules
// (pkg/rules) and field shapes (pkg/validator). Running a validator collects
// every failure into a tree (pkg/errtree) whose nodes mirror the value's
// structure, so a failure three levels deep keeps its full path. Trees
// serialize to structured JSON, flatten to (path, message) pairs, and
// localize through a message catalog (pkg/i18n).
//
// The root package ties the pieces into a validated-decode pipeline: decode
// a JSON, YAML, or TOML payload, optionally pre-check the decoded value
// against the validator's generated JSON Schema (pkg/schema), bind it to the
// target type, and validate. The binder package adapts the pipeline to HTTP
// request handling.
//
//	v := validator.New[Signup]("Signup",
//		validator.Checks("name", func(s *Signup) string { return s.Name },
//			rules.MinLength(1), rules.MaxLength(64)),
//		validator.Checks("age", func(s *Signup) int { return s.Age },
//			rules.Minimum(0), rules.Maximum(150)),
//	)
//
//	signup, err := validtree.FromJSON(body, v)
//	if pe, ok := validtree.AsError(err); ok {
//		for _, f := range pe.Flatten() {
//			fmt.Println(f.Path, f.Message)
//		}
//	}
package validtree
