// Package schema wraps the JSON-Schema compiler behind the pre-validation
// contract the decode pipeline consumes: compile a generated schema document
// once per declared type, cache the compiled form, and flatten any check
// failure into (path, message) violations.
//
// Schema pre-validation runs against the decoded generic value before the
// value is bound to a concrete type, so structural problems (wrong types,
// missing members) are reported with precise instance locations instead of
// leaking decoder diagnostics.
package schema
