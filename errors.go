package validtree

import (
	"errors"
	"fmt"

	"github.com/validtree/validtree/pkg/errtree"
	"github.com/validtree/validtree/pkg/schema"
)

// Kind classifies which pipeline stage rejected the payload.
type Kind int

const (
	// KindDecode means the raw bytes were not parseable in the declared
	// format.
	KindDecode Kind = iota + 1

	// KindSchema means the decoded generic value failed schema
	// pre-validation.
	KindSchema

	// KindBind means schema pre-validation passed but binding the generic
	// value to the target type failed. This signals drift between the
	// generated schema and the type's decode behavior.
	KindBind

	// KindValidation means the bound value failed business-rule validation.
	KindValidation
)

// String names the stage for logs.
func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindSchema:
		return "schema"
	case KindBind:
		return "bind"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the single failure type the decode pipeline returns. Exactly one
// payload field is populated, matching Kind: Cause for decode and bind
// failures, Violations for schema failures, Tree for validation failures.
type Error struct {
	Kind       Kind
	Cause      error
	Violations []schema.Violation
	Tree       *errtree.Errors
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDecode:
		return fmt.Sprintf("decode failed: %v", e.Cause)
	case KindSchema:
		return fmt.Sprintf("schema pre-validation failed with %d violation(s)", len(e.Violations))
	case KindBind:
		return fmt.Sprintf("bind failed after schema pre-validation passed: %v", e.Cause)
	case KindValidation:
		return e.Tree.Error()
	default:
		return "request rejected"
	}
}

// Unwrap exposes the stage cause so errors.Is and errors.As see through the
// pipeline wrapper. Validation failures unwrap to the error tree.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindValidation:
		if e.Tree == nil {
			return nil
		}
		return e.Tree
	default:
		return e.Cause
	}
}

// Flatten renders the failure as ordered (path, message) pairs regardless of
// which stage produced it. Decode and bind failures collapse to a single
// root-path entry.
func (e *Error) Flatten() []errtree.Flat {
	switch e.Kind {
	case KindSchema:
		out := make([]errtree.Flat, 0, len(e.Violations))
		for _, v := range e.Violations {
			out = append(out, errtree.Flat{Path: v.Path, Message: v.Message})
		}
		return out
	case KindValidation:
		return e.Tree.Flatten()
	default:
		return []errtree.Flat{{Path: "", Message: e.Error()}}
	}
}

// AsError extracts a pipeline *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
