package validtree

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/validtree/validtree/pkg/errtree"
	"github.com/validtree/validtree/pkg/logger"
	"github.com/validtree/validtree/pkg/schema"
	"github.com/validtree/validtree/pkg/validator"
)

// Option configures one pipeline invocation.
type Option func(*options)

type options struct {
	cache  *schema.Cache
	logger *slog.Logger
}

// WithSchemaCache enables schema pre-validation of JSON payloads. The decoded
// generic value is checked against the type's generated schema before
// binding, so structural mistakes are reported with instance paths instead of
// decoder diagnostics. The cache compiles each type's schema once.
func WithSchemaCache(cache *schema.Cache) Option {
	return func(o *options) { o.cache = cache }
}

// WithLogger sets the logger for pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FromJSON decodes, optionally schema-checks, binds, and validates a JSON
// payload against a type validator. On success it returns the bound value;
// every failure is a *Error whose Kind names the rejecting stage.
func FromJSON[T any](data []byte, tv *validator.TypeValidator[T], opts ...Option) (*T, error) {
	o := applyOptions(opts)

	schemaChecked := false
	if o.cache != nil {
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, &Error{Kind: KindDecode, Cause: err}
		}
		if err := preCheck(&o, tv, generic); err != nil {
			return nil, err
		}
		schemaChecked = true
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		if schemaChecked {
			// The generated schema accepted a shape the target type
			// rejects. That is a schema generation bug, not bad input.
			o.logger.Error("schema validation passed but decode failed",
				logger.TypeName(tv.TypeName()), logger.Error(err))
			return nil, &Error{Kind: KindBind, Cause: err}
		}
		return nil, &Error{Kind: KindDecode, Cause: err}
	}

	return validate(&out, tv)
}

// FromJSONValue runs the pipeline on an already-decoded generic value, as
// produced by json.Unmarshal into any. Used when the payload was decoded
// upstream, e.g. pulled out of a larger envelope.
func FromJSONValue[T any](value any, tv *validator.TypeValidator[T], opts ...Option) (*T, error) {
	o := applyOptions(opts)

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Cause: err}
	}

	schemaChecked := false
	if o.cache != nil {
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return nil, &Error{Kind: KindDecode, Cause: err}
		}
		if err := preCheck(&o, tv, generic); err != nil {
			return nil, err
		}
		schemaChecked = true
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		if schemaChecked {
			o.logger.Error("schema validation passed but decode failed",
				logger.TypeName(tv.TypeName()), logger.Error(err))
			return nil, &Error{Kind: KindBind, Cause: err}
		}
		return nil, &Error{Kind: KindDecode, Cause: err}
	}

	return validate(&out, tv)
}

// FromYAML decodes a YAML payload and validates it. YAML payloads skip
// schema pre-validation; rule validation reports the same error tree either
// way. WithLogger is honored, WithSchemaCache is ignored.
func FromYAML[T any](data []byte, tv *validator.TypeValidator[T], opts ...Option) (*T, error) {
	o := applyOptions(opts)

	var out T
	if err := yaml.Unmarshal(data, &out); err != nil {
		o.logger.Debug("payload rejected at decode",
			logger.TypeName(tv.TypeName()), logger.Error(err))
		return nil, &Error{Kind: KindDecode, Cause: err}
	}
	return validate(&out, tv)
}

// FromTOML decodes a TOML payload and validates it. Like YAML, TOML skips
// schema pre-validation; WithLogger is honored.
func FromTOML[T any](data []byte, tv *validator.TypeValidator[T], opts ...Option) (*T, error) {
	o := applyOptions(opts)

	var out T
	if err := toml.Unmarshal(data, &out); err != nil {
		o.logger.Debug("payload rejected at decode",
			logger.TypeName(tv.TypeName()), logger.Error(err))
		return nil, &Error{Kind: KindDecode, Cause: err}
	}
	return validate(&out, tv)
}

func preCheck[T any](o *options, tv *validator.TypeValidator[T], generic any) error {
	sch, err := o.cache.Compile(tv.TypeName(), tv.Schema())
	if err != nil {
		// A schema that cannot compile is a bug in the validator
		// declaration. Surface it as-is instead of blaming the payload.
		return err
	}
	if violations := schema.Check(sch, generic); len(violations) > 0 {
		return &Error{Kind: KindSchema, Violations: violations}
	}
	return nil
}

func validate[T any](v *T, tv *validator.TypeValidator[T]) (*T, error) {
	if err := tv.Validate(v); err != nil {
		var tree *errtree.Errors
		if errors.As(err, &tree) {
			return nil, &Error{Kind: KindValidation, Tree: tree}
		}
		return nil, &Error{Kind: KindValidation, Tree: errtree.NewTypeErrors(&errtree.Error{
			Rule:    "custom",
			Message: err.Error(),
			Key:     "validation.custom",
			Params:  map[string]any{"message": err.Error()},
		})}
	}
	return v, nil
}
