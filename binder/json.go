package binder

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/validtree/validtree"
	"github.com/validtree/validtree/pkg/i18n"
	"github.com/validtree/validtree/pkg/logger"
	"github.com/validtree/validtree/pkg/schema"
	"github.com/validtree/validtree/pkg/validator"
)

// Binder binds and validates JSON request bodies against one type validator.
// Construct once per request type and share across handlers; it is immutable
// after construction.
type Binder[T any] struct {
	tv           *validator.TypeValidator[T]
	maxBodyBytes int64
	defaultLang  string
	pipelineOpts []validtree.Option
	translator   *i18n.Translator
	matcher      *i18n.Matcher
	logger       *slog.Logger
}

// Option configures a Binder.
type Option[T any] func(*Binder[T])

// WithMaxBodyBytes overrides the body size cap.
func WithMaxBodyBytes[T any](n int64) Option[T] {
	return func(b *Binder[T]) {
		if n > 0 {
			b.maxBodyBytes = n
		}
	}
}

// WithSchemaCache enables schema pre-validation of request bodies.
func WithSchemaCache[T any](cache *schema.Cache) Option[T] {
	return func(b *Binder[T]) {
		b.pipelineOpts = append(b.pipelineOpts, validtree.WithSchemaCache(cache))
	}
}

// WithTranslator enables per-request localization of validation messages.
// Languages are negotiated from Accept-Language against the translator's
// catalog; negotiation failure falls back to the binder's configured default
// language.
func WithTranslator[T any](tr *i18n.Translator) Option[T] {
	return func(b *Binder[T]) {
		b.translator = tr
	}
}

// WithLogger sets the logger for bind diagnostics.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(b *Binder[T]) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New builds a binder for one request type using environment configuration,
// falling back to defaults if the environment cannot be parsed.
func New[T any](tv *validator.TypeValidator[T], options ...Option[T]) *Binder[T] {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = Config{MaxBodyBytes: 1 << 20, DefaultLanguage: i18n.DefaultLanguage}
	}

	b := &Binder[T]{
		tv:           tv,
		maxBodyBytes: cfg.MaxBodyBytes,
		defaultLang:  cfg.DefaultLanguage,
		logger:       logger.Discard(),
	}
	for _, option := range options {
		option(b)
	}
	if b.translator != nil {
		lang := b.defaultLang
		if lang == "" {
			lang = b.translator.DefaultLanguage()
		}
		b.matcher = i18n.NewMatcher(b.translator.SupportedLanguages(), lang)
	}
	b.pipelineOpts = append(b.pipelineOpts, validtree.WithLogger(b.logger))
	return b
}

// Bind decodes, pre-checks, binds, and validates the request body. Every
// rejection is a *validtree.Error; pass it to WriteError to render the
// response.
func (b *Binder[T]) Bind(w http.ResponseWriter, r *http.Request) (*T, error) {
	if err := checkMediaType(r); err != nil {
		return nil, &validtree.Error{Kind: validtree.KindDecode, Cause: err}
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, b.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			err = fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, maxErr.Limit)
		}
		return nil, &validtree.Error{Kind: validtree.KindDecode, Cause: err}
	}
	if len(body) == 0 {
		return nil, &validtree.Error{Kind: validtree.KindDecode, Cause: ErrEmptyBody}
	}

	return validtree.FromJSON(body, b.tv, b.pipelineOpts...)
}

func checkMediaType(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}
	return nil
}

// Handle wraps a typed handler into an http.HandlerFunc: the request body is
// bound through the binder, failures are written as error responses, and the
// handler only ever sees a valid value.
func Handle[T any](b *Binder[T], fn func(w http.ResponseWriter, r *http.Request, v *T)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := b.Bind(w, r)
		if err != nil {
			b.WriteError(w, r, err)
			return
		}
		fn(w, r, v)
	}
}
