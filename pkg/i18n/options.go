package i18n

import "log/slog"

// Option configures a Translator during construction.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when negotiation fails.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing translation resolves to the
// message id itself. Enabled by default.
func WithFallbackToKey(enabled bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = enabled
	}
}

// WithMissingLog enables warn-level logging of catalog misses.
func WithMissingLog() Option {
	return func(t *Translator) {
		t.logMissing = true
	}
}

// WithLogger sets the logger used for catalog diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}
