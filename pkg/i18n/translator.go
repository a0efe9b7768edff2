package i18n

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"sync"
)

// DefaultLanguage is used when no language is negotiated.
const DefaultLanguage = "en"

// Catalog maps language codes to message templates keyed by message id.
type Catalog map[string]map[string]string

// Source loads a catalog from some backing store.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// Translator resolves message ids to localized templates and substitutes
// named parameters. Safe for concurrent use; catalogs are immutable after
// construction.
type Translator struct {
	mu            sync.RWMutex
	catalogs      Catalog
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads the source's catalog and builds a translator over it.
func NewTranslator(ctx context.Context, source Source, options ...Option) (*Translator, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	catalogs, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCatalog(catalogs); err != nil {
		return nil, err
	}

	t.catalogs = catalogs
	t.logger.InfoContext(ctx, "translation catalog loaded", "languages", t.supportedLanguages())
	return t, nil
}

func validateCatalog(c Catalog) error {
	for lang, templates := range c {
		if lang == "" {
			return ErrInvalidCatalog
		}
		if templates == nil {
			return ErrInvalidCatalog
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the language codes the catalog covers, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation checks whether a template exists for the language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	templates, ok := t.catalogs[lang]
	if !ok {
		return false
	}
	_, ok = templates[key]
	return ok
}

// T resolves a message id for a language and substitutes named parameters
// provided as key-value pairs:
//
//	t.T("en", "validation.minimum", "minimum", "0", "value", "-3")
//
// A missing language or key falls back to the key itself (with substitution
// applied) unless fallback is disabled, in which case T returns "".
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	templates, ok := t.catalogs[lang]
	if !ok {
		if t.logMissing {
			t.logger.Warn("language not in catalog", "lang", lang, "key", key)
		}
		return t.fallback(key, args)
	}

	tmpl, ok := templates[key]
	if !ok {
		if t.logMissing {
			t.logger.Warn("message id not in catalog", "lang", lang, "key", key)
		}
		return t.fallback(key, args)
	}

	return substitute(tmpl, buildParams(args))
}

// Td resolves a message id with an explicit default template used when the
// language or key is missing.
func (t *Translator) Td(lang, key, defaultTemplate string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if templates, ok := t.catalogs[lang]; ok {
		if tmpl, ok := templates[key]; ok {
			return substitute(tmpl, buildParams(args))
		}
	}
	return substitute(defaultTemplate, buildParams(args))
}

func (t *Translator) fallback(key string, args []string) string {
	if t.fallbackToKey {
		return substitute(key, buildParams(args))
	}
	return ""
}

// buildParams pairs up args as key, value, key, value. An odd trailing
// argument is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// placeholderRe matches named parameters in the form %{name}.
var placeholderRe = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, params map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
