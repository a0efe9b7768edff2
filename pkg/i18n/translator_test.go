package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validtree/validtree/pkg/i18n"
)

func newTranslator(t *testing.T, catalog i18n.Catalog, options ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.NewStaticSource(catalog), options...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil source is rejected", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilSource)
	})

	t.Run("empty language code is rejected", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), i18n.NewStaticSource(i18n.Catalog{
			"": {"k": "v"},
		}))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("nil template map is rejected", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), i18n.NewStaticSource(i18n.Catalog{
			"en": nil,
		}))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("supported languages are sorted", func(t *testing.T) {
		tr := newTranslator(t, i18n.Catalog{
			"fr": {}, "de": {}, "en": {},
		})
		assert.Equal(t, []string{"de", "en", "fr"}, tr.SupportedLanguages())
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	catalog := i18n.Catalog{
		"en": {
			"validation.minimum": "the number must be >= %{minimum}.",
			"greeting":           "hello, %{name}!",
		},
		"de": {
			"validation.minimum": "die Zahl muss >= %{minimum} sein.",
		},
	}

	t.Run("substitutes named parameters", func(t *testing.T) {
		tr := newTranslator(t, catalog)
		got := tr.T("en", "validation.minimum", "minimum", "0", "value", "-3")
		assert.Equal(t, "the number must be >= 0.", got)
	})

	t.Run("selects language catalog", func(t *testing.T) {
		tr := newTranslator(t, catalog)
		got := tr.T("de", "validation.minimum", "minimum", "18")
		assert.Equal(t, "die Zahl muss >= 18 sein.", got)
	})

	t.Run("missing key falls back to the key", func(t *testing.T) {
		tr := newTranslator(t, catalog)
		assert.Equal(t, "validation.maximum", tr.T("en", "validation.maximum", "maximum", "9"))
	})

	t.Run("missing language falls back to the key", func(t *testing.T) {
		tr := newTranslator(t, catalog)
		assert.Equal(t, "greeting", tr.T("pt", "greeting", "name", "ana"))
	})

	t.Run("fallback can be disabled", func(t *testing.T) {
		tr := newTranslator(t, catalog, i18n.WithFallbackToKey(false))
		assert.Equal(t, "", tr.T("en", "nope"))
	})

	t.Run("unresolved placeholders stay intact", func(t *testing.T) {
		tr := newTranslator(t, catalog)
		assert.Equal(t, "hello, %{name}!", tr.T("en", "greeting"))
	})

	t.Run("odd trailing arg is ignored", func(t *testing.T) {
		tr := newTranslator(t, catalog)
		got := tr.T("en", "greeting", "name", "bo", "dangling")
		assert.Equal(t, "hello, bo!", got)
	})
}

func TestTranslator_Td(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t, i18n.Catalog{"en": {"known": "found"}})

	t.Run("uses catalog when present", func(t *testing.T) {
		assert.Equal(t, "found", tr.Td("en", "known", "default"))
	})

	t.Run("uses default template when missing", func(t *testing.T) {
		got := tr.Td("en", "unknown", "fallback for %{who}", "who", "tests")
		assert.Equal(t, "fallback for tests", got)
	})
}

func TestSources(t *testing.T) {
	t.Parallel()

	t.Run("json source", func(t *testing.T) {
		src := i18n.NewJSONSource([]byte(`{"en":{"k":"v %{x}"}}`))
		catalog, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "v %{x}", catalog["en"]["k"])
	})

	t.Run("json source rejects malformed bytes", func(t *testing.T) {
		src := i18n.NewJSONSource([]byte(`{`))
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseCatalog)
	})

	t.Run("yaml source", func(t *testing.T) {
		src := i18n.NewYAMLSource([]byte("en:\n  k: v\nde:\n  k: w\n"))
		catalog, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "v", catalog["en"]["k"])
		assert.Equal(t, "w", catalog["de"]["k"])
	})

	t.Run("yaml source rejects malformed bytes", func(t *testing.T) {
		src := i18n.NewYAMLSource([]byte("en: [broken"))
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseCatalog)
	})
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t, i18n.DefaultCatalog())

	t.Run("covers built-in rule ids", func(t *testing.T) {
		for _, key := range []string{
			"validation.minimum", "validation.maximum",
			"validation.exclusiveMinimum", "validation.exclusiveMaximum",
			"validation.multipleOf",
			"validation.minLength", "validation.maxLength", "validation.pattern",
			"validation.minItems", "validation.maxItems", "validation.uniqueItems",
			"validation.minProperties", "validation.maxProperties",
			"validation.enum", "validation.format", "validation.custom",
		} {
			assert.True(t, tr.HasTranslation("en", key), "missing template for %s", key)
		}
	})

	t.Run("renders rule parameters", func(t *testing.T) {
		got := tr.T("en", "validation.maximum", "maximum", "1000", "value", "1234")
		assert.Equal(t, "the number must be <= 1000.", got)
	})
}
