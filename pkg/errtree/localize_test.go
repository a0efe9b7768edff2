package errtree_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validtree/validtree/pkg/errtree"
)

// catalogStub resolves keys from a flat map and substitutes %{name} args.
type catalogStub map[string]string

func (c catalogStub) T(lang, key string, args ...string) string {
	tmpl, ok := c[lang+"."+key]
	if !ok {
		return ""
	}
	for i := 0; i+1 < len(args); i += 2 {
		tmpl = strings.ReplaceAll(tmpl, fmt.Sprintf("%%{%s}", args[i]), args[i+1])
	}
	return tmpl
}

func TestErrors_Localize(t *testing.T) {
	t.Parallel()

	catalog := catalogStub{
		"de.validation.maximum": "die Zahl muss <= %{maximum} sein.",
	}

	t.Run("replaces leaf with substituted template", func(t *testing.T) {
		root := errtree.ObjectErrors()
		root.SetProperty("val", errtree.NewTypeErrors(&errtree.Error{
			Rule:    "maximum",
			Message: "the number must be <= 1000.",
			Key:     "validation.maximum",
			Params:  map[string]any{"maximum": 1000, "value": 1234},
		}))

		loc := root.Localize(catalog, "de")
		require.NotNil(t, loc)

		flat := loc.Flatten()
		require.Len(t, flat, 1)
		assert.Equal(t, "/val", flat[0].Path)
		assert.Equal(t, "die Zahl muss <= 1000 sein.", flat[0].Message)
	})

	t.Run("missing catalog entry falls back to the key", func(t *testing.T) {
		root := errtree.NewTypeErrors(&errtree.Error{
			Rule:    "pattern",
			Message: "no match",
			Key:     "validation.pattern",
		})

		loc := root.Localize(catalog, "de")
		require.Len(t, loc.Messages(), 1)
		assert.Equal(t, "validation.pattern", loc.Messages()[0])
	})

	t.Run("preserves shape and ordering", func(t *testing.T) {
		arr := errtree.ArrayErrors(&errtree.Error{Rule: "unique_items", Message: "dup", Key: "validation.unique_items"})
		arr.SetItem(1, errtree.NewTypeErrors(&errtree.Error{Rule: "minimum", Message: "low", Key: "validation.minimum"}))

		root := errtree.ObjectErrors()
		root.SetProperty("tags", arr)
		root.SetProperty("name", errtree.NewTypeErrors(&errtree.Error{Rule: "min_length", Message: "short", Key: "validation.min_length"}))

		loc := root.LocalizeFunc(func(e *errtree.Error) string { return strings.ToUpper(e.Message) })

		assert.Equal(t, errtree.Object, loc.Shape())
		assert.Equal(t, []string{"tags", "name"}, loc.PropertyKeys())
		assert.Equal(t, errtree.Array, loc.Property("tags").Shape())
		assert.Equal(t, []string{"DUP"}, loc.Property("tags").Messages())
		assert.Equal(t, []string{"LOW"}, loc.Property("tags").Item(1).Messages())

		flat := loc.Flatten()
		require.Len(t, flat, 3)
		assert.Equal(t, errtree.Flat{Path: "/tags", Message: "DUP"}, flat[0])
		assert.Equal(t, errtree.Flat{Path: "/tags/1", Message: "LOW"}, flat[1])
		assert.Equal(t, errtree.Flat{Path: "/name", Message: "SHORT"}, flat[2])
	})

	t.Run("localizing a nil tree yields nil", func(t *testing.T) {
		var e *errtree.Errors
		assert.Nil(t, e.LocalizeFunc(func(*errtree.Error) string { return "x" }))
	})

	t.Run("marshals with the same container layout", func(t *testing.T) {
		root := errtree.ObjectErrors()
		root.SetProperty("val", errtree.NewTypeErrors(&errtree.Error{Rule: "maximum", Message: "m", Key: "validation.maximum"}))

		loc := root.LocalizeFunc(func(e *errtree.Error) string { return e.Message })
		b, err := json.Marshal(loc)
		require.NoError(t, err)
		assert.JSONEq(t, `{"properties":{"val":{"errors":["m"]}}}`, string(b))
	})
}
