package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validtree/validtree/pkg/rules"
)

func TestMinLength(t *testing.T) {
	t.Parallel()

	c := rules.MinLength(3)

	t.Run("accepts the boundary", func(t *testing.T) {
		assert.Nil(t, c.Check("abc"))
	})

	t.Run("rejects shorter strings", func(t *testing.T) {
		err := c.Check("ab")
		require.NotNil(t, err)
		assert.Equal(t, "minLength", err.Rule)
		assert.Equal(t, "the length of the value must be >= 3.", err.Message)
	})

	t.Run("counts code points not bytes", func(t *testing.T) {
		// three runes, nine bytes
		assert.Nil(t, c.Check("日本語"))
	})
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	c := rules.MaxLength(3)

	t.Run("accepts the boundary", func(t *testing.T) {
		assert.Nil(t, c.Check("abc"))
	})

	t.Run("counts code points not bytes", func(t *testing.T) {
		assert.Nil(t, c.Check("日本語"))
		assert.NotNil(t, c.Check("日本語!"))
	})
}

func TestPattern(t *testing.T) {
	t.Parallel()

	t.Run("matches the whole string", func(t *testing.T) {
		c := rules.Pattern(`ab+`)
		assert.Nil(t, c.Check("abb"))
		assert.NotNil(t, c.Check("xabby"), "unanchored substring match must not pass")
	})

	t.Run("self-anchored patterns stay valid", func(t *testing.T) {
		c := rules.Pattern(`^[a-z]+$`)
		assert.Nil(t, c.Check("abc"))
		assert.NotNil(t, c.Check("Abc"))
	})

	t.Run("failure carries the original pattern", func(t *testing.T) {
		c := rules.Pattern(`\d+`)
		err := c.Check("abc")
		require.NotNil(t, err)
		assert.Equal(t, "pattern", err.Rule)
		assert.Equal(t, `\d+`, err.Params["pattern"])
		assert.Equal(t, `the value must match the pattern of "\d+".`, err.Message)
	})

	t.Run("panics on invalid expression", func(t *testing.T) {
		assert.Panics(t, func() { rules.Pattern(`(unclosed`) })
	})
}
