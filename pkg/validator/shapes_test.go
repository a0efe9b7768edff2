package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validtree/validtree/pkg/errtree"
	"github.com/validtree/validtree/pkg/rules"
	"github.com/validtree/validtree/pkg/validator"
)

type tagged struct {
	Items []string `json:"items"`
}

var taggedValidator = validator.New[tagged]("Tagged",
	validator.Field("items", func(t *tagged) []string { return t.Items },
		validator.Each(
			validator.Scalar(rules.MinLength(1)),
			rules.UniqueItems[string](),
		),
	),
)

func TestEach(t *testing.T) {
	t.Parallel()

	t.Run("duplicate elements fail uniqueness only", func(t *testing.T) {
		// Each element independently satisfies min length; only the
		// whole-collection uniqueness rule may fire.
		tree := taggedValidator.ValidateTree(&tagged{Items: []string{"a", "a"}})
		require.NotNil(t, tree)

		items := tree.Property("items")
		require.NotNil(t, items)
		assert.Equal(t, errtree.Array, items.Shape())
		require.Len(t, items.Direct(), 1)
		assert.Equal(t, "uniqueItems", items.Direct()[0].Rule)
		assert.Empty(t, items.ItemIndexes())
	})

	t.Run("element failures key by zero-based index", func(t *testing.T) {
		tree := taggedValidator.ValidateTree(&tagged{Items: []string{"ok", "", ""}})
		require.NotNil(t, tree)

		items := tree.Property("items")
		require.NotNil(t, items)
		assert.Empty(t, items.Direct())
		assert.Equal(t, []int{1, 2}, items.ItemIndexes())

		flat := tree.Flatten()
		require.Len(t, flat, 2)
		assert.Equal(t, "/items/1", flat[0].Path)
		assert.Equal(t, "/items/2", flat[1].Path)
	})

	t.Run("collection and element failures coexist", func(t *testing.T) {
		tree := taggedValidator.ValidateTree(&tagged{Items: []string{"", ""}})
		require.NotNil(t, tree)

		items := tree.Property("items")
		require.Len(t, items.Direct(), 1)
		assert.Equal(t, []int{0, 1}, items.ItemIndexes())

		flat := tree.Flatten()
		require.Len(t, flat, 3)
		assert.Equal(t, "/items", flat[0].Path)
	})

	t.Run("clean collection yields nil", func(t *testing.T) {
		assert.Nil(t, taggedValidator.ValidateTree(&tagged{Items: []string{"a", "b"}}))
	})
}

func TestSlice(t *testing.T) {
	t.Parallel()

	tv := validator.New[tagged]("Tagged",
		validator.Field("items", func(t *tagged) []string { return t.Items },
			validator.Slice(rules.MinItems[string](1)),
		),
	)

	tree := tv.ValidateTree(&tagged{})
	require.NotNil(t, tree)
	require.Len(t, tree.Property("items").Direct(), 1)
	assert.Equal(t, "minItems", tree.Property("items").Direct()[0].Rule)
}

type withOptional struct {
	Nick *string `json:"nick"`
}

func TestOptional(t *testing.T) {
	t.Parallel()

	tv := validator.New[withOptional]("WithOptional",
		validator.Field("nick", func(w *withOptional) *string { return w.Nick },
			validator.Optional(validator.Scalar(rules.MinLength(3))),
		),
	)

	t.Run("absent value skips all constraints", func(t *testing.T) {
		assert.NoError(t, tv.Validate(&withOptional{}))
	})

	t.Run("present value is validated", func(t *testing.T) {
		nick := "ab"
		tree := tv.ValidateTree(&withOptional{Nick: &nick})
		require.NotNil(t, tree)

		flat := tree.Flatten()
		require.Len(t, flat, 1)
		assert.Equal(t, "/nick", flat[0].Path)
	})
}

type address struct {
	City string `json:"city"`
}

var addressValidator = validator.New[address]("Address",
	validator.Checks("city", func(a *address) string { return a.City },
		rules.MinLength(1),
	),
)

func (a address) Validate() error { return addressValidator.Validate(&a) }

type customer struct {
	Home address `json:"home"`
}

func TestNested(t *testing.T) {
	t.Parallel()

	tv := validator.New[customer]("Customer",
		validator.Field("home", func(c *customer) address { return c.Home },
			validator.Nested[address](),
		),
	)

	t.Run("delegate result embeds by containment", func(t *testing.T) {
		tree := tv.ValidateTree(&customer{})
		require.NotNil(t, tree)

		home := tree.Property("home")
		require.NotNil(t, home)
		assert.Equal(t, errtree.Object, home.Shape())
		require.NotNil(t, home.Property("city"))

		flat := tree.Flatten()
		require.Len(t, flat, 1)
		assert.Equal(t, "/home/city", flat[0].Path)
	})

	t.Run("clean nested value yields nil", func(t *testing.T) {
		assert.NoError(t, tv.Validate(&customer{Home: address{City: "Berlin"}}))
	})

	t.Run("direct constraints precede the embedded tree", func(t *testing.T) {
		nonEmptyHome := rules.Custom("home_known", func(a address) error {
			return assert.AnError
		})
		tv := validator.New[customer]("Customer",
			validator.Field("home", func(c *customer) address { return c.Home },
				validator.Nested[address](nonEmptyHome),
			),
		)

		home := tv.ValidateTree(&customer{}).Property("home")
		require.NotNil(t, home)
		require.NotEmpty(t, home.Direct())
		assert.Equal(t, "custom", home.Direct()[0].Rule)
		require.NotNil(t, home.Property("city"), "delegate tree is preserved")
	})
}

type roster struct {
	Members []*address `json:"members"`
}

func TestShapeComposition(t *testing.T) {
	t.Parallel()

	// Array of optional nested values: nil entries are skipped, present
	// entries delegate to their own validator.
	tv := validator.New[roster]("Roster",
		validator.Field("members", func(r *roster) []*address { return r.Members },
			validator.Each(
				validator.Optional(validator.Nested[address]()),
				rules.MinItems[*address](1),
			),
		),
	)

	t.Run("nil elements are not violations", func(t *testing.T) {
		bad := &address{}
		tree := tv.ValidateTree(&roster{Members: []*address{nil, bad}})
		require.NotNil(t, tree)

		members := tree.Property("members")
		require.NotNil(t, members)
		assert.Equal(t, []int{1}, members.ItemIndexes())

		flat := tree.Flatten()
		require.Len(t, flat, 1)
		assert.Equal(t, "/members/1/city", flat[0].Path)
	})

	t.Run("empty roster violates the collection rule only", func(t *testing.T) {
		tree := tv.ValidateTree(&roster{})
		require.NotNil(t, tree)

		flat := tree.Flatten()
		require.Len(t, flat, 1)
		assert.Equal(t, "/members", flat[0].Path)
	})
}
