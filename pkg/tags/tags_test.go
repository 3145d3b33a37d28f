package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	defaults := Defaults()
	require.NotEmpty(t, defaults)

	ids := make(map[string]bool)
	for _, tag := range defaults {
		assert.False(t, ids[tag.ID], "duplicate id %s", tag.ID)
		ids[tag.ID] = true
		if tag.ParentID != "" {
			parent, ok := Find(defaults, tag.ParentID)
			require.True(t, ok, "parent %s missing", tag.ParentID)
			assert.Empty(t, parent.ParentID, "hierarchy deeper than one level")
		}
	}
}

func TestNew(t *testing.T) {
	tag := New("Testing", "FlaskConical", "#22C55E", "", 4)
	assert.NotEmpty(t, tag.ID)
	assert.Equal(t, "Testing", tag.Name)
	assert.False(t, tag.CreatedAt.IsZero())

	other := New("Testing", "FlaskConical", "#22C55E", "", 4)
	assert.NotEqual(t, tag.ID, other.ID)
}

func TestChildrenSortedByOrder(t *testing.T) {
	defaults := Defaults()
	children := Children(defaults, "web")
	require.Len(t, children, 3)
	assert.Equal(t, []string{"web-3d", "web-anim", "web-ui"}, []string{children[0].ID, children[1].ID, children[2].ID})
}

func TestRoots(t *testing.T) {
	roots := Roots(Defaults())
	require.Len(t, roots, 4)
	assert.Equal(t, "web", roots[0].ID)
	assert.Equal(t, "data", roots[3].ID)
}

func TestValidate(t *testing.T) {
	defaults := Defaults()

	t.Run("name required", func(t *testing.T) {
		err := Validate(defaults, Tag{})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("root tag ok", func(t *testing.T) {
		assert.NoError(t, Validate(defaults, Tag{Name: "Testing"}))
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		err := Validate(defaults, Tag{ID: "web", Name: "Web Again"})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("valid parent", func(t *testing.T) {
		assert.NoError(t, Validate(defaults, Tag{Name: "Hooks", ParentID: "web"}))
	})

	t.Run("unknown parent", func(t *testing.T) {
		err := Validate(defaults, Tag{Name: "Hooks", ParentID: "nope"})
		assert.ErrorIs(t, err, ErrParentNotFound)
	})

	t.Run("nested parent rejected", func(t *testing.T) {
		err := Validate(defaults, Tag{Name: "Hooks", ParentID: "web-ui"})
		assert.ErrorIs(t, err, ErrNestedParent)
	})
}

func TestRemoveCascades(t *testing.T) {
	defaults := Defaults()

	remaining, removedIDs, err := Remove(defaults, "web")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"web", "web-3d", "web-anim", "web-ui"}, removedIDs)
	for _, id := range removedIDs {
		_, ok := Find(remaining, id)
		assert.False(t, ok, "%s should be gone", id)
	}
	_, ok := Find(remaining, "ai")
	assert.True(t, ok)
}

func TestRemoveLeaf(t *testing.T) {
	remaining, removedIDs, err := Remove(Defaults(), "web-ui")
	require.NoError(t, err)
	assert.Equal(t, []string{"web-ui"}, removedIDs)
	_, ok := Find(remaining, "web")
	assert.True(t, ok)
}

func TestRemoveUnknown(t *testing.T) {
	_, _, err := Remove(Defaults(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStrip(t *testing.T) {
	got := Strip([]string{"web", "custom", "web-ui"}, []string{"web", "web-ui"})
	assert.Equal(t, []string{"custom"}, got)

	got = Strip([]string{"custom"}, []string{"web"})
	assert.Equal(t, []string{"custom"}, got)
}
