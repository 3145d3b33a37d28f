package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentDiff(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "SKILL.md")
	content := "---\nname: foo\ndescription: does foo things\n---\n# Foo\n\nOriginal line.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, body, err := ParseDescriptor([]byte(content))
	require.NoError(t, err)

	skill := Skill{ID: "local-local-foo", Path: path, Content: body}

	t.Run("unchanged", func(t *testing.T) {
		diff, err := ContentDiff(skill)
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("changed on disk", func(t *testing.T) {
		updated := "---\nname: foo\ndescription: does foo things\n---\n# Foo\n\nEdited line.\n"
		require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

		diff, err := ContentDiff(skill)
		require.NoError(t, err)
		assert.Contains(t, diff, "-Original line.")
		assert.Contains(t, diff, "+Edited line.")
	})

	t.Run("missing file", func(t *testing.T) {
		missing := skill
		missing.Path = filepath.Join(tmpDir, "gone", "SKILL.md")
		_, err := ContentDiff(missing)
		assert.Error(t, err)
	})
}
