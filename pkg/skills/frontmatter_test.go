package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptor(t *testing.T) {
	raw := []byte(`---
name: playwright
description: Automate browsers with Playwright
version: 1.2.0
license: MIT
---

# Playwright

## Instructions
Run the browser.
`)

	fm, body, err := ParseDescriptor(raw)
	require.NoError(t, err)
	assert.Equal(t, "playwright", fm.Name)
	assert.Equal(t, "Automate browsers with Playwright", fm.Description)
	assert.Equal(t, "1.2.0", fm.Version)
	assert.Equal(t, "MIT", fm.License)
	assert.Contains(t, body, "# Playwright")
	assert.Contains(t, body, "Run the browser.")
	assert.NotContains(t, body, "license:")
}

func TestParseDescriptorIgnoresUnknownKeys(t *testing.T) {
	raw := []byte(`---
name: foo
description: does foo things
author: someone
homepage: https://example.com
---
# Foo
`)

	fm, _, err := ParseDescriptor(raw)
	require.NoError(t, err)
	assert.Equal(t, "foo", fm.Name)
	assert.Empty(t, fm.Version)
}

func TestParseDescriptorNumericVersion(t *testing.T) {
	raw := []byte(`---
name: foo
description: does foo things
version: 1.5
---
# Foo
`)

	fm, _, err := ParseDescriptor(raw)
	require.NoError(t, err)
	assert.Equal(t, "1.5", fm.Version)

	raw = []byte(`---
name: foo
description: does foo things
version: 2
---
# Foo
`)

	fm, _, err = ParseDescriptor(raw)
	require.NoError(t, err)
	assert.Equal(t, "2", fm.Version)
}

func TestParseDescriptorFailures(t *testing.T) {
	t.Run("missing frontmatter", func(t *testing.T) {
		_, _, err := ParseDescriptor([]byte("# Just a markdown file\n"))
		assert.ErrorIs(t, err, ErrMissingFrontmatter)
	})

	t.Run("missing name", func(t *testing.T) {
		_, _, err := ParseDescriptor([]byte("---\ndescription: something\n---\n# Body\n"))
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("missing description", func(t *testing.T) {
		_, _, err := ParseDescriptor([]byte("---\nname: something\n---\n# Body\n"))
		assert.ErrorIs(t, err, ErrMissingDescription)
	})
}

func TestWriteDescriptorRoundTrip(t *testing.T) {
	fm := Frontmatter{
		Name:        "my-skill",
		Description: "A skill written by the descriptor writer",
		Version:     "0.1.0",
	}
	body := "# My Skill\n\nDo the thing.\n"

	raw, err := WriteDescriptor(fm, body)
	require.NoError(t, err)

	parsed, parsedBody, err := ParseDescriptor(raw)
	require.NoError(t, err)
	assert.Equal(t, fm, parsed)
	assert.Equal(t, body, parsedBody)
}

func TestWriteDescriptorRequiresFields(t *testing.T) {
	_, err := WriteDescriptor(Frontmatter{Description: "x"}, "body")
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = WriteDescriptor(Frontmatter{Name: "x"}, "body")
	assert.ErrorIs(t, err, ErrMissingDescription)
}
