package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpocket/skillpocket/pkg/skills"
)

func sampleSkills() []skills.Skill {
	return []skills.Skill{
		{ID: "local-local-web-helper", Name: "web-helper", Tags: []string{"web"}, IsFavorite: true},
		{ID: "local-local-prompts", Name: "prompts", Tags: []string{"ai", "ai-prompt"}},
		{ID: "official-docs-writer", Name: "writer", Tags: []string{"tools"}},
	}
}

func TestFilterListByTag(t *testing.T) {
	out, err := filterList(sampleSkills(), &ListConfig{Tag: "ai"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "prompts", out[0].Name)
}

func TestFilterListFavorites(t *testing.T) {
	out, err := filterList(sampleSkills(), &ListConfig{Favorites: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "web-helper", out[0].Name)
}

func TestFilterListGlob(t *testing.T) {
	out, err := filterList(sampleSkills(), &ListConfig{Filter: "web-*"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "web-helper", out[0].Name)

	_, err = filterList(sampleSkills(), &ListConfig{Filter: "["})
	assert.Error(t, err)
}

func TestFilterListCombines(t *testing.T) {
	out, err := filterList(sampleSkills(), &ListConfig{Tag: "web", Favorites: true})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = filterList(sampleSkills(), &ListConfig{Tag: "ai", Favorites: true})
	require.NoError(t, err)
	assert.Empty(t, out)
}
