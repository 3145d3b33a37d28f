package assets

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStudio(t *testing.T) *Studio {
	t.Helper()
	studio, err := NewStudio(t.TempDir())
	require.NoError(t, err)
	return studio
}

func TestDesignStylesEmptyOnFreshInstall(t *testing.T) {
	studio := newTestStudio(t)

	styles, err := studio.Styles()
	require.NoError(t, err)
	assert.Empty(t, styles)

	designs, err := studio.LoadedDesigns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, designs)
}

func TestAddDesignStyleAssignsIdentityAndPaths(t *testing.T) {
	studio := newTestStudio(t)

	style, err := studio.AddStyle(DesignStyle{
		Name:        "Neon Arcade",
		Category:    "game",
		Description: "glowing cabinet chrome",
		Colors:      DesignColors{Primary: "#f0f", Background: "#000"},
		Tags:        []string{"dark", "retro"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, style.ID)
	assert.False(t, style.CreatedAt.IsZero())
	assert.Equal(t, filepath.Join("prompts", style.ID+".md"), style.PromptFile)
	assert.Equal(t, filepath.Join("screenshots", style.ID+".png"), style.Screenshot)

	styles, err := studio.Styles()
	require.NoError(t, err)
	require.Len(t, styles, 1)
	assert.Equal(t, "Neon Arcade", styles[0].Name)
	assert.Equal(t, "#f0f", styles[0].Colors.Primary)
}

func TestSavePromptAndLoadDesign(t *testing.T) {
	studio := newTestStudio(t)

	style, err := studio.AddStyle(DesignStyle{Name: "Paper Ledger", Category: "finance"})
	require.NoError(t, err)

	path, err := studio.SavePrompt(style.ID, "Use ruled columns and serif numerals.")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, style.ID+".md"))

	design, err := studio.Design(context.Background(), style.ID)
	require.NoError(t, err)
	assert.Equal(t, "Use ruled columns and serif numerals.", design.Prompt)
	assert.Equal(t, filepath.Join(studio.BasePath(), style.Screenshot), design.ScreenshotPath)
}

func TestLoadedDesignsMissingPrompt(t *testing.T) {
	studio := newTestStudio(t)

	_, err := studio.AddStyle(DesignStyle{Name: "Unwritten", Category: "other"})
	require.NoError(t, err)

	designs, err := studio.LoadedDesigns(context.Background())
	require.NoError(t, err)
	require.Len(t, designs, 1)
	assert.Empty(t, designs[0].Prompt)
}

func TestDesignNotFound(t *testing.T) {
	studio := newTestStudio(t)

	_, err := studio.Design(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrDesignNotFound)
}

func TestScreenshotDataURL(t *testing.T) {
	studio := newTestStudio(t)

	style, err := studio.AddStyle(DesignStyle{Name: "Snapshot", Category: "creative"})
	require.NoError(t, err)

	_, err = studio.SaveScreenshot(style.ID, "png", []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)

	url, err := studio.ScreenshotDataURL(style.Screenshot)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	jpgPath, err := studio.SaveScreenshot(style.ID, "jpg", []byte{0xff, 0xd8})
	require.NoError(t, err)
	url, err = studio.ScreenshotDataURL(filepath.Join("screenshots", filepath.Base(jpgPath)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))

	_, err = studio.ScreenshotDataURL(filepath.Join("screenshots", "missing.png"))
	assert.Error(t, err)
}

func TestDesignCategoriesFixedList(t *testing.T) {
	cats := DesignCategories()
	require.Len(t, cats, 11)
	assert.Equal(t, "game", cats[0].ID)
	assert.Equal(t, "other", cats[len(cats)-1].ID)
	for _, c := range cats {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Emoji)
	}
}

func TestDesignStylesCorruptFile(t *testing.T) {
	studio := newTestStudio(t)
	require.NoError(t, os.WriteFile(filepath.Join(studio.BasePath(), "styles.json"), []byte("{not json"), 0o644))

	_, err := studio.Styles()
	assert.Error(t, err)
}
