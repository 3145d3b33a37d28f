package appstate

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportEnvelopeShape(t *testing.T) {
	svc, root := newTestService(t)
	writeSkillDir(t, root, "foo", "does foo things")

	ctx := context.Background()
	_, err := svc.Rescan(ctx)
	require.NoError(t, err)

	raw, err := svc.Export()
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, EnvelopeVersion, envelope["version"])
	assert.NotEmpty(t, envelope["exportedAt"])

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "tags")
	assert.Contains(t, data, "skills")
	assert.Contains(t, data, "theme")
	assert.Contains(t, data, "language")
	assert.Contains(t, data, "viewMode")
}

func TestImportRejectsInvalidEnvelopes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.Error(t, svc.Import(ctx, []byte("{not json")))
	assert.ErrorIs(t, svc.Import(ctx, []byte(`{"data":{}}`)), ErrInvalidEnvelope)
	assert.ErrorIs(t, svc.Import(ctx, []byte(`{"version":"1.1.0"}`)), ErrInvalidEnvelope)
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, root := newTestService(t)
	writeSkillDir(t, root, "foo", "does foo things")

	ctx := context.Background()
	_, err := svc.Rescan(ctx)
	require.NoError(t, err)

	_, err = svc.ToggleFavorite(ctx, "local-local-foo")
	require.NoError(t, err)
	require.NoError(t, svc.SetSkillTags(ctx, "local-local-foo", []string{"custom"}))
	require.NoError(t, svc.SetPreferences(ctx, Preferences{Theme: "dark", Language: "zh", ViewMode: "list"}))

	before := svc.State()

	raw, err := svc.Export()
	require.NoError(t, err)
	require.NoError(t, svc.Import(ctx, raw))

	after := svc.State()
	assert.Equal(t, before.Preferences, after.Preferences)
	assert.Len(t, after.Tags, len(before.Tags))

	skill, err := svc.Skill("local-local-foo")
	require.NoError(t, err)
	assert.True(t, skill.IsFavorite)
	assert.Equal(t, []string{"custom"}, skill.Tags)
	assert.Equal(t, before.Skills[0].UseCount, skill.UseCount)
}

func TestImportIsNonDestructiveForUnmentionedSkills(t *testing.T) {
	svc, root := newTestService(t)
	writeSkillDir(t, root, "foo", "does foo things")
	writeSkillDir(t, root, "bar", "does bar things")

	ctx := context.Background()
	_, err := svc.Rescan(ctx)
	require.NoError(t, err)

	_, err = svc.ToggleFavorite(ctx, "local-local-bar")
	require.NoError(t, err)

	payload := `{
		"version": "1.1.0",
		"data": {
			"skills": [{"id": "local-local-foo", "isFavorite": true, "useCount": 9}]
		}
	}`
	require.NoError(t, svc.Import(ctx, []byte(payload)))

	foo, err := svc.Skill("local-local-foo")
	require.NoError(t, err)
	assert.True(t, foo.IsFavorite)
	assert.Equal(t, 9, foo.UseCount)
	assert.NotEmpty(t, foo.Tags, "absent tags key keeps inferred tags")

	bar, err := svc.Skill("local-local-bar")
	require.NoError(t, err)
	assert.True(t, bar.IsFavorite, "skills not mentioned keep their state")
}

func TestImportIgnoresUnknownSkills(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	payload := `{
		"version": "1.1.0",
		"data": {
			"skills": [{"id": "local-local-ghost", "isFavorite": true}]
		}
	}`
	require.NoError(t, svc.Import(ctx, []byte(payload)))
	assert.Empty(t, svc.Skills())
}

func TestEnvelopeSchema(t *testing.T) {
	schema := EnvelopeSchema()
	require.NotNil(t, schema)

	raw, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "version")
	assert.Contains(t, string(raw), "exportedAt")
}
