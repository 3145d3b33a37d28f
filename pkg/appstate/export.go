package appstate

import (
	"context"
	"encoding/json"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/tags"
)

// EnvelopeVersion is the current export format version.
const EnvelopeVersion = "1.1.0"

// ErrInvalidEnvelope marks an import payload missing version or data.
var ErrInvalidEnvelope = errors.New("invalid export envelope: version and data are required")

// SkillExport carries the user-owned slice of one skill. Pointer fields
// distinguish "absent" from zero values on import, so a partial envelope
// keeps the existing values.
type SkillExport struct {
	ID         string   `json:"id" mapstructure:"id"`
	Tags       []string `json:"tags,omitempty" mapstructure:"tags"`
	IsFavorite *bool    `json:"isFavorite,omitempty" mapstructure:"isFavorite"`
	UseCount   *int     `json:"useCount,omitempty" mapstructure:"useCount"`
}

// ExportData is the payload of an export envelope.
type ExportData struct {
	Tags     []tags.Tag    `json:"tags,omitempty" mapstructure:"tags"`
	Skills   []SkillExport `json:"skills,omitempty" mapstructure:"skills"`
	Theme    string        `json:"theme,omitempty" mapstructure:"theme"`
	Language string        `json:"language,omitempty" mapstructure:"language"`
	ViewMode string        `json:"viewMode,omitempty" mapstructure:"viewMode"`
}

// Envelope is the versioned export/import container.
type Envelope struct {
	Version    string     `json:"version"`
	ExportedAt time.Time  `json:"exportedAt"`
	Data       ExportData `json:"data"`
}

// EnvelopeSchema returns the JSON schema of the export envelope.
func EnvelopeSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(Envelope{})
}

// Export serializes the user-owned state into a versioned envelope.
func (s *Service) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := ExportData{
		Tags:     s.state.Tags,
		Theme:    s.state.Preferences.Theme,
		Language: s.state.Preferences.Language,
		ViewMode: s.state.Preferences.ViewMode,
	}
	for _, skill := range s.state.Skills {
		fav := skill.IsFavorite
		count := skill.UseCount
		data.Skills = append(data.Skills, SkillExport{
			ID:         skill.ID,
			Tags:       skill.Tags,
			IsFavorite: &fav,
			UseCount:   &count,
		})
	}

	envelope := Envelope{
		Version:    EnvelopeVersion,
		ExportedAt: time.Now().UTC(),
		Data:       data,
	}
	return json.MarshalIndent(envelope, "", "  ")
}

// Import applies an export envelope on top of the current state. Skills not
// mentioned in the payload keep their fields; envelope entries for skills
// that are no longer installed are ignored. Payloads lacking version or
// data are rejected.
func (s *Service) Import(ctx context.Context, raw []byte) error {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return errors.Wrap(err, "failed to parse import payload")
	}

	version, _ := payload["version"].(string)
	rawData, hasData := payload["data"].(map[string]interface{})
	if version == "" || !hasData {
		return ErrInvalidEnvelope
	}

	var data ExportData
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &data,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create import decoder")
	}
	if err := decoder.Decode(rawData); err != nil {
		return errors.Wrap(err, "failed to decode import payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(data.Tags) > 0 {
		s.state.Tags = data.Tags
	}
	if data.Theme != "" {
		s.state.Preferences.Theme = data.Theme
	}
	if data.Language != "" {
		s.state.Preferences.Language = data.Language
	}
	if data.ViewMode != "" {
		s.state.Preferences.ViewMode = data.ViewMode
	}

	imported := make(map[string]SkillExport, len(data.Skills))
	for _, se := range data.Skills {
		imported[se.ID] = se
	}
	for i := range s.state.Skills {
		se, ok := imported[s.state.Skills[i].ID]
		if !ok {
			continue
		}
		if len(se.Tags) > 0 {
			s.state.Skills[i].Tags = se.Tags
		}
		if se.IsFavorite != nil {
			s.state.Skills[i].IsFavorite = *se.IsFavorite
		}
		if se.UseCount != nil {
			s.state.Skills[i].UseCount = *se.UseCount
		}
	}

	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.notify("import")
	return nil
}
