// Package appstate is the application-state service: the single owner of
// the persisted skill collection, tag taxonomy, drafts, and user
// preferences. The scan/merge core stays pure; this package feeds it the
// previously persisted skills and replaces the collection wholesale with
// each merge result, so readers never observe a partially written state.
package appstate

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillpocket/skillpocket/pkg/skills"
	"github.com/skillpocket/skillpocket/pkg/tags"
)

// Preferences holds user-level settings shared with the frontend.
type Preferences struct {
	Theme    string `json:"theme"`    // light | dark | system
	Language string `json:"language"` // zh | en
	ViewMode string `json:"viewMode"` // grid | list
}

// DefaultPreferences returns the first-run preference values.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    "system",
		Language: "en",
		ViewMode: "grid",
	}
}

// Draft is a skill being authored that has not yet been published to the
// personal skills directory.
type Draft struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	SourceURL   string    `json:"sourceUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewDraft creates a draft with a generated id.
func NewDraft(name, description, content, sourceURL string) Draft {
	now := time.Now().UTC()
	return Draft{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Content:     content,
		Tags:        skills.InferTags(name, description, ""),
		SourceURL:   sourceURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// State is the full persisted application state.
type State struct {
	Skills      []skills.Skill `json:"skills"`
	Tags        []tags.Tag     `json:"tags"`
	Drafts      []Draft        `json:"drafts"`
	Preferences Preferences    `json:"preferences"`
	LastScanAt  *time.Time     `json:"lastScanAt,omitempty"`
}

// NewState returns the first-run state with the default tag taxonomy.
func NewState() State {
	return State{
		Tags:        tags.Defaults(),
		Preferences: DefaultPreferences(),
	}
}
