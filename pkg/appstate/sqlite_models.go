package appstate

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/skills"
	"github.com/skillpocket/skillpocket/pkg/tags"
)

// JSONField stores a Go value as a JSON column.
type JSONField[T any] struct {
	Data T
}

// Scan implements the sql.Scanner interface for reading from the database
func (j *JSONField[T]) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.Errorf("cannot scan %T into JSONField", value)
		}
		bytes = []byte(str)
	}

	return json.Unmarshal(bytes, &j.Data)
}

// Value implements the driver.Valuer interface for writing to the database
func (j JSONField[T]) Value() (driver.Value, error) {
	return json.Marshal(j.Data)
}

// dbSkill represents the skills table structure
type dbSkill struct {
	ID          string              `db:"id"`
	Name        string              `db:"name"`
	Description string              `db:"description"`
	Version     string              `db:"version"`
	License     string              `db:"license"`
	Path        string              `db:"path"`
	PluginName  string              `db:"plugin_name"`
	Source      string              `db:"source"`
	Content     string              `db:"content"`
	Tags        JSONField[[]string] `db:"tags"`
	CoverSVG    string              `db:"cover_svg"`
	IsFavorite  bool                `db:"is_favorite"`
	UseCount    int                 `db:"use_count"`
	Stale       bool                `db:"stale"`
	LastUsedAt  *time.Time          `db:"last_used_at"`
	InstalledAt time.Time           `db:"installed_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}

func toDBSkill(s skills.Skill) dbSkill {
	return dbSkill{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Version:     s.Version,
		License:     s.License,
		Path:        s.Path,
		PluginName:  s.PluginName,
		Source:      string(s.Source),
		Content:     s.Content,
		Tags:        JSONField[[]string]{Data: s.Tags},
		CoverSVG:    s.CoverSVG,
		IsFavorite:  s.IsFavorite,
		UseCount:    s.UseCount,
		Stale:       s.Stale,
		LastUsedAt:  s.LastUsedAt,
		InstalledAt: s.InstalledAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (d dbSkill) toSkill() skills.Skill {
	return skills.Skill{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Version:     d.Version,
		License:     d.License,
		Path:        d.Path,
		PluginName:  d.PluginName,
		Source:      skills.Source(d.Source),
		Content:     d.Content,
		Tags:        d.Tags.Data,
		CoverSVG:    d.CoverSVG,
		IsFavorite:  d.IsFavorite,
		UseCount:    d.UseCount,
		Stale:       d.Stale,
		LastUsedAt:  d.LastUsedAt,
		InstalledAt: d.InstalledAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// dbTag represents the tags table structure
type dbTag struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	Color     string    `db:"color"`
	ParentID  string    `db:"parent_id"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}

func toDBTag(t tags.Tag) dbTag {
	return dbTag{
		ID:        t.ID,
		Name:      t.Name,
		Icon:      t.Icon,
		Color:     t.Color,
		ParentID:  t.ParentID,
		SortOrder: t.Order,
		CreatedAt: t.CreatedAt,
	}
}

func (d dbTag) toTag() tags.Tag {
	return tags.Tag{
		ID:        d.ID,
		Name:      d.Name,
		Icon:      d.Icon,
		Color:     d.Color,
		ParentID:  d.ParentID,
		Order:     d.SortOrder,
		CreatedAt: d.CreatedAt,
	}
}

// dbDraft represents the drafts table structure
type dbDraft struct {
	ID          string              `db:"id"`
	Name        string              `db:"name"`
	Description string              `db:"description"`
	Content     string              `db:"content"`
	Tags        JSONField[[]string] `db:"tags"`
	SourceURL   string              `db:"source_url"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}

func toDBDraft(d Draft) dbDraft {
	return dbDraft{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Content:     d.Content,
		Tags:        JSONField[[]string]{Data: d.Tags},
		SourceURL:   d.SourceURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d dbDraft) toDraft() Draft {
	return Draft{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Content:     d.Content,
		Tags:        d.Tags.Data,
		SourceURL:   d.SourceURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
