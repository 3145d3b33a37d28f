// Package skills implements discovery, parsing, and reconciliation of skill
// packages. Skills are directories containing a SKILL.md file with YAML
// frontmatter describing the skill, discovered from the personal skills
// directory and from installed marketplace plugins.
package skills

import "time"

// Source identifies where a skill was discovered.
type Source string

const (
	// SourceLocal marks skills from the personal skills directory.
	SourceLocal Source = "local"
	// SourceOfficial marks skills provided by a marketplace plugin.
	SourceOfficial Source = "official"
	// SourceMarketplace marks skills installed through the in-app store.
	SourceMarketplace Source = "marketplace"
)

// Skill represents a discovered skill with its metadata and user-owned state.
type Skill struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Version     string     `json:"version,omitempty"`
	License     string     `json:"license,omitempty"`
	Path        string     `json:"path"`       // absolute path to SKILL.md
	PluginName  string     `json:"pluginName,omitempty"`
	Source      Source     `json:"source"`
	Content     string     `json:"content"` // markdown body, frontmatter stripped
	Tags        []string   `json:"tags"`
	CoverSVG    string     `json:"coverSvg,omitempty"`
	IsFavorite  bool       `json:"isFavorite"`
	UseCount    int        `json:"useCount"`
	Stale       bool       `json:"stale,omitempty"` // set by the retain merge policy
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty"`
	InstalledAt time.Time  `json:"installedAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Frontmatter represents the YAML frontmatter in SKILL.md files.
type Frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version,omitempty"`
	License     string `yaml:"license,omitempty"`
}
