// Package tags models the user-facing tag taxonomy: flat tag ids attached
// to skills, organized into a single-level hierarchy for display. A tag may
// have at most one parent and a parent may have many children; deeper
// nesting is not modeled.
package tags

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Tag is a user-facing category.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"` // symbolic icon name resolved by the frontend
	Color     string    `json:"color"`          // hex string
	ParentID  string    `json:"parentId,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validation errors for tag mutations.
var (
	ErrNameRequired   = errors.New("tag name is required")
	ErrDuplicateID    = errors.New("tag id already exists")
	ErrParentNotFound = errors.New("parent tag does not exist")
	ErrNestedParent   = errors.New("a child tag cannot itself be a parent")
	ErrNotFound       = errors.New("tag not found")
)

// Defaults returns the built-in taxonomy seeded on first run. The ids line
// up with the scanner's tag inference table.
func Defaults() []Tag {
	now := time.Now().UTC()
	return []Tag{
		{ID: "web", Name: "Web Dev", Icon: "Globe", Color: "#3B82F6", Order: 0, CreatedAt: now},
		{ID: "web-3d", Name: "3D", Icon: "Box", Color: "#8B5CF6", ParentID: "web", Order: 0, CreatedAt: now},
		{ID: "web-anim", Name: "Animation", Icon: "Sparkles", Color: "#EC4899", ParentID: "web", Order: 1, CreatedAt: now},
		{ID: "web-ui", Name: "UI", Icon: "Palette", Color: "#F59E0B", ParentID: "web", Order: 2, CreatedAt: now},
		{ID: "ai", Name: "AI", Icon: "Bot", Color: "#10B981", Order: 1, CreatedAt: now},
		{ID: "ai-prompt", Name: "Prompting", Icon: "MessageSquare", Color: "#06B6D4", ParentID: "ai", Order: 0, CreatedAt: now},
		{ID: "ai-agent", Name: "Agent", Icon: "Cpu", Color: "#8B5CF6", ParentID: "ai", Order: 1, CreatedAt: now},
		{ID: "tools", Name: "Tools", Icon: "Wrench", Color: "#F59E0B", Order: 2, CreatedAt: now},
		{ID: "data", Name: "Data", Icon: "BarChart3", Color: "#EF4444", Order: 3, CreatedAt: now},
	}
}

// New creates a tag with a generated id.
func New(name, icon, color, parentID string, order int) Tag {
	return Tag{
		ID:        uuid.NewString(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		ParentID:  parentID,
		Order:     order,
		CreatedAt: time.Now().UTC(),
	}
}

// Find returns the tag with the given id.
func Find(tags []Tag, id string) (Tag, bool) {
	for _, t := range tags {
		if t.ID == id {
			return t, true
		}
	}
	return Tag{}, false
}

// Children returns the direct children of parentID sorted by their order key.
func Children(tags []Tag, parentID string) []Tag {
	var children []Tag
	for _, t := range tags {
		if t.ParentID == parentID {
			children = append(children, t)
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].Order < children[j].Order
	})
	return children
}

// Roots returns the top-level tags sorted by their order key.
func Roots(tags []Tag) []Tag {
	return Children(tags, "")
}

// Validate checks a tag before it is added to the collection. The id must
// not already be taken and the parent, when set, must exist and must itself
// be a root tag.
func Validate(tags []Tag, tag Tag) error {
	if tag.Name == "" {
		return ErrNameRequired
	}
	if _, ok := Find(tags, tag.ID); ok {
		return ErrDuplicateID
	}
	if tag.ParentID == "" {
		return nil
	}
	parent, ok := Find(tags, tag.ParentID)
	if !ok {
		return ErrParentNotFound
	}
	if parent.ParentID != "" {
		return ErrNestedParent
	}
	return nil
}

// Remove deletes a tag and cascades to its children. It returns the
// remaining tags and every removed id, so callers can strip those ids from
// each skill's tag list.
func Remove(tags []Tag, id string) ([]Tag, []string, error) {
	if _, ok := Find(tags, id); !ok {
		return tags, nil, ErrNotFound
	}

	removed := map[string]bool{id: true}
	for _, t := range tags {
		if t.ParentID == id {
			removed[t.ID] = true
		}
	}

	remaining := make([]Tag, 0, len(tags))
	removedIDs := make([]string, 0, len(removed))
	for _, t := range tags {
		if removed[t.ID] {
			removedIDs = append(removedIDs, t.ID)
			continue
		}
		remaining = append(remaining, t)
	}

	return remaining, removedIDs, nil
}

// Strip removes the given tag ids from a skill's tag list, preserving order.
func Strip(skillTags []string, removedIDs []string) []string {
	removed := make(map[string]bool, len(removedIDs))
	for _, id := range removedIDs {
		removed[id] = true
	}

	kept := make([]string, 0, len(skillTags))
	for _, id := range skillTags {
		if !removed[id] {
			kept = append(kept, id)
		}
	}
	return kept
}
