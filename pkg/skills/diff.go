package skills

import (
	"os"

	"github.com/aymanbagabas/go-udiff"
	"github.com/pkg/errors"
)

// ContentDiff returns a unified diff between a persisted skill's content
// and the current body of its SKILL.md on disk. An empty string means the
// stored content is up to date.
func ContentDiff(skill Skill) (string, error) {
	raw, err := os.ReadFile(skill.Path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", skill.Path)
	}

	_, body, err := ParseDescriptor(raw)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse %s", skill.Path)
	}

	if body == skill.Content {
		return "", nil
	}

	return udiff.Unified("stored/"+skill.ID, "disk/"+skill.ID, skill.Content, body), nil
}
