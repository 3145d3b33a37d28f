package skills

import (
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// AssignID computes the stable identifier for a skill from its provenance.
// The id is lowercase with every whitespace run collapsed to a single
// hyphen, so repeated scans of an unchanged skill directory always produce
// the same id. Two skills that share (source, plugin, name) intentionally
// collapse to one identity; the merge engine treats them as the same skill.
func AssignID(source Source, pluginName, name string) string {
	if pluginName == "" {
		pluginName = "local"
	}
	joined := strings.ToLower(string(source) + "-" + pluginName + "-" + name)
	return whitespaceRuns.ReplaceAllString(joined, "-")
}
