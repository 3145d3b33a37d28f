package skills

import "strings"

// FallbackTag is assigned when no keyword rule matches, so every valid
// skill carries at least one tag.
const FallbackTag = "tools"

// tagRule maps a tag id to the keywords that trigger it. Rule order
// determines output order.
type tagRule struct {
	id       string
	keywords []string
}

// The taxonomy is intentionally coarse; users correct misclassifications by
// editing tags, and the merge engine preserves those edits.
var tagRules = []tagRule{
	{"ai", []string{"ai", "llm", "claude", "prompt", "agent", "model"}},
	{"ai-prompt", []string{"prompt", "prompting"}},
	{"ai-agent", []string{"agent", "autonomous"}},
	{"web", []string{"web", "html", "css", "javascript", "frontend", "react", "vue"}},
	{"web-3d", []string{"3d", "three.js", "webgl", "canvas"}},
	{"web-anim", []string{"animation", "gsap", "motion", "animate"}},
	{"web-ui", []string{"ui", "component", "design", "style"}},
	{"tools", []string{"tool", "utility", "helper", "dev", "development"}},
	{"data", []string{"data", "analytics", "chart", "visualization"}},
}

// InferTags derives category tags for a skill from its name, description,
// and plugin name via substring keyword matching. The result is
// deterministic for identical inputs and never empty.
func InferTags(name, description, pluginName string) []string {
	text := strings.ToLower(name + " " + description + " " + pluginName)

	var tags []string
	for _, rule := range tagRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				tags = append(tags, rule.id)
				break
			}
		}
	}

	if len(tags) == 0 {
		tags = append(tags, FallbackTag)
	}

	return tags
}
