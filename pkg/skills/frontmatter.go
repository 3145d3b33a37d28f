package skills

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

// Descriptor parse failures. A candidate directory whose SKILL.md fails with
// one of these is skipped; it never aborts the surrounding scan.
var (
	ErrMissingFrontmatter = errors.New("missing frontmatter")
	ErrMissingName        = errors.New("skill name is required in frontmatter")
	ErrMissingDescription = errors.New("skill description is required in frontmatter")
)

// ParseDescriptor extracts the frontmatter and markdown body from raw
// SKILL.md bytes. Only name and description are validated; unknown
// frontmatter keys are ignored. The transformation is pure.
func ParseDescriptor(raw []byte) (Frontmatter, string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(raw, &buf, parser.WithContext(pctx)); err != nil {
		return Frontmatter{}, "", errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return Frontmatter{}, "", ErrMissingFrontmatter
	}

	fm := Frontmatter{}
	fm.Name, _ = metaData["name"].(string)
	fm.Description, _ = metaData["description"].(string)
	fm.Version = stringField(metaData["version"])
	fm.License = stringField(metaData["license"])

	if fm.Name == "" {
		return Frontmatter{}, "", ErrMissingName
	}
	if fm.Description == "" {
		return Frontmatter{}, "", ErrMissingDescription
	}

	return fm, extractBody(string(raw)), nil
}

// stringField coerces a frontmatter value to a string. YAML decodes bare
// version numbers as ints or floats; those are kept, not dropped.
func stringField(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// extractBody removes YAML frontmatter and returns the body.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}

// WriteDescriptor renders a SKILL.md file from frontmatter and a markdown
// body. Used when scaffolding a new skill or publishing a draft.
func WriteDescriptor(fm Frontmatter, body string) ([]byte, error) {
	if fm.Name == "" {
		return nil, ErrMissingName
	}
	if fm.Description == "" {
		return nil, ErrMissingDescription
	}

	yamlBytes, err := yaml.Marshal(fm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal frontmatter")
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
	buf.WriteString(strings.TrimLeft(body, "\n"))
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}
