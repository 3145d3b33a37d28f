package assets

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/logger"
)

const (
	promptsDirName     = "prompts"
	screenshotsDirName = "screenshots"
)

// ErrDesignNotFound is returned when no design style has the requested id.
var ErrDesignNotFound = errors.New("ui design not found")

// DesignColors is the palette captured for one UI design style.
type DesignColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// DesignStyle is the persisted metadata of one UI design. The screenshot
// and prompt live in their own files; the style records their paths
// relative to the studio base directory.
type DesignStyle struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	SourceURL   string       `json:"sourceUrl,omitempty"`
	Screenshot  string       `json:"screenshot"`
	PromptFile  string       `json:"promptFile"`
	Colors      DesignColors `json:"colors"`
	Tags        []string     `json:"tags"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
}

// LoadedDesign is a design style with its prompt content resolved and the
// screenshot path made absolute.
type LoadedDesign struct {
	DesignStyle
	Prompt         string `json:"prompt"`
	ScreenshotPath string `json:"screenshotPath"`
}

// DesignCategory is one entry of the fixed category list.
type DesignCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// DesignCategories returns the fixed category options for design styles.
func DesignCategories() []DesignCategory {
	return []DesignCategory{
		{ID: "game", Name: "Game", Emoji: "🎮"},
		{ID: "ecommerce", Name: "E-commerce", Emoji: "🛒"},
		{ID: "business", Name: "Business", Emoji: "💼"},
		{ID: "social", Name: "Social", Emoji: "📱"},
		{ID: "creative", Name: "Creative", Emoji: "🎨"},
		{ID: "finance", Name: "Finance", Emoji: "💰"},
		{ID: "health", Name: "Health", Emoji: "🏥"},
		{ID: "education", Name: "Education", Emoji: "📚"},
		{ID: "travel", Name: "Travel", Emoji: "✈️"},
		{ID: "food", Name: "Food", Emoji: "🍕"},
		{ID: "other", Name: "Other", Emoji: "📦"},
	}
}

// Studio reads and writes UI design styles, prompts, and screenshots under
// a base directory, typically ~/.claude/skill-pocket/ui-designs.
type Studio struct {
	basePath string
}

// DefaultDesignsBasePath resolves the ui-designs directory, honoring
// SKILLPOCKET_BASE_PATH the same way the state store does.
func DefaultDesignsBasePath() (string, error) {
	if base := os.Getenv("SKILLPOCKET_BASE_PATH"); base != "" {
		return filepath.Join(base, "ui-designs"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, ".claude", "skill-pocket", "ui-designs"), nil
}

// NewStudio returns a studio rooted at basePath. An empty basePath uses the
// default location.
func NewStudio(basePath string) (*Studio, error) {
	if basePath == "" {
		var err error
		basePath, err = DefaultDesignsBasePath()
		if err != nil {
			return nil, err
		}
	}
	return &Studio{basePath: basePath}, nil
}

// BasePath returns the directory the studio reads from and writes to.
func (s *Studio) BasePath() string {
	return s.basePath
}

// Styles loads all design styles. A missing styles file yields an empty
// slice, matching a fresh installation.
func (s *Studio) Styles() ([]DesignStyle, error) {
	raw, err := os.ReadFile(filepath.Join(s.basePath, stylesFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read design styles")
	}
	var styles []DesignStyle
	if err := json.Unmarshal(raw, &styles); err != nil {
		return nil, errors.Wrap(err, "failed to parse design styles")
	}
	return styles, nil
}

// SaveStyles writes the full styles list.
func (s *Studio) SaveStyles(styles []DesignStyle) error {
	return writeJSONFile(s.basePath, stylesFileName, styles)
}

// AddStyle appends a style, assigning an id, creation time, and the
// conventional prompt and screenshot paths when unset.
func (s *Studio) AddStyle(style DesignStyle) (DesignStyle, error) {
	styles, err := s.Styles()
	if err != nil {
		return DesignStyle{}, err
	}
	if style.ID == "" {
		style.ID = uuid.NewString()
	}
	if style.CreatedAt.IsZero() {
		style.CreatedAt = time.Now().UTC()
	}
	if style.PromptFile == "" {
		style.PromptFile = filepath.Join(promptsDirName, style.ID+".md")
	}
	if style.Screenshot == "" {
		style.Screenshot = filepath.Join(screenshotsDirName, style.ID+".png")
	}
	styles = append(styles, style)
	if err := s.SaveStyles(styles); err != nil {
		return DesignStyle{}, err
	}
	return style, nil
}

// Design resolves one style by id, loading its prompt content. A missing
// prompt file yields an empty prompt, not an error.
func (s *Studio) Design(ctx context.Context, id string) (LoadedDesign, error) {
	styles, err := s.Styles()
	if err != nil {
		return LoadedDesign{}, err
	}
	for _, style := range styles {
		if style.ID == id {
			return s.load(ctx, style), nil
		}
	}
	return LoadedDesign{}, errors.Wrap(ErrDesignNotFound, id)
}

// LoadedDesigns resolves every style's prompt. A style whose prompt cannot
// be read still appears with an empty prompt; the failure is logged, not
// fatal.
func (s *Studio) LoadedDesigns(ctx context.Context) ([]LoadedDesign, error) {
	styles, err := s.Styles()
	if err != nil {
		return nil, err
	}
	loaded := make([]LoadedDesign, 0, len(styles))
	for _, style := range styles {
		loaded = append(loaded, s.load(ctx, style))
	}
	return loaded, nil
}

func (s *Studio) load(ctx context.Context, style DesignStyle) LoadedDesign {
	design := LoadedDesign{
		DesignStyle:    style,
		ScreenshotPath: filepath.Join(s.basePath, style.Screenshot),
	}
	raw, err := os.ReadFile(filepath.Join(s.basePath, style.PromptFile))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.G(ctx).WithError(err).WithField("design", style.ID).Warn("failed to load design prompt")
		}
		return design
	}
	design.Prompt = string(raw)
	return design
}

// SavePrompt writes one design's prompt content and returns the file path.
func (s *Studio) SavePrompt(styleID, prompt string) (string, error) {
	dir := filepath.Join(s.basePath, promptsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create prompts directory")
	}
	path := filepath.Join(dir, styleID+".md")
	if err := os.WriteFile(path, []byte(prompt), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}

// SaveScreenshot writes one design's screenshot bytes and returns the file
// path. The extension should match the image format (png, jpg, webp).
func (s *Studio) SaveScreenshot(styleID, ext string, data []byte) (string, error) {
	dir := filepath.Join(s.basePath, screenshotsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create screenshots directory")
	}
	path := filepath.Join(dir, styleID+"."+strings.TrimPrefix(ext, "."))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}

// ScreenshotDataURL reads a screenshot by its style-relative path and
// returns it as a base64 data URL for inline display.
func (s *Studio) ScreenshotDataURL(relPath string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(s.basePath, relPath))
	if err != nil {
		return "", errors.Wrap(err, "failed to read screenshot")
	}
	mime := "image/png"
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(relPath), ".")) {
	case "jpg", "jpeg":
		mime = "image/jpeg"
	case "webp":
		mime = "image/webp"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(raw)), nil
}
