// Package assets manages the on-disk asset collections stored under the
// skill-pocket data directory: icon styles and icon sets (Library), and UI
// design styles with their prompts and screenshots (Studio). Metadata lives
// in JSON files; SVGs, prompts, and screenshots are plain files.
package assets

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/logger"
)

const (
	stylesFileName = "styles.json"
	setsFileName   = "sets.json"
	svgDirName     = "svgs"
)

// IconStyle describes a visual style that icon sets are generated in.
type IconStyle struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	SourceURL       string    `json:"sourceUrl,omitempty"`
	Category        string    `json:"category"`
	Colors          []string  `json:"colors"`
	Effects         []string  `json:"effects"`
	Characteristics []string  `json:"characteristics"`
	Prompt          string    `json:"prompt"`
	CreatedAt       time.Time `json:"createdAt"`
}

// IconRef names one icon of a set and the concept it depicts.
type IconRef struct {
	Name    string `json:"name"`
	Concept string `json:"concept"`
}

// IconSet is the persisted metadata of one icon set.
type IconSet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StyleID     string    `json:"styleId"`
	Description string    `json:"description,omitempty"`
	Icons       []IconRef `json:"icons"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Icon is a set entry together with its SVG markup loaded from disk.
type Icon struct {
	Name     string `json:"name"`
	Concept  string `json:"concept"`
	SVG      string `json:"svg"`
	FilePath string `json:"filePath"`
}

// LoadedSet is an icon set with its SVGs resolved.
type LoadedSet struct {
	IconSet
	Icons      []Icon `json:"loadedIcons"`
	FolderPath string `json:"folderPath"`
}

// Library reads and writes icon styles and sets under a base directory,
// typically ~/.claude/skill-pocket/icons.
type Library struct {
	basePath string
}

// DefaultBasePath resolves the icons directory, honoring
// SKILLPOCKET_BASE_PATH the same way the state store does.
func DefaultBasePath() (string, error) {
	if base := os.Getenv("SKILLPOCKET_BASE_PATH"); base != "" {
		return filepath.Join(base, "icons"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, ".claude", "skill-pocket", "icons"), nil
}

// NewLibrary returns a library rooted at basePath. An empty basePath uses
// the default location.
func NewLibrary(basePath string) (*Library, error) {
	if basePath == "" {
		var err error
		basePath, err = DefaultBasePath()
		if err != nil {
			return nil, err
		}
	}
	return &Library{basePath: basePath}, nil
}

// BasePath returns the directory the library reads from and writes to.
func (l *Library) BasePath() string {
	return l.basePath
}

// Styles loads all icon styles. A missing styles file yields an empty
// slice, matching a fresh installation.
func (l *Library) Styles() ([]IconStyle, error) {
	raw, err := os.ReadFile(filepath.Join(l.basePath, stylesFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read icon styles")
	}
	var styles []IconStyle
	if err := json.Unmarshal(raw, &styles); err != nil {
		return nil, errors.Wrap(err, "failed to parse icon styles")
	}
	return styles, nil
}

// SaveStyles writes the full styles list.
func (l *Library) SaveStyles(styles []IconStyle) error {
	return l.writeJSON(stylesFileName, styles)
}

// AddStyle appends a style, assigning an ID and creation time when unset.
func (l *Library) AddStyle(style IconStyle) (IconStyle, error) {
	styles, err := l.Styles()
	if err != nil {
		return IconStyle{}, err
	}
	if style.ID == "" {
		style.ID = uuid.NewString()
	}
	if style.CreatedAt.IsZero() {
		style.CreatedAt = time.Now().UTC()
	}
	styles = append(styles, style)
	if err := l.SaveStyles(styles); err != nil {
		return IconStyle{}, err
	}
	return style, nil
}

// Sets loads the icon set metadata without resolving SVGs.
func (l *Library) Sets() ([]IconSet, error) {
	raw, err := os.ReadFile(filepath.Join(l.basePath, setsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read icon sets")
	}
	var sets []IconSet
	if err := json.Unmarshal(raw, &sets); err != nil {
		return nil, errors.Wrap(err, "failed to parse icon sets")
	}
	return sets, nil
}

// SaveSets writes the full set metadata list.
func (l *Library) SaveSets(sets []IconSet) error {
	return l.writeJSON(setsFileName, sets)
}

// AddSet appends a set, assigning an ID and creation time when unset.
func (l *Library) AddSet(set IconSet) (IconSet, error) {
	sets, err := l.Sets()
	if err != nil {
		return IconSet{}, err
	}
	if set.ID == "" {
		set.ID = uuid.NewString()
	}
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now().UTC()
	}
	sets = append(sets, set)
	if err := l.SaveSets(sets); err != nil {
		return IconSet{}, err
	}
	return set, nil
}

// LoadedSets resolves every set's SVG files. A set whose SVG folder cannot
// be listed still appears with no icons; the failure is logged, not fatal.
func (l *Library) LoadedSets(ctx context.Context) ([]LoadedSet, error) {
	sets, err := l.Sets()
	if err != nil {
		return nil, err
	}

	loaded := make([]LoadedSet, 0, len(sets))
	for _, set := range sets {
		folder := filepath.Join(l.basePath, svgDirName, set.ID)
		icons, err := l.loadSVGs(set, folder)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("set", set.ID).Warn("failed to load icon SVGs")
		}
		loaded = append(loaded, LoadedSet{
			IconSet:    set,
			Icons:      icons,
			FolderPath: folder,
		})
	}
	return loaded, nil
}

func (l *Library) loadSVGs(set IconSet, folder string) ([]Icon, error) {
	if _, err := os.Stat(folder); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to stat svg folder")
	}

	matches, err := doublestar.Glob(os.DirFS(folder), "**/*.svg")
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate svg files")
	}
	sort.Strings(matches)

	concepts := make(map[string]string, len(set.Icons))
	for _, ref := range set.Icons {
		concepts[ref.Name] = ref.Concept
	}

	var icons []Icon
	for _, match := range matches {
		path := filepath.Join(folder, filepath.FromSlash(match))
		raw, err := os.ReadFile(path)
		if err != nil {
			return icons, errors.Wrapf(err, "failed to read %s", path)
		}
		name := strings.TrimSuffix(filepath.Base(match), ".svg")
		concept := concepts[name]
		if concept == "" {
			concept = name
		}
		icons = append(icons, Icon{
			Name:     name,
			Concept:  concept,
			SVG:      string(raw),
			FilePath: path,
		})
	}
	return icons, nil
}

// SaveSVG writes one icon's SVG markup into the set's folder and returns
// the file path.
func (l *Library) SaveSVG(setID, iconName, svg string) (string, error) {
	folder := filepath.Join(l.basePath, svgDirName, setID)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create svg folder")
	}
	path := filepath.Join(folder, iconName+".svg")
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}

func (l *Library) writeJSON(name string, v interface{}) error {
	return writeJSONFile(l.basePath, name, v)
}

// writeJSONFile atomically replaces dir/name with the marshalled value.
func writeJSONFile(dir, name string, v interface{}) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", name)
	}
	path := filepath.Join(dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}
