package skills

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/logger"
)

const descriptorFileName = "SKILL.md"

// RootUnavailableError records a scan root that could not be listed. It is
// absorbed as a warning; one inaccessible root never aborts the scan.
type RootUnavailableError struct {
	Root string
	Err  error
}

func (e *RootUnavailableError) Error() string {
	return fmt.Sprintf("scan root unavailable: %s: %v", e.Root, e.Err)
}

func (e *RootUnavailableError) Unwrap() error { return e.Err }

// DescriptorInvalidError records a SKILL.md that failed to parse. The
// candidate is dropped and sibling directories continue to be processed.
type DescriptorInvalidError struct {
	Path string
	Err  error
}

func (e *DescriptorInvalidError) Error() string {
	return fmt.Sprintf("invalid skill descriptor: %s: %v", e.Path, e.Err)
}

func (e *DescriptorInvalidError) Unwrap() error { return e.Err }

// Scanner discovers skills from the personal skills directory and from
// installed marketplace plugins.
type Scanner struct {
	skillsDir       string
	marketplacesDir string
	now             func() time.Time
}

// Option is a function that configures a Scanner
type Option func(*Scanner) error

// WithRoots sets custom scan roots.
func WithRoots(skillsDir, marketplacesDir string) Option {
	return func(s *Scanner) error {
		s.skillsDir = skillsDir
		s.marketplacesDir = marketplacesDir
		return nil
	}
}

// WithDefaultRoots initializes the scanner with the standard home-relative
// roots: ~/.claude/skills for personal skills and
// ~/.claude/plugins/marketplaces for plugin-provided skills.
func WithDefaultRoots() Option {
	return func(s *Scanner) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		s.skillsDir = filepath.Join(homeDir, ".claude", "skills")
		s.marketplacesDir = filepath.Join(homeDir, ".claude", "plugins", "marketplaces")
		return nil
	}
}

// NewScanner creates a new skill scanner. With no options the default
// home-relative roots are used.
func NewScanner(opts ...Option) (*Scanner, error) {
	s := &Scanner{now: time.Now}

	if len(opts) == 0 {
		opts = []Option{WithDefaultRoots()}
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Roots returns the directories a scan reads from, for callers that need
// to watch them for changes.
func (s *Scanner) Roots() []string {
	return []string{s.skillsDir, s.marketplacesDir}
}

// Result aggregates everything one scan invocation produced. Warnings hold
// absorbed per-root and per-candidate failures; they never indicate that
// the scan as a whole failed.
type Result struct {
	Skills   []Skill
	Warnings []error
}

// WarningSummary combines all absorbed warnings into a single error, or nil
// when the scan was clean.
func (r *Result) WarningSummary() error {
	var merr *multierror.Error
	for _, w := range r.Warnings {
		merr = multierror.Append(merr, w)
	}
	return merr.ErrorOrNil()
}

// Scan walks every configured root in declared order (personal skills
// directory first, then marketplaces) and returns the concatenation of all
// discovered skills. Per-root and per-candidate failures are collected as
// warnings; the returned error is non-nil only for infrastructure failures
// such as context cancellation, in which case the caller should present a
// retry affordance.
func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := ctx.Err(); err != nil {
		return result, errors.Wrap(err, "scan aborted")
	}

	s.scanSkillsDir(ctx, s.skillsDir, SourceLocal, "", result)

	if err := ctx.Err(); err != nil {
		return result, errors.Wrap(err, "scan aborted")
	}

	s.scanMarketplaces(ctx, result)

	logger.G(ctx).WithField("count", len(result.Skills)).Debug("scan complete")
	return result, nil
}

// scanSkillsDir enumerates the immediate children of dir and yields one
// skill per child directory containing a parseable SKILL.md.
func (s *Scanner) scanSkillsDir(ctx context.Context, dir string, source Source, pluginName string, result *Result) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			result.Warnings = append(result.Warnings, &RootUnavailableError{Root: dir, Err: err})
		}
		logger.G(ctx).WithField("dir", dir).WithError(err).Debug("skipping unavailable skills directory")
		return
	}

	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())

		// Stat rather than entry.IsDir so symlinked skill directories resolve.
		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		descriptorPath := filepath.Join(entryPath, descriptorFileName)
		raw, err := os.ReadFile(descriptorPath)
		if err != nil {
			// No SKILL.md is not an error; the directory is simply not a skill.
			if !os.IsNotExist(err) {
				result.Warnings = append(result.Warnings, &DescriptorInvalidError{Path: descriptorPath, Err: err})
			}
			continue
		}

		fm, body, err := ParseDescriptor(raw)
		if err != nil {
			result.Warnings = append(result.Warnings, &DescriptorInvalidError{Path: descriptorPath, Err: err})
			logger.G(ctx).WithField("path", descriptorPath).WithError(err).Warn("skipping invalid skill descriptor")
			continue
		}

		absPath, err := filepath.Abs(descriptorPath)
		if err != nil {
			absPath = descriptorPath
		}

		now := s.now().UTC()
		result.Skills = append(result.Skills, Skill{
			ID:          AssignID(source, pluginName, fm.Name),
			Name:        fm.Name,
			Description: fm.Description,
			Version:     fm.Version,
			License:     fm.License,
			Path:        absPath,
			PluginName:  pluginName,
			Source:      source,
			Content:     body,
			Tags:        InferTags(fm.Name, fm.Description, pluginName),
			InstalledAt: now,
			UpdatedAt:   now,
		})
	}
}

// scanMarketplaces adds the marketplace enumeration layer:
// <marketplacesDir>/<marketplace>/plugins/<plugin>/skills/. Absence at any
// level is non-fatal and contributes zero candidates from that branch.
func (s *Scanner) scanMarketplaces(ctx context.Context, result *Result) {
	marketplaces, err := os.ReadDir(s.marketplacesDir)
	if err != nil {
		if !os.IsNotExist(err) {
			result.Warnings = append(result.Warnings, &RootUnavailableError{Root: s.marketplacesDir, Err: err})
		}
		logger.G(ctx).WithField("dir", s.marketplacesDir).WithError(err).Debug("skipping unavailable marketplaces root")
		return
	}

	for _, marketplace := range marketplaces {
		if !marketplace.IsDir() {
			continue
		}

		pluginsDir := filepath.Join(s.marketplacesDir, marketplace.Name(), "plugins")
		plugins, err := os.ReadDir(pluginsDir)
		if err != nil {
			continue
		}

		for _, plugin := range plugins {
			if !plugin.IsDir() {
				continue
			}

			skillsDir := filepath.Join(pluginsDir, plugin.Name(), "skills")
			s.scanSkillsDir(ctx, skillsDir, SourceOfficial, plugin.Name(), result)
		}
	}
}
