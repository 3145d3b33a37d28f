// Package reveal shows a skill's folder to the user: first in the
// platform file manager with the entry selected, then a plain open of the
// containing directory, and as a last resort the path is copied to the
// clipboard so the user can navigate there themselves.
package reveal

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/logger"
)

// Outcome reports which fallback level succeeded.
type Outcome string

const (
	// OutcomeRevealed means the file manager opened with the entry selected.
	OutcomeRevealed Outcome = "revealed"
	// OutcomeOpened means the containing directory was opened.
	OutcomeOpened Outcome = "opened"
	// OutcomeCopied means the path was copied to the clipboard.
	OutcomeCopied Outcome = "copied"
)

// ErrPathMissing is returned when the target does not exist on disk.
var ErrPathMissing = errors.New("path does not exist")

type runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

type clipboardWriter func(text string) error

// Revealer resolves a path into a user-visible location. The zero
// dependencies are replaced in tests.
type Revealer struct {
	goos string
	run  runner
	copy clipboardWriter
}

// New returns a revealer for the current platform.
func New() *Revealer {
	return &Revealer{
		goos: runtime.GOOS,
		run:  execRunner,
		copy: clipboard.WriteAll,
	}
}

// Show reveals path using the best available mechanism and reports which
// one worked. Each failed level is logged and the next one tried.
func (r *Revealer) Show(ctx context.Context, path string) (Outcome, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(ErrPathMissing, path)
		}
		return "", errors.Wrapf(err, "failed to stat %s", path)
	}

	log := logger.G(ctx).WithField("path", path)

	if err := r.revealInFileManager(ctx, path); err == nil {
		return OutcomeRevealed, nil
	} else {
		log.WithError(err).Debug("file manager reveal failed")
	}

	if err := r.openDir(ctx, filepath.Dir(path)); err == nil {
		return OutcomeOpened, nil
	} else {
		log.WithError(err).Debug("directory open failed")
	}

	if err := r.copy(path); err != nil {
		return "", errors.Wrap(err, "all reveal mechanisms failed")
	}
	return OutcomeCopied, nil
}

func (r *Revealer) revealInFileManager(ctx context.Context, path string) error {
	switch r.goos {
	case "darwin":
		return r.run(ctx, "open", "-R", path)
	case "windows":
		return r.run(ctx, "explorer", "/select,"+path)
	default:
		// No cross-desktop way to select an entry on Linux; fall through
		// to opening the directory.
		return errors.New("reveal with selection not supported on " + r.goos)
	}
}

func (r *Revealer) openDir(ctx context.Context, dir string) error {
	switch r.goos {
	case "darwin":
		return r.run(ctx, "open", dir)
	case "windows":
		return r.run(ctx, "explorer", dir)
	default:
		return r.run(ctx, "xdg-open", dir)
	}
}
