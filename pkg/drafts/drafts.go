// Package drafts turns web pages and ad-hoc text into skill drafts and
// publishes finished drafts into the local skills directory.
package drafts

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/appstate"
	"github.com/skillpocket/skillpocket/pkg/logger"
	"github.com/skillpocket/skillpocket/pkg/skills"
)

const (
	fetchAttempts   = 3
	fetchDelay      = 500 * time.Millisecond
	maxFetchedBytes = 4 << 20
)

// ErrEmptyDraft is returned when a draft has no name to publish under.
var ErrEmptyDraft = errors.New("draft has no name")

// Fetcher downloads pages and converts them into drafts.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a fetcher with a sane default timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// FromURL fetches a page, converts its HTML to Markdown, and wraps the
// result in a draft named after the page. Transient fetch failures are
// retried with backoff.
func (f *Fetcher) FromURL(ctx context.Context, rawURL string) (appstate.Draft, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return appstate.Draft{}, errors.Wrap(err, "invalid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return appstate.Draft{}, errors.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}

	var body string
	err = retry.Do(
		func() error {
			var fetchErr error
			body, fetchErr = f.fetch(ctx, rawURL)
			return fetchErr
		},
		retry.Attempts(fetchAttempts),
		retry.Delay(fetchDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.G(ctx).WithError(err).WithField("attempt", n+1).Warn("retrying page fetch")
		}),
	)
	if err != nil {
		return appstate.Draft{}, errors.Wrapf(err, "failed to fetch %s", rawURL)
	}

	content := convertToMarkdown(ctx, body)
	name := draftName(parsed)
	description := firstLine(content)
	return appstate.NewDraft(name, description, content, rawURL), nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "text/") &&
		!strings.Contains(contentType, "html") &&
		!strings.Contains(contentType, "markdown") {
		return "", errors.Errorf("unsupported content type: %s", contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchedBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func convertToMarkdown(ctx context.Context, htmlContent string) string {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(htmlContent)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("failed to convert HTML to Markdown, keeping raw content")
		return htmlContent
	}
	return markdown
}

func draftName(u *url.URL) string {
	base := strings.Trim(u.Path, "/")
	if base == "" {
		return u.Hostname()
	}
	segments := strings.Split(base, "/")
	name := segments[len(segments)-1]
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return u.Hostname()
	}
	return name
}

func firstLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if line != "" {
			if len(line) > 200 {
				line = line[:200]
			}
			return line
		}
	}
	return ""
}

// Publish writes a draft as a SKILL.md under skillsDir, creating one
// directory per skill. The directory name is the draft name lowercased
// with whitespace collapsed, the same normalization skill IDs use.
func Publish(draft appstate.Draft, skillsDir string) (string, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return "", ErrEmptyDraft
	}

	slug := strings.TrimPrefix(skills.AssignID(skills.SourceLocal, "", draft.Name), "local-local-")
	dir := filepath.Join(skillsDir, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create skill directory")
	}

	descriptor, err := skills.WriteDescriptor(skills.Frontmatter{
		Name:        draft.Name,
		Description: draft.Description,
	}, draft.Content)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "SKILL.md")
	if err := os.WriteFile(path, descriptor, 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}
