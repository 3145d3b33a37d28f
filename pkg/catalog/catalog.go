// Package catalog serves the built-in skill store: a curated list of
// installable skills from official and community GitHub repositories,
// searchable by text, category, source, and glob patterns.
package catalog

import (
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Entry is one installable skill in the store catalog.
type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	GithubURL   string   `json:"githubUrl"`
	Stars       int      `json:"stars"`
	Downloads   int      `json:"downloads"`
	Rating      float64  `json:"rating"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Source      string   `json:"source"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Category groups entries for browsing, with a precomputed count.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// Sort orders supported by Search.
const (
	SortPopular   = "popular"
	SortRated     = "rated"
	SortNewest    = "newest"
	SortDownloads = "downloads"
)

// Query filters and pages a catalog search. A zero Query returns the
// first page of everything sorted by stars.
type Query struct {
	Text     string
	Pattern  string // glob matched against entry names, e.g. "anthropic-*"
	Category string
	Source   string
	Sort     string
	Page     int
	PageSize int
}

// Result is one page of matching entries.
type Result struct {
	Entries  []Entry `json:"skills"`
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	HasMore  bool    `json:"hasMore"`
}

const defaultPageSize = 20

// ErrNotFound is returned by Lookup for unknown entry IDs.
var ErrNotFound = errors.New("catalog entry not found")

// Entries returns a copy of the full catalog.
func Entries() []Entry {
	out := make([]Entry, len(allEntries))
	copy(out, allEntries)
	return out
}

// Categories lists the browse categories with live counts.
func Categories() []Category {
	counts := make(map[string]int, len(allEntries))
	for _, e := range allEntries {
		counts[e.Category]++
	}
	cats := []Category{{ID: "all", Name: "All Skills", Icon: "Star", Count: len(allEntries)}}
	for _, c := range categoryDefs {
		cats = append(cats, Category{ID: c.ID, Name: c.Name, Icon: c.Icon, Count: counts[c.ID]})
	}
	return cats
}

// Lookup returns the entry with the given ID.
func Lookup(id string) (Entry, error) {
	for _, e := range allEntries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, errors.Wrap(ErrNotFound, id)
}

// Popular returns the top entries by stars.
func Popular(limit int) []Entry {
	entries := Entries()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Stars > entries[j].Stars })
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

// Search filters, sorts, and pages the catalog. An invalid glob pattern
// is an error; everything else degrades to "match all".
func Search(q Query) (Result, error) {
	var matcher glob.Glob
	if q.Pattern != "" {
		var err error
		matcher, err = glob.Compile(q.Pattern)
		if err != nil {
			return Result{}, errors.Wrapf(err, "invalid name pattern %q", q.Pattern)
		}
	}

	var filtered []Entry
	for _, e := range allEntries {
		if q.Text != "" && !matchesText(e, q.Text) {
			continue
		}
		if matcher != nil && !matcher.Match(strings.ToLower(e.Name)) && !matcher.Match(e.ID) {
			continue
		}
		if q.Category != "" && q.Category != "all" && e.Category != q.Category {
			continue
		}
		if q.Source != "" && q.Source != "all" && e.Source != q.Source {
			continue
		}
		filtered = append(filtered, e)
	}

	sortEntries(filtered, q.Sort)

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Result{
		Entries:  filtered[start:end],
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  end < total,
	}, nil
}

func matchesText(e Entry, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(e.Name), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle) ||
		strings.Contains(strings.ToLower(e.Author), needle) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func sortEntries(entries []Entry, order string) {
	switch order {
	case SortRated:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Rating > entries[j].Rating })
	case SortNewest:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].UpdatedAt > entries[j].UpdatedAt })
	case SortDownloads:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Downloads > entries[j].Downloads })
	default:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Stars > entries[j].Stars })
	}
}

var categoryDefs = []Category{
	{ID: "documents", Name: "Documents", Icon: "FileText"},
	{ID: "development", Name: "Development", Icon: "Code"},
	{ID: "design", Name: "Design", Icon: "Palette"},
	{ID: "testing", Name: "Testing", Icon: "FlaskConical"},
	{ID: "data", Name: "Data & Science", Icon: "BarChart3"},
	{ID: "security", Name: "Security", Icon: "Shield"},
	{ID: "business", Name: "Business", Icon: "Briefcase"},
	{ID: "mobile", Name: "Mobile", Icon: "Smartphone"},
	{ID: "ai", Name: "AI & Agents", Icon: "Bot"},
}
