package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesCountsAddUp(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "all", cats[0].ID)
	assert.Equal(t, len(allEntries), cats[0].Count)

	sum := 0
	for _, c := range cats[1:] {
		sum += c.Count
	}
	assert.Equal(t, cats[0].Count, sum)
}

func TestLookup(t *testing.T) {
	entry, err := Lookup("anthropic-pdf")
	require.NoError(t, err)
	assert.Equal(t, "PDF Toolkit (pdf)", entry.Name)

	_, err = Lookup("no-such-skill")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchDefaultsSortByStars(t *testing.T) {
	res, err := Search(Query{})
	require.NoError(t, err)
	assert.Equal(t, len(allEntries), res.Total)
	require.NotEmpty(t, res.Entries)
	assert.Equal(t, "community-superpowers", res.Entries[0].ID)

	for i := 1; i < len(res.Entries); i++ {
		assert.GreaterOrEqual(t, res.Entries[i-1].Stars, res.Entries[i].Stars)
	}
}

func TestSearchTextMatchesTagsAndAuthor(t *testing.T) {
	res, err := Search(Query{Text: "playwright"})
	require.NoError(t, err)
	ids := entryIDs(res.Entries)
	assert.Contains(t, ids, "anthropic-webapp-testing")
	assert.Contains(t, ids, "community-playwright")

	res, err = Search(Query{Text: "obra"})
	require.NoError(t, err)
	assert.Len(t, res.Entries, 2)
}

func TestSearchCategoryAndSourceFilters(t *testing.T) {
	res, err := Search(Query{Category: "documents"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Entries)
	for _, e := range res.Entries {
		assert.Equal(t, "documents", e.Category)
	}

	res, err = Search(Query{Source: "community"})
	require.NoError(t, err)
	for _, e := range res.Entries {
		assert.Equal(t, "community", e.Source)
	}
}

func TestSearchGlobPattern(t *testing.T) {
	res, err := Search(Query{Pattern: "anthropic-*"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Entries)
	for _, e := range res.Entries {
		assert.Contains(t, e.ID, "anthropic-")
	}

	_, err = Search(Query{Pattern: "["})
	assert.Error(t, err)
}

func TestSearchSortOrders(t *testing.T) {
	res, err := Search(Query{Sort: SortDownloads})
	require.NoError(t, err)
	for i := 1; i < len(res.Entries); i++ {
		assert.GreaterOrEqual(t, res.Entries[i-1].Downloads, res.Entries[i].Downloads)
	}

	res, err = Search(Query{Sort: SortRated})
	require.NoError(t, err)
	for i := 1; i < len(res.Entries); i++ {
		assert.GreaterOrEqual(t, res.Entries[i-1].Rating, res.Entries[i].Rating)
	}

	res, err = Search(Query{Sort: SortNewest})
	require.NoError(t, err)
	for i := 1; i < len(res.Entries); i++ {
		assert.GreaterOrEqual(t, res.Entries[i-1].UpdatedAt, res.Entries[i].UpdatedAt)
	}
}

func TestSearchPagination(t *testing.T) {
	first, err := Search(Query{PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, first.Entries, 5)
	assert.True(t, first.HasMore)

	second, err := Search(Query{Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, second.Entries, 5)
	assert.NotEqual(t, entryIDs(first.Entries), entryIDs(second.Entries))

	far, err := Search(Query{Page: 100, PageSize: 5})
	require.NoError(t, err)
	assert.Empty(t, far.Entries)
	assert.False(t, far.HasMore)
}

func TestPopular(t *testing.T) {
	top := Popular(3)
	require.Len(t, top, 3)
	assert.Equal(t, "community-superpowers", top[0].ID)
	assert.Equal(t, "anthropic-pdf", top[1].ID)
}

func entryIDs(entries []Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}
