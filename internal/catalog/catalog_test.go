package catalog

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rubymeaddows/Ravensandquill/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadQuotesScansEveryCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "classics.csv", "Quote,Author,Tag\nq1,Jane Austen,Classics\nq2,Emily Brontë,Gothic\n")
	writeFile(t, dir, "modern.csv", "Quote,Author,Tag\nq3,William Faulkner,Modernism\n")
	writeFile(t, dir, "notes.txt", "not a csv\n")

	quotes, err := New(dir).LoadQuotes()
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	assert.Equal(t, "Jane Austen", quotes[0].Author)
	// Genres are normalized to lowercase
	assert.Equal(t, "gothic", quotes[1].Genre)
}

func TestLoadQuotesToleratesMissingColumns(t *testing.T) {
	dir := t.TempDir()
	// No Tag column at all, and one short row
	writeFile(t, dir, "bare.csv", "Quote,Author\nq1,Jane Austen\nq2\n")

	quotes, err := New(dir).LoadQuotes()
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, model.Quote{Quote: "q1", Author: "Jane Austen"}, quotes[0])
	assert.Equal(t, model.Quote{Quote: "q2"}, quotes[1])
}

func TestLoadQuotesMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope")).LoadQuotes()
	assert.Error(t, err)
}

func corpus(n int) []model.Quote {
	quotes := make([]model.Quote, n)
	for i := range quotes {
		quotes[i] = model.Quote{
			Quote:  "q" + strconv.Itoa(i),
			Author: "author " + strconv.Itoa(i),
			Genre:  "genre",
		}
	}

	return quotes
}

func TestSampleBoundedWithoutReplacement(t *testing.T) {
	quotes := corpus(25)

	for range 2 {
		picked := Sample(quotes, SamplePageSize)
		assert.Len(t, picked, SamplePageSize)

		seen := map[string]bool{}
		for _, q := range picked {
			assert.False(t, seen[q.Quote], "duplicate %s within one sample", q.Quote)
			seen[q.Quote] = true
		}
	}

	// A small corpus comes back whole
	assert.Len(t, Sample(corpus(5), SamplePageSize), 5)
	assert.Empty(t, Sample(nil, SamplePageSize))
}

func TestSampleLeavesCorpusIntact(t *testing.T) {
	quotes := corpus(25)
	Sample(quotes, SamplePageSize)

	for i, q := range quotes {
		assert.Equal(t, "q"+strconv.Itoa(i), q.Quote)
	}
}

func TestFilterEmptyQueriesReturnEverything(t *testing.T) {
	quotes := corpus(25)

	got := Filter(quotes, "", "")
	assert.Equal(t, quotes, got)
}

func TestFilterMatchesSubstringsCaseInsensitive(t *testing.T) {
	quotes := []model.Quote{
		{Quote: "q1", Author: "Jane Austen", Genre: "classics"},
		{Quote: "q2", Author: "Emily Brontë", Genre: "gothic"},
		{Quote: "q3", Author: "Charlotte Brontë", Genre: "gothic"},
	}

	got := Filter(quotes, "BRONTË", "goth")
	require.Len(t, got, 2)
	assert.Equal(t, "q2", got[0].Quote)
	assert.Equal(t, "q3", got[1].Quote)

	// Both author and genre must match
	assert.Empty(t, Filter(quotes, "Brontë", "classics"))
}

func TestLoadBlogs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blogs.json", `{"1": {"title": "Candlelight", "date": "October 12, 2024", "content": "On margins."}}`)

	blogs, err := New(dir).LoadBlogs()
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Candlelight", blogs["1"].Title)

	_, ok := blogs["2"]
	assert.False(t, ok)
}

func TestLoadBlogsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := New(dir).LoadBlogs()
	assert.Error(t, err)

	writeFile(t, dir, "blogs.json", "{not json")
	_, err = New(dir).LoadBlogs()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse"))
}
