// Package catalog loads the static quote and blog content. Files are
// re-read on every request so edits on disk show up immediately; the
// corpus is small enough that the repeated I/O doesn't matter.
package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/rubymeaddows/Ravensandquill/internal/model"
)

const SamplePageSize = 20

// Catalog points at the on-disk content directory. It holds no cached
// state.
type Catalog struct {
	Dir string
}

func New(dir string) *Catalog {
	return &Catalog{Dir: dir}
}

// LoadQuotes parses every *.csv file in the data directory into quote
// records. Columns are matched by header name (Quote, Author, Tag);
// missing columns default to the empty string.
func (cat *Catalog) LoadQuotes() ([]model.Quote, error) {
	entries, err := os.ReadDir(cat.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory, %w", err)
	}

	var quotes []model.Quote

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}

		f, err := os.Open(filepath.Join(cat.Dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to open %s, %w", entry.Name(), err)
		}

		qs, err := parseQuotes(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s, %w", entry.Name(), err)
		}

		quotes = append(quotes, qs...)
	}

	return quotes, nil
}

func parseQuotes(r io.Reader) ([]model.Quote, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[i])
	}

	var quotes []model.Quote

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, model.Quote{
			Quote:  field(row, "Quote"),
			Author: field(row, "Author"),
			Genre:  strings.ToLower(field(row, "Tag")),
		})
	}

	return quotes, nil
}

// Sample returns up to n quotes picked uniformly without replacement.
func Sample(quotes []model.Quote, n int) []model.Quote {
	if n > len(quotes) {
		n = len(quotes)
	}

	picked := make([]model.Quote, len(quotes))
	copy(picked, quotes)

	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	return picked[:n]
}

// Filter returns every quote whose author contains the author query
// and whose genre contains the genre query, case-insensitive. Empty
// queries match everything, so two empty queries return the full
// corpus in source order.
func Filter(quotes []model.Quote, author, genre string) []model.Quote {
	author = strings.ToLower(author)
	genre = strings.ToLower(genre)

	matched := []model.Quote{}

	for _, q := range quotes {
		if strings.Contains(strings.ToLower(q.Author), author) &&
			strings.Contains(strings.ToLower(q.Genre), genre) {
			matched = append(matched, q)
		}
	}

	return matched
}

// LoadBlogs parses the aesthetics posts, a single JSON object mapping
// stringified integer IDs to blog records.
func (cat *Catalog) LoadBlogs() (map[string]model.Blog, error) {
	raw, err := os.ReadFile(filepath.Join(cat.Dir, "blogs.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read blogs.json, %w", err)
	}

	blogs := map[string]model.Blog{}
	if err := json.Unmarshal(raw, &blogs); err != nil {
		return nil, fmt.Errorf("failed to parse blogs.json, %w", err)
	}

	return blogs, nil
}
