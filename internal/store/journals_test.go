package store

import (
	"testing"

	"github.com/rubymeaddows/Ravensandquill/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(owner, title string) *model.Journal {
	return &model.Journal{
		UserEmail:    owner,
		Title:        title,
		Author:       "Emily Brontë",
		Tags:         model.StringSlice{"gothic", "moors"},
		Status:       "finished",
		RatingCrowns: 5,
		Reflection:   "Wild and strange.",
	}
}

func TestJournalCreateAssignsID(t *testing.T) {
	s := NewJournalStore(testDB(t))

	j := newEntry("a@x.com", "Wuthering Heights")
	require.NoError(t, s.Create(j))
	assert.NotEmpty(t, j.ID)
}

func TestJournalOwnershipConflation(t *testing.T) {
	s := NewJournalStore(testDB(t))

	j := newEntry("a@x.com", "Wuthering Heights")
	require.NoError(t, s.Create(j))

	// Owner reads back exactly what was submitted
	got, err := s.FindOwned(j.ID, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 5, got.RatingCrowns)
	assert.Equal(t, model.StringSlice{"gothic", "moors"}, got.Tags)

	// A foreign reader and a missing ID fail with the same error,
	// leaving no way to tell whether the entry exists
	_, foreignErr := s.FindOwned(j.ID, "b@x.com")
	_, missingErr := s.FindOwned("no-such-id", "b@x.com")
	assert.ErrorIs(t, foreignErr, ErrNotFound)
	assert.Equal(t, missingErr, foreignErr)

	assert.ErrorIs(t, s.Update(j.ID, "b@x.com", newEntry("b@x.com", "Stolen")), ErrNotFound)
	assert.ErrorIs(t, s.Delete(j.ID, "b@x.com"), ErrNotFound)

	// Nothing was touched
	got, err = s.FindOwned(j.ID, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Wuthering Heights", got.Title)
}

func TestJournalUpdateReplacesFields(t *testing.T) {
	s := NewJournalStore(testDB(t))

	j := newEntry("a@x.com", "Wuthering Heights")
	require.NoError(t, s.Create(j))

	upd := newEntry("a@x.com", "Wuthering Heights, reread")
	upd.RatingCrowns = 3
	upd.IsHidden = true
	upd.Reflection = ""

	require.NoError(t, s.Update(j.ID, "a@x.com", upd))

	got, err := s.FindOwned(j.ID, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Wuthering Heights, reread", got.Title)
	assert.Equal(t, 3, got.RatingCrowns)
	assert.True(t, got.IsHidden)
	// Edits replace every enumerated field, including with zero values
	assert.Empty(t, got.Reflection)
}

func TestJournalDelete(t *testing.T) {
	s := NewJournalStore(testDB(t))

	j := newEntry("a@x.com", "Wuthering Heights")
	require.NoError(t, s.Create(j))

	require.NoError(t, s.Delete(j.ID, "a@x.com"))

	_, err := s.FindOwned(j.ID, "a@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJournalListAndFirstByOwner(t *testing.T) {
	s := NewJournalStore(testDB(t))

	require.NoError(t, s.Create(newEntry("a@x.com", "One")))
	require.NoError(t, s.Create(newEntry("a@x.com", "Two")))
	require.NoError(t, s.Create(newEntry("b@x.com", "Theirs")))

	js, err := s.ListByOwner("a@x.com")
	require.NoError(t, err)
	assert.Len(t, js, 2)
	for _, j := range js {
		assert.Equal(t, "a@x.com", j.UserEmail)
	}

	first, err := s.FirstByOwner("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", first.UserEmail)

	_, err = s.FirstByOwner("c@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
