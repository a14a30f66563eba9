package store

import (
	"testing"

	"github.com/rubymeaddows/Ravensandquill/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseProfile() *model.Profile {
	return &model.Profile{
		Email:    "a@x.com",
		Name:     "Varya",
		Title:    "Keeper of Margins",
		Quote:    "We live as we dream--alone.",
		Bio:      "Reader of gothic novels.",
		Joined:   "October 3, 2024",
		ImageURL: "/static/profile_icon.png",
		Thinkers: "Brontë, Shelley",
	}
}

func TestProfileUpsertAndFind(t *testing.T) {
	s := NewProfileStore(testDB(t))

	_, err := s.FindByEmail("a@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Upsert(baseProfile()))

	got, err := s.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Varya", got.Name)
}

func TestProfileUpsertReplacesWholeDocument(t *testing.T) {
	s := NewProfileStore(testDB(t))

	require.NoError(t, s.Upsert(baseProfile()))

	replacement := &model.Profile{
		Email:  "a@x.com",
		Name:   "V.",
		Title:  "Archivist",
		Bio:    "Rewritten.",
		Joined: "November 1, 2024",
	}
	require.NoError(t, s.Upsert(replacement))

	got, err := s.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "V.", got.Name)
	// Creation is a full overwrite: fields absent from the new
	// document are gone
	assert.Empty(t, got.Thinkers)
	assert.Empty(t, got.Quote)
}

func TestProfileUpdateMergesOnlySubmittedFields(t *testing.T) {
	s := NewProfileStore(testDB(t))

	require.NoError(t, s.Upsert(baseProfile()))

	require.NoError(t, s.Update("a@x.com", ProfileUpdate{
		Title:  "Head Archivist",
		Relics: "A brass compass",
	}))

	got, err := s.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Head Archivist", got.Title)
	assert.Equal(t, "A brass compass", got.Relics)
	// Untouched fields keep their stored values
	assert.Equal(t, "Varya", got.Name)
	assert.Equal(t, "Brontë, Shelley", got.Thinkers)
}

func TestProfileUpdateMissingProfile(t *testing.T) {
	s := NewProfileStore(testDB(t))

	err := s.Update("ghost@x.com", ProfileUpdate{Name: "Nobody"})
	assert.ErrorIs(t, err, ErrNotFound)

	// An all-blank form still reports the missing profile
	assert.ErrorIs(t, s.Update("ghost@x.com", ProfileUpdate{}), ErrNotFound)
}

func TestProfileUpdateAllBlankIsNoOp(t *testing.T) {
	s := NewProfileStore(testDB(t))

	require.NoError(t, s.Upsert(baseProfile()))
	require.NoError(t, s.Update("a@x.com", ProfileUpdate{}))

	got, err := s.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Varya", got.Name)
	assert.Equal(t, "Keeper of Margins", got.Title)
}
