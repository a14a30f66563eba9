package store

import (
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rubymeaddows/Ravensandquill/internal/model"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type JournalStore struct {
	db *gorm.DB
}

func NewJournalStore(db *gorm.DB) *JournalStore {
	return &JournalStore{db: db}
}

// Create stores a new journal entry and generates its ID.
func (s *JournalStore) Create(j *model.Journal) error {
	if j.ID == "" {
		id, err := gonanoid.Generate(idCharset, 20)
		if err != nil {
			return err
		}

		j.ID = id
	}

	return s.db.Create(j).Error
}

// FindOwned fetches a journal entry only if it belongs to email. A
// foreign entry and a missing one both come back as ErrNotFound.
func (s *JournalStore) FindOwned(id, email string) (*model.Journal, error) {
	var j model.Journal

	err := s.db.Where("id = ? AND user_email = ?", id, email).First(&j).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &j, nil
}

// Update replaces the enumerated editable fields of an owned entry.
func (s *JournalStore) Update(id, email string, j *model.Journal) error {
	r := s.db.Model(model.Journal{}).
		Where("id = ? AND user_email = ?", id, email).
		Updates(map[string]any{
			"title":               j.Title,
			"author":              j.Author,
			"cover_image_url":     j.CoverImageURL,
			"tags":                j.Tags,
			"theme":               j.Theme,
			"date_started":        j.DateStarted,
			"date_finished":       j.DateFinished,
			"status":              j.Status,
			"is_hidden":           j.IsHidden,
			"rating_crowns":       j.RatingCrowns,
			"quotes":              j.Quotes,
			"reflection":          j.Reflection,
			"thoughts_characters": j.ThoughtsCharacters,
			"thoughts_plot":       j.ThoughtsPlot,
		})
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an owned entry, with the same existence/ownership
// conflation as FindOwned.
func (s *JournalStore) Delete(id, email string) error {
	r := s.db.Where("id = ? AND user_email = ?", id, email).Delete(model.Journal{})
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *JournalStore) ListByOwner(email string) ([]model.Journal, error) {
	var js []model.Journal

	err := s.db.Where("user_email = ?", email).Find(&js).Error
	if err != nil {
		return nil, err
	}

	return js, nil
}

// FirstByOwner returns any one entry of the owner, used by the
// /reading-journal landing redirect.
func (s *JournalStore) FirstByOwner(email string) (*model.Journal, error) {
	var j model.Journal

	err := s.db.Where("user_email = ?", email).First(&j).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &j, nil
}
