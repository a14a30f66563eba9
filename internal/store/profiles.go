package store

import (
	"errors"

	"github.com/rubymeaddows/Ravensandquill/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// ProfileUpdate enumerates the fields an edit may touch. Only fields
// submitted non-empty replace the stored value, everything else is
// left alone.
type ProfileUpdate struct {
	Name        string
	Title       string
	Quote       string
	Bio         string
	Joined      string
	Thinkers    string
	Allegiances string
	Relics      string
	Annotations string
	Visions     string
}

// Upsert writes the full profile document, replacing any previous one.
func (s *ProfileStore) Upsert(p *model.Profile) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}

func (s *ProfileStore) FindByEmail(email string) (*model.Profile, error) {
	var p model.Profile

	err := s.db.Where("email = ?", email).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &p, nil
}

// Update applies a partial merge of the submitted fields.
func (s *ProfileStore) Update(email string, u ProfileUpdate) error {
	fields := map[string]any{}

	set := func(column, value string) {
		if value != "" {
			fields[column] = value
		}
	}

	set("name", u.Name)
	set("title", u.Title)
	set("quote", u.Quote)
	set("bio", u.Bio)
	set("joined", u.Joined)
	set("thinkers", u.Thinkers)
	set("allegiances", u.Allegiances)
	set("relics", u.Relics)
	set("annotations", u.Annotations)
	set("visions", u.Visions)

	// An all-blank form is a no-op, but a missing profile still reports
	// ErrNotFound so the caller can send the user to the create flow.
	if len(fields) == 0 {
		_, err := s.FindByEmail(email)
		return err
	}

	r := s.db.Model(model.Profile{}).
		Where("email = ?", email).
		Updates(fields)
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
