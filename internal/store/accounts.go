// Package store wraps the database collections behind typed stores,
// one per record kind. All lookups are keyed or indexed, never scans.
package store

import (
	"errors"
	"strings"
	"time"

	"github.com/rubymeaddows/Ravensandquill/internal/model"
	"github.com/rubymeaddows/Ravensandquill/pkg/security"
	"github.com/rubymeaddows/Ravensandquill/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrDuplicateAccount = errors.New("an account with this email already exists")
	ErrNoAccount        = errors.New("no account found")
	ErrBadPassword      = errors.New("incorrect password")

	// ErrNotFound deliberately covers both "doesn't exist" and "not
	// yours" so a response can't leak which one it was
	ErrNotFound = errors.New("not found or access denied")
)

// NormalizeEmail lowercases and trims an email before it is used as a
// document key. Every store call expects an already normalized email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type AccountStore struct {
	db    *gorm.DB
	argon *security.ArgonHash
}

func NewAccountStore(db *gorm.DB, argon *security.ArgonHash) *AccountStore {
	return &AccountStore{db: db, argon: argon}
}

// Create registers a new unverified account. The plaintext password is
// hashed before anything touches the database and is never stored or
// logged. Returns ErrDuplicateAccount if the email key is taken.
func (s *AccountStore) Create(email, password string) (*model.Account, error) {
	var found bool

	r := s.db.Model(model.Account{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&found)
	if r.Error != nil {
		return nil, r.Error
	}

	if found {
		return nil, ErrDuplicateAccount
	}

	hash, err := s.argon.GenerateFromPassword(password)
	if err != nil {
		return nil, err
	}

	token, err := security.NewVerifyToken()
	if err != nil {
		return nil, err
	}

	acc := &model.Account{
		Email:        email,
		PasswordHash: hash,
		Joined:       util.JoinedDate(time.Now()),
		Verified:     false,
		VerifyToken:  &token,
	}

	if err := s.db.Create(acc).Error; err != nil {
		return nil, err
	}

	return acc, nil
}

func (s *AccountStore) FindByEmail(email string) (*model.Account, error) {
	var acc model.Account

	err := s.db.Where("email = ?", email).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoAccount
		}

		return nil, err
	}

	return &acc, nil
}

// Authenticate checks a login attempt. ErrNoAccount and ErrBadPassword
// are distinct so the login page can tell the user which step failed.
func (s *AccountStore) Authenticate(email, password string) (*model.Account, error) {
	acc, err := s.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	ok, err := s.argon.VerifyPasswd(password, acc.PasswordHash)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrBadPassword
	}

	return acc, nil
}

// SetPassword overwrites the stored hash unconditionally. Only called
// after a reset token has been verified.
func (s *AccountStore) SetPassword(email, password string) error {
	hash, err := s.argon.GenerateFromPassword(password)
	if err != nil {
		return err
	}

	r := s.db.Model(model.Account{}).
		Where("email = ?", email).
		Update("password_hash", hash)
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected == 0 {
		return ErrNoAccount
	}

	return nil
}

// VerifyByToken resolves a verification link through the indexed
// verify_token column, marks the account verified and clears the token
// so the link is single-use. Returns the verified email.
func (s *AccountStore) VerifyByToken(token string) (string, error) {
	if token == "" {
		return "", ErrNotFound
	}

	var acc model.Account

	err := s.db.Where("verify_token = ?", token).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}

		return "", err
	}

	err = s.db.Model(model.Account{}).
		Where("email = ?", acc.Email).
		Updates(map[string]any{
			"verified":     true,
			"verify_token": nil,
		}).Error
	if err != nil {
		return "", err
	}

	return acc.Email, nil
}
