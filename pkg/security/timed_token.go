package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. A token signed for one purpose never verifies under
// another, so a password-reset link can't be replayed as a session.
const (
	PurposeSession       = "session"
	PurposePasswordReset = "password-reset"
)

const (
	SessionMaxAge = 2 * time.Hour
	ResetMaxAge   = time.Hour
)

var ErrTokenInvalid = errors.New("token expired or invalid")

// TimedToken signs and verifies short-lived tokens carrying an email
// payload. The purpose claim acts as a namespace between token kinds.
type TimedToken struct {
	secret []byte
}

func NewTimedToken(secret string) *TimedToken {
	return &TimedToken{secret: []byte(secret)}
}

func (t *TimedToken) Sign(email, purpose string, maxAge time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email":   email,
		"purpose": purpose,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(maxAge).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the signature, expiry and purpose of a token and
// returns the email it was issued for. Any failure collapses into
// ErrTokenInvalid so callers don't leak why a token was rejected.
func (t *TimedToken) Verify(tokenStr, purpose string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (any, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", tk.Method.Alg())
		}

		return t.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	if p, _ := claims["purpose"].(string); p != purpose {
		return "", ErrTokenInvalid
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrTokenInvalid
	}

	return email, nil
}
