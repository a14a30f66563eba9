package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("scribe@ravens.example"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("long-enough-key"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
}

func TestPasswordConfirmValidator(t *testing.T) {
	assert.NoError(t, PasswordConfirmValidator("parchment-key", "parchment-key"))
	assert.ErrorIs(t, PasswordConfirmValidator("parchment-key", "different"), ErrPasswordMismatch)
	assert.ErrorIs(t, PasswordConfirmValidator("short", "short"), ErrPasswordTooShort)
}
