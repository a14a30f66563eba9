package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimedTokenRoundtrip(t *testing.T) {
	tt := NewTimedToken("test-secret")

	token, err := tt.Sign("scribe@ravens.example", PurposePasswordReset, ResetMaxAge)
	require.NoError(t, err)

	email, err := tt.Verify(token, PurposePasswordReset)
	require.NoError(t, err)
	assert.Equal(t, "scribe@ravens.example", email)
}

func TestTimedTokenPurposeNamespacing(t *testing.T) {
	tt := NewTimedToken("test-secret")

	// A fresh, well-formed reset token must not pass as a session
	token, err := tt.Sign("scribe@ravens.example", PurposePasswordReset, ResetMaxAge)
	require.NoError(t, err)

	_, err = tt.Verify(token, PurposeSession)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	token, err = tt.Sign("scribe@ravens.example", PurposeSession, SessionMaxAge)
	require.NoError(t, err)

	_, err = tt.Verify(token, PurposePasswordReset)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTimedTokenExpiry(t *testing.T) {
	tt := NewTimedToken("test-secret")

	token, err := tt.Sign("scribe@ravens.example", PurposePasswordReset, -time.Minute)
	require.NoError(t, err)

	_, err = tt.Verify(token, PurposePasswordReset)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTimedTokenTamperAndKeyMismatch(t *testing.T) {
	tt := NewTimedToken("test-secret")

	token, err := tt.Sign("scribe@ravens.example", PurposeSession, SessionMaxAge)
	require.NoError(t, err)

	_, err = tt.Verify(token+"x", PurposeSession)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = tt.Verify("garbage", PurposeSession)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	other := NewTimedToken("different-secret")
	_, err = other.Verify(token, PurposeSession)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenIsOpaqueAndUnique(t *testing.T) {
	t1, err := NewVerifyToken()
	require.NoError(t, err)

	t2, err := NewVerifyToken()
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
	assert.NotContains(t, t1, "+")
	assert.NotContains(t, t1, "/")
	assert.NotContains(t, t1, "=")
}
