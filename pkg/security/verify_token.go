package security

import (
	"crypto/rand"
	"encoding/base64"
)

const verifyTokenSize = 32

// NewVerifyToken generates the opaque URL-safe value stored on an
// account until the verification link is clicked.
func NewVerifyToken() (string, error) {
	b := make([]byte, verifyTokenSize)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
