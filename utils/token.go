package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSessionToken returns a 32-byte cryptographically random token in
// url-safe base64 without padding.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
