package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateVerificationToken returns 32 random bytes hex encoded.
func GenerateVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
