package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateRefreshToken returns an opaque random token string. Refresh tokens
// carry no claims; the ledger row is the source of truth.
func GenerateRefreshToken() (string, error) {
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
