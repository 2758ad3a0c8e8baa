package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateToken returns n bytes from crypto/rand encoded as unpadded
// base64url, suitable for cookies, URLs and form fields.
func GenerateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
