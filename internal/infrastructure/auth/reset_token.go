package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateResetToken implements domain.TokenService. Reset tokens are opaque
// random values, not JWTs: they are checked against their stored record
// (type, expiry) and consumed on use, so a signature would add nothing.
func (j *JWTServiceImpl) GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
