package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// newResetToken generates a password-reset token and the hash under which it
// is stored. Only the hash ever touches the database; the raw token goes out
// in the reset link.
func newResetToken() (token, hash string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	token = hex.EncodeToString(buf)
	return token, hashResetToken(token), nil
}

// hashResetToken returns the storage form of a reset token
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
