package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashWithSecret returns the hex SHA-256 digest of value concatenated with
// the server-wide secret. Passwords are stored as
// HashWithSecret(password, secret); the login token is
// HashWithSecret(email, secret), so it is deterministic per email and carries
// no expiry or session state.
func HashWithSecret(value, secret string) string {
	sum := sha256.Sum256([]byte(value + secret))
	return hex.EncodeToString(sum[:])
}
