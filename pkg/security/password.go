package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

// HashPassword returns the base64-encoded SHA-256 digest of the password.
// The scheme is deterministic and unsalted: equal passwords always produce
// equal digests. That matches the stored credential format this service
// inherited; migrating to a salted KDF requires re-hashing every stored
// digest at next login.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// VerifyPassword reports whether the password hashes to the stored digest.
func VerifyPassword(password, digest string) bool {
	if password == "" || digest == "" {
		return false
	}
	sum := sha256.Sum256([]byte(password))
	stored, err := base64.StdEncoding.DecodeString(digest)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(sum[:], stored) == 1
}
