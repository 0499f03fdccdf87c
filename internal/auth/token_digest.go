package auth

import (
	"crypto/sha256"
	"crypto/subtle"
)

// HashToken returns the SHA-256 digest of a token string. Only digests are
// persisted; the raw refresh token exists server-side just long enough to
// be handed back to the caller.
func HashToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

// EqualDigests compares two token digests in constant time.
func EqualDigests(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
