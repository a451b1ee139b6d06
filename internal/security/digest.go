package security

import (
	"crypto/sha256"
	"encoding/base64"
)

// Digest computes the credential sent over the wire: an unsalted SHA-256 of
// the plaintext password, base64-encoded. The browser computes the same value
// before transmission and the server stores it verbatim, so both sides must
// agree on this exact construction.
func Digest(plain string) string {
	sum := sha256.Sum256([]byte(plain))

	return base64.StdEncoding.EncodeToString(sum[:])
}
