// Package auth — password hashing.
//
// The credential store keeps a SHA-256 hex digest of each password, and
// login matches (username, digest) in a single SQL predicate. That only
// works because the hash is DETERMINISTIC: the same plaintext always
// produces the same digest, so the lookup needs no per-row comparison.
//
// THE TRADE-OFF:
// No salt and no stretching means equal passwords share a digest and a
// leaked table is vulnerable to rainbow-table attacks. Credential-grade
// hashing (bcrypt/argon2) salts every hash, which would require fetching
// the row first and verifying in application code — a different login
// contract than the one implemented here.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// PasswordHasher turns a plaintext password into its stored digest.
//
// It's a struct (not a free function) so services receive it as an injected
// dependency, same as the repository — tests can construct it locally and
// the wiring stays uniform.
type PasswordHasher struct{}

// NewPasswordHasher creates a PasswordHasher.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// Hash returns the lowercase hex SHA-256 digest of the UTF-8 bytes of
// plaintext. Pure and deterministic: equal inputs always produce equal
// digests; the digest is not reversible.
func (p *PasswordHasher) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
