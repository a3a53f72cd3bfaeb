package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

// Fixed derivation parameters. Hashing must stay a pure function of the
// plaintext: stored hashes are verified by recomputing and comparing, so a
// per-password random salt cannot be used here.
const (
	iterations = 10_000
	keyLength  = 32
)

var salt = []byte("inventory-api/v1")

type Hasher struct{}

func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash derives a storable hash from the plaintext. Deterministic: the same
// input always yields the same output.
func (h *Hasher) Hash(plaintext string) string {
	key := pbkdf2.Key([]byte(plaintext), salt, iterations, keyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// Verify recomputes the hash for the plaintext and compares it with the
// stored value in constant time.
func (h *Hasher) Verify(plaintext string, hash string) bool {
	computed := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
