// Package cryptox implements password hashing for stored credentials:
// salted one-way derivation and constant-time verification.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/dmitrijs2005/matchly/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing these invalidates stored hashes, so they are
// fixed constants rather than configuration.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	keyLength    = 32

	// SaltLength is the size of the per-credential random salt.
	SaltLength = 16
)

// GenerateSalt returns a new cryptographically random salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, keyLength)
}

// DerivePassword generates a random salt and derives a one-way hash of the
// password with argon2id. Two calls with the same password produce different
// salts and therefore different hashes.
func DerivePassword(password []byte) (hash, salt []byte, err error) {
	salt, err = GenerateSalt()
	if err != nil {
		return nil, nil, err
	}
	return deriveKey(password, salt), salt, nil
}

// VerifyPassword recomputes the hash from the candidate password and the
// stored salt and compares it to the stored hash in constant time.
//
// Stored values of unexpected length yield common.ErrCorruptCredential,
// which callers must keep distinct from a plain mismatch.
func VerifyPassword(password, hash, salt []byte) (bool, error) {
	if len(hash) != keyLength || len(salt) != SaltLength {
		return false, common.ErrCorruptCredential
	}
	candidate := deriveKey(password, salt)
	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}
