// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/md5" //nolint:gosec // Legacy store format; every existing row is an unsalted MD5 digest.
	"crypto/subtle"
	"encoding/hex"

	"portal/internal/domain/service"
)

// legacyMD5Hasher computes the digest format the credential store has
// always held: unsalted MD5 of the UTF-8 password bytes, rendered as
// 32 lowercase hex characters.
//
// Determinism here is a hard compatibility constraint. The portal and
// the RADIUS authenticate command run as separate processes with no
// shared runtime, and both must produce byte-for-byte identical digests
// against the same rows. Changing anything about this function (input
// encoding, output casing, length) silently invalidates every stored
// credential; the conformance vectors in the tests pin the format.
type legacyMD5Hasher struct{}

// NewLegacyMD5Hasher is the constructor for legacyMD5Hasher.
func NewLegacyMD5Hasher() service.PasswordHasher {
	return &legacyMD5Hasher{}
}

// Hash returns the lowercase hex MD5 digest of the password. It never
// fails; the error return satisfies the PasswordHasher contract shared
// with schemes that can.
func (h *legacyMD5Hasher) Hash(password string) (string, error) {
	sum := md5.Sum([]byte(password)) //nolint:gosec

	return hex.EncodeToString(sum[:]), nil
}

// Check recomputes the digest and compares it with the stored value.
// The comparison is exact and case-sensitive, matching the store's
// lowercase format.
func (h *legacyMD5Hasher) Check(password, hash string) bool {
	computed, _ := h.Hash(password)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
