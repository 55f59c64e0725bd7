// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
//
// The legacy implementation is a deterministic, unsalted digest: the
// same plaintext always yields the same stored string, because two
// independent processes (the portal and the RADIUS authenticate
// command) must compute identical digests against one shared store.
// That determinism is a compatibility constraint, not a free choice;
// swapping the scheme without re-hashing every row would invalidate all
// credentials. The interface is the migration seam for a future salted
// scheme.
type PasswordHasher interface {
	// Hash turns a plaintext password into the stored representation.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored digest.
	Check(password, hash string) bool
}
