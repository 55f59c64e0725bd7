package auth

import (
	"golang.org/x/crypto/bcrypt"

	"portal/internal/domain/service"
)

// bcryptHasher is the forward-migration scheme. It only becomes the
// active hasher once every stored row has been re-hashed; until then
// the legacy MD5 hasher remains the default, because a salted digest
// can never match the existing store format.
type bcryptHasher struct{}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
