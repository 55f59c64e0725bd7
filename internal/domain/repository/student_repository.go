// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"
)

// ErrStudentNotFound is a domain-specific error returned when a credential row is absent.
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository defines the operations both processes perform
// against the shared credential table.
type StudentRepository interface {
	// FindByUsername retrieves a single student by their exact username.
	FindByUsername(ctx context.Context, username string) (*entity.Student, error)

	// FindByEmail retrieves a single student by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Student, error)

	// UpdatePasswordHash overwrites the stored digest for a student.
	// Concurrent updates to the same row are last-write-wins; no guarantee
	// beyond single-row atomicity is provided or needed.
	UpdatePasswordHash(ctx context.Context, studentID uint, passwordHash string) error
}
