// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studentRepository implements the domain.StudentRepository interface using GORM.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
// It returns the repository as a domain.StudentRepository interface, adhering to dependency inversion.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

// FindByUsername retrieves a single student by their exact username.
// The lookup is case-sensitive; sanitization upstream guarantees the
// username is already in canonical form.
func (repo *studentRepository) FindByUsername(ctx context.Context, username string) (*entity.Student, error) {
	var studentM model.StudentModel

	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&studentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by username")
	}

	return toStudentDomain(&studentM), nil
}

// FindByEmail retrieves a single student by their email address.
func (repo *studentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	var studentM model.StudentModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&studentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by email")
	}

	return toStudentDomain(&studentM), nil
}

// UpdatePasswordHash overwrites the stored digest for a student.
// Last-write-wins on concurrent updates; the row update itself is atomic.
func (repo *studentRepository) UpdatePasswordHash(ctx context.Context, studentID uint, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("id = ?", studentID).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStudentDomain converts a GORM StudentModel to a domain Student entity.
func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	return &entity.Student{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
