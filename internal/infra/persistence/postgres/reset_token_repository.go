package postgres

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resetTokenRepository implements the domain.ResetTokenRepository interface.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create persists a freshly issued token.
func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.ResetToken) error {
	tokenM := fromResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves a token row by its token value, used or not.
// Validity is the caller's decision; audit rows must stay reachable.
func (repo *resetTokenRepository) FindByToken(ctx context.Context, token uuid.UUID) (*entity.ResetToken, error) {
	var tokenM model.ResetTokenModel

	err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	return toResetTokenDomain(&tokenM), nil
}

// InvalidateActiveByStudentID marks every unused token of a student as
// used. Rows are updated, never deleted, so superseded tokens remain
// auditable.
func (repo *resetTokenRepository) InvalidateActiveByStudentID(ctx context.Context, studentID uint) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ResetTokenModel{}).
		Where("student_id = ? AND used = ?", studentID, false).
		Update("used", true).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to invalidate reset tokens")
	}

	return nil
}

// Consume marks a token used with a single conditional UPDATE. Zero
// affected rows means the token is absent, already used (possibly by a
// racing confirm that won), or expired; all collapse to
// ErrResetTokenNotFound so the losing caller cannot tell which.
func (repo *resetTokenRepository) Consume(ctx context.Context, token uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ResetTokenModel{}).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, time.Now()).
		Update("used", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume reset token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toResetTokenDomain converts a GORM ResetTokenModel to a domain ResetToken entity.
func toResetTokenDomain(data *model.ResetTokenModel) *entity.ResetToken {
	if data == nil {
		return nil
	}

	return &entity.ResetToken{
		ID:        data.ID,
		Token:     data.Token,
		StudentID: data.StudentID,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
	}
}

// fromResetTokenDomain converts a domain ResetToken entity to a GORM ResetTokenModel.
func fromResetTokenDomain(data *entity.ResetToken) *model.ResetTokenModel {
	if data == nil {
		return nil
	}

	return &model.ResetTokenModel{
		ID:        data.ID,
		Token:     data.Token,
		StudentID: data.StudentID,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
	}
}
