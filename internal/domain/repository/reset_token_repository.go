package repository

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrResetTokenNotFound is returned when no row matches a token value,
// and also when a conditional consume affects zero rows: from the
// caller's point of view a token that lost a race is indistinguishable
// from one that never existed.
var ErrResetTokenNotFound = errors.New("reset token not found")

// ResetTokenRepository manages the reset token table. It is the only
// writer of the used and expires_at columns. Coordination between the
// two calling processes happens entirely through the store's row-level
// atomicity; there is no shared runtime to synchronize in.
type ResetTokenRepository interface {
	// Create persists a freshly issued token.
	Create(ctx context.Context, token *entity.ResetToken) error

	// FindByToken retrieves a token row by its token value, used or not.
	FindByToken(ctx context.Context, token uuid.UUID) (*entity.ResetToken, error)

	// InvalidateActiveByStudentID marks every unused token of a student as
	// used, enforcing the one-live-token-per-student invariant before a
	// new issuance. Superseded tokens stay in the table for audit.
	InvalidateActiveByStudentID(ctx context.Context, studentID uint) error

	// Consume atomically marks a token used, but only if it is still
	// unused and unexpired. A single conditional UPDATE, not read-then-
	// write: of two racing confirms exactly one sees a row change, the
	// other gets ErrResetTokenNotFound.
	Consume(ctx context.Context, token uuid.UUID) error
}
