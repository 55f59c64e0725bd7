package usecase

import (
	"context"
)

// --- Input DTOs ---

// RequestResetInput identifies the account to recover by email.
type RequestResetInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmResetInput carries a token in its canonical textual form and
// the replacement password.
type ConfirmResetInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// PasswordResetUsecase manages the reset token lifecycle: issue,
// supersede, expire, consume.
type PasswordResetUsecase interface {
	// RequestReset issues a fresh single-use token and hands the reset
	// link to the notifier. The outward result is identical whether or
	// not the email maps to an account; that uniformity is a deliberate
	// anti-enumeration invariant. A delivery failure is the one visible
	// error, reported generically without rolling the token back.
	RequestReset(ctx context.Context, input *RequestResetInput) error

	// ConfirmReset consumes a token and sets the new password as one
	// logical unit. Absent, used, expired and superseded tokens are all
	// reported as domainerrors.ErrResetTokenInvalid; a too-short password
	// as domainerrors.ErrWeakPassword.
	ConfirmReset(ctx context.Context, input *ConfirmResetInput) error
}
