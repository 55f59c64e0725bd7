package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager         repository.TransactionManager
	studentRepo       repository.StudentRepository
	resetTokenRepo    repository.ResetTokenRepository
	hasher            service.PasswordHasher
	notifier          service.Notifier
	qrSvc             service.QRCodeService
	baseURL           string
	tokenTTL          time.Duration
	minPasswordLength int
	logger            *slog.Logger
}

// ResetServiceParams holds dependencies for passwordResetService, injected by Fx.
type ResetServiceParams struct {
	fx.In

	Config         *config.Config
	TxManager      repository.TransactionManager
	StudentRepo    repository.StudentRepository
	ResetTokenRepo repository.ResetTokenRepository
	Hasher         service.PasswordHasher
	Notifier       service.Notifier
	QRSvc          service.QRCodeService
	Logger         *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params ResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		txManager:         params.TxManager,
		studentRepo:       params.StudentRepo,
		resetTokenRepo:    params.ResetTokenRepo,
		hasher:            params.Hasher,
		notifier:          params.Notifier,
		qrSvc:             params.QRSvc,
		baseURL:           params.Config.Portal.BaseURL,
		tokenTTL:          params.Config.Auth.ResetTokenTTL,
		minPasswordLength: params.Config.Auth.MinPasswordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset issues a fresh reset token for the account behind the
// given email and mails the reset link. An unknown email returns nil
// without issuing anything, so the response never reveals whether an
// account exists. Issuing supersedes all earlier live tokens for the
// same student before the new row is written, keeping at most one
// live token per student at any time.
func (srv *passwordResetService) RequestReset(ctx context.Context, input *usecase.RequestResetInput) error {
	var issued *entity.ResetToken
	var recipient string

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		student, err := factory.StudentRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrStudentNotFound) {
				// Commit the empty transaction; the caller sees the
				// same success as a real issuance.
				return nil
			}

			return domainerrors.NewDatabaseExecuteError(err, "find student by email")
		}

		if err := factory.ResetTokenRepo().InvalidateActiveByStudentID(ctx, student.ID); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "invalidate earlier tokens")
		}

		now := time.Now()
		token := &entity.ResetToken{
			Token:     uuid.New(),
			StudentID: student.ID,
			CreatedAt: now,
			ExpiresAt: now.Add(srv.tokenTTL),
		}
		if err := factory.ResetTokenRepo().Create(ctx, token); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "create reset token")
		}

		issued = token
		recipient = student.Email

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue reset token", slog.Any("error", err))

		return domainerrors.ErrInternalError.Wrap(err)
	}

	if issued == nil {
		srv.log(ctx).Info("Reset requested for unknown email")

		return nil
	}

	resetURL := srv.resetURL(issued.Token)

	// The QR image is a convenience for phone cameras; a failure here
	// degrades the email to link-only rather than failing the request.
	var qrPNG []byte
	if png, qrErr := srv.qrSvc.GenerateURLQR(resetURL); qrErr != nil {
		srv.log(ctx).Warn("QR code generation failed, sending link only", slog.Any("error", qrErr))
	} else {
		qrPNG = png
	}

	htmlBody, textBody := composeResetMail(resetURL, srv.tokenTTL, qrPNG)

	// The token row is already committed. If delivery fails the token
	// stays live; a retried request supersedes it.
	if err := srv.notifier.Send(ctx, recipient, "Password reset", htmlBody, textBody); err != nil {
		srv.log(ctx).Error("Failed to deliver reset mail", slog.Any("error", err))

		return domainerrors.ErrResetDeliveryFailed.Wrap(err)
	}

	srv.log(ctx).Info("Reset token issued", slog.Uint64("studentID", uint64(issued.StudentID)))

	return nil
}

// ConfirmReset consumes the token and stores the new password hash in
// one transaction. The token transitions to used exactly once even
// under concurrent confirmations; the loser of that race gets the same
// invalid-token error as an expired or unknown token.
func (srv *passwordResetService) ConfirmReset(ctx context.Context, input *usecase.ConfirmResetInput) error {
	tokenID, err := uuid.Parse(input.Token)
	if err != nil {
		return domainerrors.ErrResetTokenInvalid
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		token, err := factory.ResetTokenRepo().FindByToken(ctx, tokenID)
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return domainerrors.NewDatabaseExecuteError(err, "find reset token")
		}

		if !token.IsValid(time.Now()) {
			return domainerrors.ErrResetTokenInvalid
		}

		if len(input.NewPassword) < srv.minPasswordLength {
			return domainerrors.ErrWeakPassword
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "hash new password")
		}

		// Conditional update; a concurrent confirmation that already
		// flipped the row surfaces here as not found.
		if err := factory.ResetTokenRepo().Consume(ctx, tokenID); err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return domainerrors.NewDatabaseExecuteError(err, "consume reset token")
		}

		if err := factory.StudentRepo().UpdatePasswordHash(ctx, token.StudentID, hash); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "update password hash")
		}

		srv.log(ctx).Info("Password reset completed", slog.Uint64("studentID", uint64(token.StudentID)))

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrResetTokenInvalid) || errors.Is(err, domainerrors.ErrWeakPassword) {
			return err
		}

		srv.log(ctx).Error("Failed to confirm reset", slog.Any("error", err))

		return domainerrors.ErrInternalError.Wrap(err)
	}

	return nil
}

// resetURL builds the confirmation link embedded in the mail.
func (srv *passwordResetService) resetURL(token uuid.UUID) string {
	return strings.TrimRight(srv.baseURL, "/") + "/reset-password/" + token.String() + "/"
}

// composeResetMail renders the HTML and plain-text bodies. The QR
// image, when present, is inlined as a data URI so the mail needs no
// attachment handling on the receiving side.
func composeResetMail(resetURL string, ttl time.Duration, qrPNG []byte) (htmlBody string, textBody string) {
	hours := int(ttl.Hours())
	if hours < 1 {
		hours = 1
	}

	var html strings.Builder
	html.WriteString("<p>A password reset was requested for your account.</p>")
	fmt.Fprintf(&html, `<p><a href="%s">Reset your password</a></p>`, resetURL)
	if len(qrPNG) > 0 {
		fmt.Fprintf(&html, `<p><img src="data:image/png;base64,%s" alt="Reset link QR code"/></p>`,
			base64.StdEncoding.EncodeToString(qrPNG))
	}
	fmt.Fprintf(&html, "<p>The link expires in %d hour(s). If you did not request this, ignore this mail.</p>", hours)

	text := fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Open this link to choose a new password:\n%s\n\n"+
			"The link expires in %d hour(s). If you did not request this, ignore this mail.\n",
		resetURL, hours)

	return html.String(), text
}
