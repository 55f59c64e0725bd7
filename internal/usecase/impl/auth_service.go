package impl

import (
	"context"
	"log/slog"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"portal/internal/errors"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It is the single
// verification path for both calling processes; neither carries its own
// copy of the hashing or sanitization rules.
type authService struct {
	studentRepo repository.StudentRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	StudentRepo repository.StudentRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		studentRepo: params.StudentRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Verify decides Accept or Reject for one credential pair and writes
// exactly one audit line for the attempt. The sequence is fixed:
// reject malformed usernames before any store access, sanitize the
// password, look up the credential, compare digests. Any infrastructure
// failure resolves to Reject; nothing propagates past this boundary.
func (srv *authService) Verify(ctx context.Context, input *usecase.VerifyInput) *usecase.VerifyOutput {
	username, ok := sanitizeUsername(input.Username)
	if !ok {
		srv.log(ctx).Warn("Invalid username format", slog.String("username", input.Username))

		return &usecase.VerifyOutput{Accepted: false}
	}

	password := sanitizePassword(input.Password)

	student, err := srv.studentRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			srv.log(ctx).Warn("Login failed: user not found", slog.String("username", username))

			return &usecase.VerifyOutput{Accepted: false}
		}

		srv.log(ctx).Error("Error during authentication", slog.String("username", username), slog.Any("error", err))

		return &usecase.VerifyOutput{Accepted: false}
	}

	// Exact digest comparison against the stored format; the hasher is
	// the shared, deterministic definition both processes agree on.
	if !srv.hasher.Check(password, student.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username))

		return &usecase.VerifyOutput{Accepted: false}
	}

	srv.log(ctx).Info("Login success", slog.String("username", username))

	return &usecase.VerifyOutput{Accepted: true}
}
