package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockSvc "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			HashScheme:        "md5",
			MinPasswordLength: 6,
			VerifyTimeout:     5 * time.Second,
			ResetTokenTTL:     time.Hour,
		},
		Portal: &config.PortalConfig{
			BaseURL: "https://wifi.example.edu",
		},
	}

	return cfg
}

// resetFixtures bundles the reset service under test with its mocks.
type resetFixtures struct {
	service   usecase.PasswordResetUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	students  *mockRepo.MockStudentRepository
	tokens    *mockRepo.MockResetTokenRepository
	hasher    *mockSvc.MockPasswordHasher
	notifier  *mockSvc.MockNotifier
	qrSvc     *mockSvc.MockQRCodeService
}

func newResetFixtures(t *testing.T) *resetFixtures {
	fx := &resetFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		students:  mockRepo.NewMockStudentRepository(t),
		tokens:    mockRepo.NewMockResetTokenRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		notifier:  mockSvc.NewMockNotifier(t),
		qrSvc:     mockSvc.NewMockQRCodeService(t),
	}

	cfg := newTestConfig()
	fx.service = &passwordResetService{
		txManager:         fx.txManager,
		studentRepo:       fx.students,
		resetTokenRepo:    fx.tokens,
		hasher:            fx.hasher,
		notifier:          fx.notifier,
		qrSvc:             fx.qrSvc,
		baseURL:           cfg.Portal.BaseURL,
		tokenTTL:          cfg.Auth.ResetTokenTTL,
		minPasswordLength: cfg.Auth.MinPasswordLength,
		logger:            newDiscardLogger(),
	}

	return fx
}

// passThroughTx makes the transaction manager run its callback against
// the fixture's mocked repositories, as a committed transaction would.
func (fx *resetFixtures) passThroughTx() {
	fx.factory.EXPECT().StudentRepo().Return(fx.students).Maybe()
	fx.factory.EXPECT().ResetTokenRepo().Return(fx.tokens).Maybe()
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}
