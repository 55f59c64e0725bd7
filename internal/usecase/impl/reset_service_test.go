package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResetService_RequestReset_IssuesTokenAndSendsMail(t *testing.T) {
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	student := &entity.Student{ID: 7, Username: "alice", Email: "alice@example.edu"}
	fx.students.EXPECT().
		FindByEmail(ctx, "alice@example.edu").
		Return(student, nil)
	fx.tokens.EXPECT().
		InvalidateActiveByStudentID(ctx, uint(7)).
		Return(nil)

	var issued *entity.ResetToken
	fx.tokens.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ResetToken")).
		Run(func(_ context.Context, token *entity.ResetToken) {
			issued = token
		}).
		Return(nil)

	fx.qrSvc.EXPECT().
		GenerateURLQR(mock.AnythingOfType("string")).
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	var htmlBody, textBody string
	fx.notifier.EXPECT().
		Send(ctx, "alice@example.edu", "Password reset", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, _ string, html string, text string) {
			htmlBody = html
			textBody = text
		}).
		Return(nil)

	err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "alice@example.edu"})
	require.NoError(t, err)

	require.NotNil(t, issued)
	assert.Equal(t, uint(7), issued.StudentID)
	assert.False(t, issued.Used)
	assert.NotEqual(t, uuid.Nil, issued.Token)
	assert.WithinDuration(t, issued.CreatedAt.Add(time.Hour), issued.ExpiresAt, time.Second)

	wantURL := "https://wifi.example.edu/reset-password/" + issued.Token.String() + "/"
	assert.Contains(t, htmlBody, wantURL)
	assert.Contains(t, textBody, wantURL)
	assert.Contains(t, htmlBody, "data:image/png;base64,")
}

func TestResetService_RequestReset_UnknownEmailLooksIdentical(t *testing.T) {
	// Only the lookup runs; no token is issued and no mail goes out,
	// yet the caller gets the same nil error as a real issuance.
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	fx.students.EXPECT().
		FindByEmail(ctx, "nobody@example.edu").
		Return(nil, repository.ErrStudentNotFound)

	err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "nobody@example.edu"})
	assert.NoError(t, err)
}

func TestResetService_RequestReset_DeliveryFailureKeepsToken(t *testing.T) {
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	student := &entity.Student{ID: 7, Username: "alice", Email: "alice@example.edu"}
	fx.students.EXPECT().FindByEmail(ctx, "alice@example.edu").Return(student, nil)
	fx.tokens.EXPECT().InvalidateActiveByStudentID(ctx, uint(7)).Return(nil)
	fx.tokens.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ResetToken")).Return(nil)
	fx.qrSvc.EXPECT().GenerateURLQR(mock.AnythingOfType("string")).Return([]byte{0x89}, nil)
	fx.notifier.EXPECT().
		Send(ctx, "alice@example.edu", "Password reset", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("relay unreachable"))

	err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "alice@example.edu"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResetDeliveryFailed)
}

func TestResetService_RequestReset_QRFailureDegradesToLinkOnly(t *testing.T) {
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	student := &entity.Student{ID: 7, Username: "alice", Email: "alice@example.edu"}
	fx.students.EXPECT().FindByEmail(ctx, "alice@example.edu").Return(student, nil)
	fx.tokens.EXPECT().InvalidateActiveByStudentID(ctx, uint(7)).Return(nil)
	fx.tokens.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ResetToken")).Return(nil)
	fx.qrSvc.EXPECT().GenerateURLQR(mock.AnythingOfType("string")).Return(nil, errors.New("encode failed"))

	var htmlBody string
	fx.notifier.EXPECT().
		Send(ctx, "alice@example.edu", "Password reset", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, _ string, html string, _ string) {
			htmlBody = html
		}).
		Return(nil)

	err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "alice@example.edu"})
	require.NoError(t, err)
	assert.NotContains(t, htmlBody, "data:image/png")
	assert.Contains(t, htmlBody, "/reset-password/")
}

func TestResetService_RequestReset_SupersedesBeforeCreate(t *testing.T) {
	// Invalidation of earlier tokens must land before the new row is
	// written, so at most one live token per student ever exists.
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	var order []string
	student := &entity.Student{ID: 7, Email: "alice@example.edu"}
	fx.students.EXPECT().FindByEmail(ctx, "alice@example.edu").Return(student, nil)
	fx.tokens.EXPECT().
		InvalidateActiveByStudentID(ctx, uint(7)).
		Run(func(_ context.Context, _ uint) { order = append(order, "invalidate") }).
		Return(nil)
	fx.tokens.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ResetToken")).
		Run(func(_ context.Context, _ *entity.ResetToken) { order = append(order, "create") }).
		Return(nil)
	fx.qrSvc.EXPECT().GenerateURLQR(mock.AnythingOfType("string")).Return([]byte{0x89}, nil)
	fx.notifier.EXPECT().
		Send(ctx, "alice@example.edu", "Password reset", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "alice@example.edu"})
	require.NoError(t, err)
	assert.Equal(t, []string{"invalidate", "create"}, order)
}

func TestResetService_ConfirmReset_Success(t *testing.T) {
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	tokenID := uuid.New()
	now := time.Now()
	fx.tokens.EXPECT().
		FindByToken(ctx, tokenID).
		Return(&entity.ResetToken{Token: tokenID, StudentID: 7, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}, nil)
	fx.hasher.EXPECT().
		Hash("NewPass1").
		Return("9ac08a99294e87e6c15ebb75a65e78e7", nil)
	fx.tokens.EXPECT().
		Consume(ctx, tokenID).
		Return(nil)
	fx.students.EXPECT().
		UpdatePasswordHash(ctx, uint(7), "9ac08a99294e87e6c15ebb75a65e78e7").
		Return(nil)

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:       tokenID.String(),
		NewPassword: "NewPass1",
	})
	assert.NoError(t, err)
}

func TestResetService_ConfirmReset_MalformedToken(t *testing.T) {
	// The transaction manager carries no expectations; a malformed
	// token must be rejected before the store is touched.
	fx := newResetFixtures(t)
	ctx := context.Background()

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:       "not-a-uuid",
		NewPassword: "NewPass1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestResetService_ConfirmReset_UnknownToken(t *testing.T) {
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	tokenID := uuid.New()
	fx.tokens.EXPECT().
		FindByToken(ctx, tokenID).
		Return(nil, repository.ErrResetTokenNotFound)

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:       tokenID.String(),
		NewPassword: "NewPass1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestResetService_ConfirmReset_ExpiredToken(t *testing.T) {
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	tokenID := uuid.New()
	created := time.Now().Add(-2 * time.Hour)
	fx.tokens.EXPECT().
		FindByToken(ctx, tokenID).
		Return(&entity.ResetToken{Token: tokenID, StudentID: 7, CreatedAt: created, ExpiresAt: created.Add(time.Hour)}, nil)

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:       tokenID.String(),
		NewPassword: "NewPass1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestResetService_ConfirmReset_UsedToken(t *testing.T) {
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	tokenID := uuid.New()
	now := time.Now()
	fx.tokens.EXPECT().
		FindByToken(ctx, tokenID).
		Return(&entity.ResetToken{Token: tokenID, StudentID: 7, CreatedAt: now, ExpiresAt: now.Add(time.Hour), Used: true}, nil)

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:       tokenID.String(),
		NewPassword: "NewPass1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestResetService_ConfirmReset_WeakPassword(t *testing.T) {
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	tokenID := uuid.New()
	now := time.Now()
	fx.tokens.EXPECT().
		FindByToken(ctx, tokenID).
		Return(&entity.ResetToken{Token: tokenID, StudentID: 7, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}, nil)

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:       tokenID.String(),
		NewPassword: "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
}

func TestResetService_ConfirmReset_MinLengthIsConfigured(t *testing.T) {
	// The length gate follows auth.minPasswordLength, so the rejection
	// message must not promise any particular number.
	fx := newResetFixtures(t)
	fx.passThroughTx()
	fx.service.(*passwordResetService).minPasswordLength = 10
	ctx := context.Background()

	tokenID := uuid.New()
	now := time.Now()
	fx.tokens.EXPECT().
		FindByToken(ctx, tokenID).
		Return(&entity.ResetToken{Token: tokenID, StudentID: 7, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}, nil)

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:       tokenID.String(),
		NewPassword: "Pass1234",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
	assert.NotContains(t, domainerrors.ErrWeakPassword.Message(), "6")
	assert.NotContains(t, domainerrors.ErrWeakPassword.Message(), "10")
}

func TestResetService_ConfirmReset_ConsumeRaceLoser(t *testing.T) {
	// A concurrent confirmation flipped the row between the read and
	// the conditional update. The loser sees the same invalid-token
	// error as any stale link.
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	tokenID := uuid.New()
	now := time.Now()
	fx.tokens.EXPECT().
		FindByToken(ctx, tokenID).
		Return(&entity.ResetToken{Token: tokenID, StudentID: 7, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}, nil)
	fx.hasher.EXPECT().
		Hash("NewPass1").
		Return("9ac08a99294e87e6c15ebb75a65e78e7", nil)
	fx.tokens.EXPECT().
		Consume(ctx, tokenID).
		Return(repository.ErrResetTokenNotFound)

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:       tokenID.String(),
		NewPassword: "NewPass1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestResetService_ConfirmReset_StoreFaultIsGeneric(t *testing.T) {
	fx := newResetFixtures(t)
	fx.passThroughTx()
	ctx := context.Background()

	tokenID := uuid.New()
	fx.tokens.EXPECT().
		FindByToken(ctx, tokenID).
		Return(nil, errors.New("connection refused"))

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:       tokenID.String(),
		NewPassword: "NewPass1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	assert.NotContains(t, domainerrors.ErrInternalError.Message(), "connection refused")
}

func TestResetService_ResetURLShape(t *testing.T) {
	fx := newResetFixtures(t)
	service := fx.service.(*passwordResetService)

	tokenID := uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002")
	url := service.resetURL(tokenID)
	assert.Equal(t, "https://wifi.example.edu/reset-password/a3bb189e-8bf9-3888-9912-ace4e6543002/", url)
	assert.True(t, strings.HasSuffix(url, "/"))
}
