package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portal/config"
	"portal/internal/delivery/http/validator"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase returns a fixed decision; the handler tests only care
// about the HTTP mapping, not the verification logic.
type stubAuthUsecase struct {
	accepted bool
	lastIn   *usecase.VerifyInput
	lastCtx  context.Context
}

func (s *stubAuthUsecase) Verify(ctx context.Context, input *usecase.VerifyInput) *usecase.VerifyOutput {
	s.lastIn = input
	s.lastCtx = ctx

	return &usecase.VerifyOutput{Accepted: s.accepted}
}

// recordingResetUsecase captures the inputs the handler hands over.
type recordingResetUsecase struct {
	requestIn *usecase.RequestResetInput
	confirmIn *usecase.ConfirmResetInput
	lastCtx   context.Context
	err       error
}

func (s *recordingResetUsecase) RequestReset(ctx context.Context, input *usecase.RequestResetInput) error {
	s.requestIn = input
	s.lastCtx = ctx

	return s.err
}

func (s *recordingResetUsecase) ConfirmReset(ctx context.Context, input *usecase.ConfirmResetInput) error {
	s.confirmIn = input
	s.lastCtx = ctx

	return s.err
}

func TestAuthHandler_LoginPage_RequiresGatewayParams(t *testing.T) {
	h := &AuthHandler{}
	e := echo.New()

	cases := []struct {
		name   string
		target string
		wantOK bool
	}{
		{"both params", "/login?post=http://gw/login&magic=abc123", true},
		{"missing magic", "/login?post=http://gw/login", false},
		{"missing post", "/login?magic=abc123", false},
		{"no params", "/login", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.LoginPage(c)
			if tc.wantOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "abc123")

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrNotFound)
		})
	}
}

func TestAuthHandler_ResetPassword_TokenFromPath(t *testing.T) {
	resetUC := &recordingResetUsecase{}
	h := &AuthHandler{resetUC: resetUC}
	e := echo.New()

	body := strings.NewReader(`{"newPassword":"NewPass1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password/some-token", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("a3bb189e-8bf9-3888-9912-ace4e6543002")

	err := h.ResetPassword(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resetUC.confirmIn)
	assert.Equal(t, "a3bb189e-8bf9-3888-9912-ace4e6543002", resetUC.confirmIn.Token)
	assert.Equal(t, "NewPass1", resetUC.confirmIn.NewPassword)
}

func TestAuthHandler_BoundsUsecaseCalls(t *testing.T) {
	e := echo.New()
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{VerifyTimeout: 5 * time.Second}
	cfg.HTTP.Timeouts.WriteTimeout = 30 * time.Second

	t.Run("login carries verify deadline", func(t *testing.T) {
		authUC := &stubAuthUsecase{accepted: true}
		h := NewAuthHandler(cfg, authUC, &recordingResetUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

		body := strings.NewReader(`{"username":"alice","password":"Secret1"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Login(e.NewContext(req, rec)))
		require.NotNil(t, authUC.lastCtx)
		deadline, ok := authUC.lastCtx.Deadline()
		require.True(t, ok, "verify must run under a deadline")
		assert.WithinDuration(t, time.Now().Add(cfg.Auth.VerifyTimeout), deadline, time.Second)
	})

	t.Run("reset request carries deadline", func(t *testing.T) {
		resetUC := &recordingResetUsecase{}
		h := NewAuthHandler(cfg, &stubAuthUsecase{}, resetUC, slog.New(slog.NewTextHandler(io.Discard, nil)))

		body := strings.NewReader(`{"email":"alice@example.edu"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Echo().Validator = validator.New()

		require.NoError(t, h.ForgotPassword(c))
		require.NotNil(t, resetUC.lastCtx)
		_, ok := resetUC.lastCtx.Deadline()
		assert.True(t, ok, "reset request must run under a deadline")
	})
}

func TestAuthHandler_Login_MapsDecision(t *testing.T) {
	e := echo.New()

	t.Run("accept", func(t *testing.T) {
		authUC := &stubAuthUsecase{accepted: true}
		h := &AuthHandler{authUC: authUC}

		body := strings.NewReader(`{"username":"alice","password":"Secret1"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Login(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Auth-Type := Accept")
		require.NotNil(t, authUC.lastIn)
		assert.Equal(t, "alice", authUC.lastIn.Username)
		assert.Equal(t, "Secret1", authUC.lastIn.Password)
	})

	t.Run("reject", func(t *testing.T) {
		h := &AuthHandler{authUC: &stubAuthUsecase{accepted: false}}

		body := strings.NewReader(`{"username":"alice","password":"wrong"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Login(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}
