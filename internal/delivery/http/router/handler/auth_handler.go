// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"portal/config"
	"portal/internal/delivery/http/response"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for login and password-reset handlers.
type AuthHandler struct {
	authUC        usecase.AuthUsecase
	resetUC       usecase.PasswordResetUsecase
	verifyTimeout time.Duration
	resetTimeout  time.Duration
	logger        *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(cfg *config.Config, authUC usecase.AuthUsecase, resetUC usecase.PasswordResetUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:        authUC,
		resetUC:       resetUC,
		verifyTimeout: cfg.Auth.VerifyTimeout,
		resetTimeout:  cfg.HTTP.Timeouts.WriteTimeout,
		logger:        logger,
	}
}

// boundContext caps how long a handler may hold the store or the
// mailer. A non-positive bound leaves the request context as is.
func boundContext(c echo.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return c.Request().Context(), func() {}
	}

	return context.WithTimeout(c.Request().Context(), timeout)
}

// loginRequest is the credential pair as submitted by the portal form.
type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// portalParams are the gateway redirect parameters the login page
// echoes back so the form can post to the gateway.
type portalParams struct {
	PostURL string `json:"postUrl"`
	Magic   string `json:"magic"`
}

// LoginPage serves the captive-portal entry point. The gateway
// redirects clients here with the form target and its one-time magic
// value; a request missing either did not come through the gateway and
// gets a 404.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	postURL := c.QueryParam("post")
	magic := c.QueryParam("magic")
	if postURL == "" || magic == "" {
		return domainerrors.ErrNotFound
	}

	return response.Success(c, http.StatusOK, portalParams{
		PostURL: postURL,
		Magic:   magic,
	}, "")
}

// Login runs a credential check and reports the decision. It exists so
// operators can exercise the verification path without a gateway in
// front; the decision logic is the same the authenticate command uses.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	ctx, cancel := boundContext(c, h.verifyTimeout)
	defer cancel()

	output := h.authUC.Verify(ctx, &usecase.VerifyInput{
		Username: req.Username,
		Password: req.Password,
	})
	if !output.Accepted {
		return domainerrors.ErrInvalidCredentials
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"authType": output.AuthTypeLine(),
	}, "Login successful")
}

// ForgotPassword accepts a reset request. The response is identical
// whether or not the email matches an account.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input *usecase.RequestResetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset request input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	ctx, cancel := boundContext(c, h.resetTimeout)
	defer cancel()

	if err := h.resetUC.RequestReset(ctx, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil,
		"If the email matches an account, a reset link is on its way")
}

// ResetPassword confirms a reset with the token from the mailed link.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var body struct {
		NewPassword string `json:"newPassword" form:"newPassword"`
	}
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset confirmation input")
	}

	input := &usecase.ConfirmResetInput{
		Token:       c.Param("token"),
		NewPassword: body.NewPassword,
	}
	ctx, cancel := boundContext(c, h.resetTimeout)
	defer cancel()

	if err := h.resetUC.ConfirmReset(ctx, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}
