// Package validator adapts go-playground/validator to Echo's
// request-validation hook.
package validator

import (
	"net/http"

	validatorpkg "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// EchoValidator wraps a validator instance for echo.Echo.Validator.
type EchoValidator struct {
	validate *validatorpkg.Validate
}

// New creates a validator using struct tags.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validatorpkg.New(validatorpkg.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as 400 so the
// error handler renders them in the standard envelope.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
