// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/response"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCurrent returns the account behind the caller's session token.
func (h *AccountHandler) GetCurrent(c echo.Context) error {
	account, err := h.uc.CurrentAccount(c.Request().Context(), middleware.BearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Account retrieved successfully")
}

// SignUp handles the registration request.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.uc.SignUp(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Account created successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Login successful")
}

// Logout destroys the caller's session.
func (h *AccountHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), middleware.BearerToken(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Recover mails the account's username to its address. When only the
// delivery failed, the lookup result still reaches the caller alongside
// the gateway error.
func (h *AccountHandler) Recover(c echo.Context) error {
	var input usecase.RecoverInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recovery input")
	}

	output, err := h.uc.RecoverUsername(c.Request().Context(), &input)
	if err != nil {
		if output != nil && errors.Is(err, domainerrors.ErrNotificationFailed) {
			return response.ErrorWithData(c, http.StatusBadGateway, "NOTIFICATION_FAILED",
				domainerrors.ErrNotificationFailed.Message(), output.Account)
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Account, "Recovery email sent")
}

// AdminSearch looks up a non-admin account by username and/or email.
func (h *AccountHandler) AdminSearch(c echo.Context) error {
	var input usecase.AdminSearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	account, err := h.uc.AdminSearch(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, account, "Account found")
}

// Edit applies the replacement field set to the targeted account.
func (h *AccountHandler) Edit(c echo.Context) error {
	var input usecase.EditAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid edit input")
	}

	account, err := h.uc.EditAccount(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, account, "Account updated successfully")
}

// deleteInput carries the target username for account deletion.
type deleteInput struct {
	Username string `json:"username"`
}

// Delete removes the account matching the supplied username.
func (h *AccountHandler) Delete(c echo.Context) error {
	var input deleteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), input.Username); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"username": input.Username}, "Account deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
