package middleware

import (
	"strings"

	"fittrack/internal/delivery/http/response"
	"fittrack/internal/domain/service"
	"fittrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// Context keys set for downstream handlers.
const (
	ContextAccountID    = "accountID"
	ContextSessionToken = "sessionToken"
)

// AuthMiddleware resolves the opaque Bearer session token against the
// session store. It carries no policy beyond "a live session exists".
type AuthMiddleware struct {
	sessions service.SessionManager
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionManager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// BearerToken extracts the opaque session token from the Authorization
// header, or "" when the request is anonymous.
func BearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}

// Authenticate rejects requests without a resolvable session and sets
// the authenticated account id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := BearerToken(c)
		if token == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing or malformed")
		}

		accountID, err := m.sessions.Resolve(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired session")
			}

			return errors.Wrap(err, "failed to resolve session")
		}

		c.Set(ContextAccountID, accountID)
		c.Set(ContextSessionToken, token)

		return next(c)
	}
}
