package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessionManager struct {
	mock.Mock
}

func (m *mockSessionManager) Create(ctx context.Context, accountID uuid.UUID) (string, error) {
	args := m.Called(ctx, accountID)
	return args.String(0), args.Error(1)
}

func (m *mockSessionManager) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockSessionManager) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "well-formed bearer", header: "Bearer tok-1", want: "tok-1"},
		{name: "missing header", header: "", want: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "bare token without scheme", header: "tok-1", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthContext(tc.header)
			assert.Equal(t, tc.want, BearerToken(c))
		})
	}
}

func TestAuthenticate_SetsAccountOnContext(t *testing.T) {
	sessions := new(mockSessionManager)
	accountID := uuid.New()
	sessions.On("Resolve", mock.Anything, "tok-1").Return(accountID, nil)

	c, _ := newAuthContext("Bearer tok-1")

	var sawAccountID uuid.UUID
	next := func(c echo.Context) error {
		sawAccountID = c.Get(ContextAccountID).(uuid.UUID)
		return nil
	}

	err := NewAuthMiddleware(sessions).Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, accountID, sawAccountID)
	assert.Equal(t, "tok-1", c.Get(ContextSessionToken))
}

func TestAuthenticate_MissingToken(t *testing.T) {
	sessions := new(mockSessionManager)
	c, rec := newAuthContext("")

	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	err := NewAuthMiddleware(sessions).Authenticate(next)(c)
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	sessions.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestAuthenticate_UnknownSession(t *testing.T) {
	sessions := new(mockSessionManager)
	sessions.On("Resolve", mock.Anything, "stale").
		Return(uuid.Nil, service.ErrSessionNotFound)

	c, rec := newAuthContext("Bearer stale")

	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	err := NewAuthMiddleware(sessions).Authenticate(next)(c)
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
