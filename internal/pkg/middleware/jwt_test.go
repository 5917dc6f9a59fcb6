package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/nmfalves/sentinela/internal/pkg/jwt"
	"github.com/nmfalves/sentinela/internal/pkg/models"
)

var testJWTConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "sentinela-test",
}

func runProtected(t *testing.T, authHeader string, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	require.NoError(t, handler(c))
	return rec
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	operativeID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(operativeID, models.RoleOperational, testJWTConfig)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err = JWTAuthMiddleware(testJWTConfig)(func(c echo.Context) error {
		called = true
		assert.Equal(t, operativeID, c.Get("user_id"))
		assert.Equal(t, models.RoleOperational, c.Get("user_role"))
		return c.String(http.StatusOK, "ok")
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec := runProtected(t, "", JWTAuthMiddleware(testJWTConfig))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	rec := runProtected(t, "Token abc", JWTAuthMiddleware(testJWTConfig))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	rec := runProtected(t, "Bearer not-a-token", JWTAuthMiddleware(testJWTConfig))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireCommandRole(t *testing.T) {
	tests := []struct {
		role   models.Role
		status int
	}{
		{models.RoleCommand, http.StatusOK},
		{models.RoleAdmin, http.StatusOK},
		{models.RoleOperational, http.StatusForbidden},
	}

	for _, tt := range tests {
		token, _, err := jwtpkg.GenerateToken(uuid.New(), tt.role, testJWTConfig)
		require.NoError(t, err)

		rec := runProtected(t, "Bearer "+token,
			JWTAuthMiddleware(testJWTConfig), RequireCommandRole())

		assert.Equal(t, tt.status, rec.Code, "role %s", tt.role)
	}
}

func TestRequireCommandRole_NoAuthContext(t *testing.T) {
	rec := runProtected(t, "", RequireCommandRole())

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
