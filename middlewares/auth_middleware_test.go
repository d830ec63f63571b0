package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "user-1",
		"role": role,
		"name": "Test User",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func ctxWithAuth(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func TestRequireAuthValidToken(t *testing.T) {
	c, rec := ctxWithAuth(signTestToken(t, testSecret, "admin", time.Hour))

	err := RequireAuth(testSecret)(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", c.Get("role"))
	assert.Equal(t, "user-1", c.Get("user_id"))
}

func TestRequireAuthMissingHeader(t *testing.T) {
	c, _ := ctxWithAuth("")

	err := RequireAuth(testSecret)(okHandler)(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuthWrongSecret(t *testing.T) {
	c, _ := ctxWithAuth(signTestToken(t, "other-secret", "admin", time.Hour))

	err := RequireAuth(testSecret)(okHandler)(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	c, _ := ctxWithAuth(signTestToken(t, testSecret, "admin", -time.Hour))

	err := RequireAuth(testSecret)(okHandler)(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireRole(t *testing.T) {
	c, rec := ctxWithAuth("")
	c.Set("role", "staff")
	err := RequireRole("admin", "staff")(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	c, _ = ctxWithAuth("")
	c.Set("role", "student")
	err = RequireRole("admin", "staff")(okHandler)(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Code)
}
