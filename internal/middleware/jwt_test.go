package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuedesk/venue-reservation/internal/utils"
)

const testSecret = "test-secret"

func runJWT(t *testing.T, authorization string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/reservations", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, c, reached
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "user-42", true, 5)
	require.NoError(t, err)

	rec, c, reached := runJWT(t, "Bearer "+tok.Token)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", c.Get("user_id"))
	assert.Equal(t, true, c.Get("is_admin"))
}

func TestJWTAuthNonAdminClaim(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "user-7", false, 5)
	require.NoError(t, err)

	_, c, reached := runJWT(t, "Bearer "+tok.Token)
	assert.True(t, reached)
	assert.Equal(t, false, c.Get("is_admin"))
}

func TestJWTAuthRejects(t *testing.T) {
	cases := []struct {
		name string
		auth func(t *testing.T) string
	}{
		{name: "missing header", auth: func(t *testing.T) string { return "" }},
		{name: "not bearer", auth: func(t *testing.T) string { return "Basic abc" }},
		{name: "garbage token", auth: func(t *testing.T) string { return "Bearer not.a.jwt" }},
		{name: "wrong secret", auth: func(t *testing.T) string {
			tok, err := utils.NewAccessToken("other-secret", "user-1", false, 5)
			require.NoError(t, err)
			return "Bearer " + tok.Token
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _, reached := runJWT(t, tc.auth(t))
			assert.False(t, reached)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	run := func(isAdmin interface{}) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPut, "/v1/reservations/1/status", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if isAdmin != nil {
			c.Set("is_admin", isAdmin)
		}
		require.NoError(t, handler(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, run(true).Code)
	assert.Equal(t, http.StatusForbidden, run(false).Code)
	assert.Equal(t, http.StatusForbidden, run(nil).Code, "absent flag means non-admin")
	assert.Equal(t, http.StatusForbidden, run("yes").Code, "mistyped flag means non-admin")
}
