//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"villa-booking/internal/handler/dto/request"
	"villa-booking/internal/pkg/cookie"
	"villa-booking/tests/common/dbtest"
	"villa-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser returns the admin-token cookie set by a successful login.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, tokenCookie, "admin token not found in cookies")
	require.NotEmpty(t, tokenCookie.Value, "admin token cookie is empty")

	return tokenCookie
}

func CreateAndLogin(t *testing.T, db dbtest.Conn, router *gin.Engine, username, role string) *http.Cookie {
	t.Helper()
	dbtest.CreateTestUser(t, db, username, role)
	return LoginUser(t, router, username, dbtest.DefaultPassword)
}
