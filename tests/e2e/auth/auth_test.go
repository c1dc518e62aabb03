//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"villa-booking/internal/domain/user"
	"villa-booking/internal/handler/dto/request"
	"villa-booking/internal/handler/dto/response"
	"villa-booking/internal/pkg/cookie"
	"villa-booking/internal/usecase"
	"villa-booking/tests/common/authtest"
	"villa-booking/tests/common/dbtest"
	"villa-booking/tests/common/httptest"
	"villa-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/admin/auth/login"
	logoutURL = "/api/admin/auth/logout"
	meURL     = "/api/admin/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	admin usecase.Principal
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	adminID := dbtest.CreateTestUser(s.T(), s.DB, "admin", string(user.RoleAdmin))
	s.admin = usecase.Principal{UserID: adminID, Username: "admin", Role: user.RoleAdmin}
	dbtest.CreateTestUser(s.T(), s.DB, "frontdesk", string(user.RoleStaff))
	inactive := dbtest.CreateTestUser(s.T(), s.DB, "former", string(user.RoleAdmin))
	dbtest.DeactivateUser(s.T(), s.DB, inactive)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "username login", username: "admin", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "email login ignores case", username: "Admin@Villa.Example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", username: "nobody", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", username: "admin", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive account", username: "former", password: dbtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "empty username", username: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "short password", username: "admin", password: "short", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				require.Nil(t, httptest.ExtractCookie(w, cookie.AdminTokenCookieName))
				return
			}

			var res response.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.NotEmpty(t, res.Token)
			require.Equal(t, "admin", res.User.Username)

			tokenCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
			require.NotNil(t, tokenCookie)
			require.True(t, tokenCookie.HttpOnly)

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM admin_users WHERE id = $1", s.admin.UserID).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login was not recorded")
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("cookie session", func() {
		t := s.T()
		tokenCookie := authtest.LoginUser(t, s.Router, "frontdesk", dbtest.DefaultPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, []*http.Cookie{tokenCookie}, "")

		var me response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "frontdesk", me.Username)
		require.Equal(t, "staff", me.Role)
		require.ElementsMatch(t, []string{"bookings:read", "bookings:status"}, me.Permissions)
	})

	s.Run("bearer token", func() {
		t := s.T()
		token := authtest.Token(t, s.Config.JWT, s.admin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("expired token", func() {
		t := s.T()
		token := authtest.ExpiredToken(t, s.Config.JWT, s.admin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("token from another deployment", func() {
		t := s.T()
		token := authtest.ForeignToken(t, s.admin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("no token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("deactivated after login", func() {
		t := s.T()
		token := authtest.Token(t, s.Config.JWT, s.admin)
		dbtest.DeactivateUser(t, s.DB, s.admin.UserID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the cookie", func() {
		t := s.T()
		tokenCookie := authtest.LoginUser(t, s.Router, "admin", dbtest.DefaultPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, []*http.Cookie{tokenCookie}, "")
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cleared := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})
}

func (s *authSuite) TestRoleGates() {
	s.Run("staff can read bookings but not manage villas", func() {
		t := s.T()
		staff := []*http.Cookie{authtest.LoginUser(t, s.Router, "frontdesk", dbtest.DefaultPassword)}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, "/api/admin/bookings", nil, staff, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, "/api/admin/villas", nil, staff, "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}
