package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"villa-booking/internal/domain/user"
	"villa-booking/internal/handler/httperr"
	"villa-booking/internal/pkg/cookie"
	"villa-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken     = errors.New("missing access token")
	errForbidden        = errors.New("permission denied")
	errMissingPrincipal = errors.New("permission gate used without authentication")
)

const principalKey = "principal"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

// RequireAuth accepts the admin-token cookie first and falls back to a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminToken(c)
		if token == "" {
			token = bearerToken(c.GetHeader("Authorization"))
		}
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Rejected admin token",
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", err.Error()))
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// RequirePermission lets the request through when the caller's role grants every
// listed permission. It must run after RequireAuth.
func (m *AuthMiddleware) RequirePermission(perms ...user.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
			return
		}

		granted := principal.Role.Permissions()
		for _, p := range perms {
			if !slices.Contains(granted, p) {
				httperr.AbortWithError(c, http.StatusForbidden, errForbidden, "Insufficient permissions",
					map[string]any{"required": string(p)})
				return
			}
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// SetPrincipal records the authenticated caller for later handlers.
func SetPrincipal(c *gin.Context, p *usecase.Principal) {
	c.Set(principalKey, p)
}

func GetPrincipal(c *gin.Context) (*usecase.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*usecase.Principal)
	return p, ok && p != nil
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}
	return p.UserID, true
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		return "", false
	}
	return p.Role, true
}
