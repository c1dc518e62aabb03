package cookie

import (
	"net/http"
	"strings"
	"time"

	"villa-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AdminTokenCookieName = "admin-token"
	// AdminPath scopes the token to the back-office API; public routes never see it.
	AdminPath = "/api/admin"
)

// SetAdminToken stores token until expiresAt. The cookie is always HttpOnly.
func SetAdminToken(c *gin.Context, cfg config.CookieConfig, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge <= 0 {
		ClearAdminToken(c, cfg)
		return
	}
	http.SetCookie(c.Writer, adminCookie(cfg, token, maxAge, expiresAt))
}

func ClearAdminToken(c *gin.Context, cfg config.CookieConfig) {
	http.SetCookie(c.Writer, adminCookie(cfg, "", -1, time.Unix(0, 0)))
}

func GetAdminToken(c *gin.Context) string {
	token, err := c.Cookie(AdminTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func adminCookie(cfg config.CookieConfig, value string, maxAge int, expires time.Time) *http.Cookie {
	sameSite := parseSameSite(cfg.SameSite)
	return &http.Cookie{
		Name:     AdminTokenCookieName,
		Value:    value,
		Path:     AdminPath,
		Domain:   cfg.Domain,
		Expires:  expires.UTC(),
		MaxAge:   maxAge,
		HttpOnly: true,
		// Browsers drop SameSite=None cookies that are not Secure.
		Secure:   cfg.Secure || sameSite == http.SameSiteNoneMode,
		SameSite: sameSite,
	}
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
