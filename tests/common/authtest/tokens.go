//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"villa-booking/internal/pkg/config"
	"villa-booking/internal/pkg/jwt"
	"villa-booking/internal/usecase"

	"github.com/stretchr/testify/require"
)

// Token signs a valid access token for p with the application's secret.
func Token(t *testing.T, cfg config.JWTConfig, p usecase.Principal) string {
	t.Helper()
	return issue(t, cfg.Secret, cfg.Duration, p)
}

// ExpiredToken is correctly signed but expired an hour ago, well past the leeway.
func ExpiredToken(t *testing.T, cfg config.JWTConfig, p usecase.Principal) string {
	t.Helper()
	return issue(t, cfg.Secret, -time.Hour, p)
}

// ForeignToken is well formed but signed with a secret the server does not know.
func ForeignToken(t *testing.T, p usecase.Principal) string {
	t.Helper()
	return issue(t, "some-other-deployment-secret-value", time.Hour, p)
}

func issue(t *testing.T, secret string, ttl time.Duration, p usecase.Principal) string {
	t.Helper()
	issued, err := jwt.NewService(secret, ttl).Issue(p.UserID, p.Username, p.Role)
	require.NoError(t, err)
	return issued.Token
}
