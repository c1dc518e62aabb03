//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "villa-booking/internal/handler/dto/request"
	"villa-booking/internal/infra/memstore"
	"villa-booking/internal/pkg/clock"
	"villa-booking/internal/pkg/config"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/pkg/jwt"
	"villa-booking/internal/pkg/password"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/shared"
	"villa-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "s3cret-pass"

type authFixture struct {
	store *memstore.Store
	cmds  commands.AuthCommands
	jwt   *jwt.Service
}

func newAuthFixture(t *testing.T, users ...*builder.UserBuilder) *authFixture {
	t.Helper()
	store := memstore.New()
	uow := memstore.NewUoW(store)
	hash, err := password.HashWithCost(testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	for _, u := range users {
		stored := u.WithPasswordHash(hash).BuildStored()
		require.NoError(t, uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().Create(ctx, stored)
		}))
	}
	svc := jwt.NewService("test-secret", 24*time.Hour)
	return &authFixture{
		store: store,
		cmds:  commands.NewAuthCommands(uow, memstore.NewUserReadStore(store), svc, clock.NewMockClock(builder.FixedNow)),
		jwt:   svc,
	}
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("username login issues a token and records last login", func(t *testing.T) {
		ub := builder.NewUserBuilder()
		f := newAuthFixture(t, ub)

		got, err := f.cmds.Login(ctx, ub.BuildLoginRequest(testPassword))
		require.NoError(t, err)

		claims, err := f.jwt.ValidateToken(got.Token)
		require.NoError(t, err)
		assert.Equal(t, ub.ID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), got.ExpiresAt, time.Minute)
		require.NotNil(t, got.User.LastLogin)

		view, err := memstore.NewUserReadStore(f.store).FindByID(ctx, ub.ID)
		require.NoError(t, err)
		require.NotNil(t, view.LastLogin)
		assert.True(t, view.LastLogin.Equal(builder.FixedNow))
	})

	t.Run("email login is case-insensitive", func(t *testing.T) {
		ub := builder.NewUserBuilder()
		f := newAuthFixture(t, ub)

		_, err := f.cmds.Login(ctx, reqdto.LoginRequest{Username: "ADMIN@villa.example.com", Password: testPassword})
		assert.NoError(t, err)
	})

	cases := []struct {
		name string
		user *builder.UserBuilder
		req  reqdto.LoginRequest
		want error
	}{
		{
			name: "wrong password",
			user: builder.NewUserBuilder(),
			req:  reqdto.LoginRequest{Username: "admin", Password: "not-the-password"},
			want: commands.ErrInvalidCredentials,
		},
		{
			name: "unknown user",
			user: builder.NewUserBuilder(),
			req:  reqdto.LoginRequest{Username: "ghost", Password: testPassword},
			want: commands.ErrInvalidCredentials,
		},
		{
			name: "inactive user",
			user: builder.NewUserBuilder().AsInactive(),
			req:  reqdto.LoginRequest{Username: "admin", Password: testPassword},
			want: commands.ErrUserInactive,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(t, tc.user)
			_, err := f.cmds.Login(ctx, tc.req)
			assert.True(t, errs.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestAuthCommands_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	cfg := config.AdminConfig{Username: "owner", Email: "owner@villa.example.com", Password: testPassword}

	t.Run("creates the first account once", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.cmds.EnsureAdmin(ctx, cfg))
		require.NoError(t, f.cmds.EnsureAdmin(ctx, cfg))

		got, err := f.cmds.Login(ctx, reqdto.LoginRequest{Username: "owner", Password: testPassword})
		require.NoError(t, err)
		assert.Equal(t, "super_admin", got.User.Role)
	})

	t.Run("skipped when users exist", func(t *testing.T) {
		f := newAuthFixture(t, builder.NewUserBuilder())
		require.NoError(t, f.cmds.EnsureAdmin(ctx, cfg))

		_, err := f.cmds.Login(ctx, reqdto.LoginRequest{Username: "owner", Password: testPassword})
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("skipped when not configured", func(t *testing.T) {
		f := newAuthFixture(t)
		assert.NoError(t, f.cmds.EnsureAdmin(ctx, config.AdminConfig{}))
	})
}
