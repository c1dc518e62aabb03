//go:build unit

package user_test

import (
	"testing"
	"time"

	"villa-booking/internal/domain/user"
	"villa-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		username, _ := user.NewUsername("admin")
		email, _ := user.NewEmail("admin@villa.example.com")
		expected := user.NewUser(username, email, "hashed_password", user.RoleAdmin, builder.FixedNow)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("ops@villa.example.com") },
			},
			{
				name:   "empty",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("opsvilla.example.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("username", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "dots and dashes",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("front.desk-1") },
			},
			{
				name:   "too short",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ab") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "spaces",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("front desk") },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "staff",
				mutate: func(b *builder.UserBuilder) { b.WithRole("staff") },
			},
			{
				name:   "super admin",
				mutate: func(b *builder.UserBuilder) { b.WithRole("super_admin") },
			},
			{
				name:   "unknown",
				mutate: func(b *builder.UserBuilder) { b.WithRole("owner") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestEmail_Normalizes(t *testing.T) {
	email, err := user.NewEmail("  Admin@Villa.Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "admin@villa.example.com", email.Value())
}

func TestCredentials(t *testing.T) {
	creds, err := user.NewCredentials(" admin@villa.example.com ", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "admin@villa.example.com", creds.Login())
	assert.True(t, creds.IsEmail())

	creds, err = user.NewCredentials("admin", "s3cretpass")
	require.NoError(t, err)
	assert.False(t, creds.IsEmail())

	_, err = user.NewCredentials("  ", "s3cretpass")
	assert.ErrorIs(t, err, user.ErrInvalidLogin)

	_, err = user.NewCredentials("admin", "short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		have, want user.Role
		ok         bool
	}{
		{user.RoleStaff, user.RoleStaff, true},
		{user.RoleStaff, user.RoleAdmin, false},
		{user.RoleAdmin, user.RoleStaff, true},
		{user.RoleSuperAdmin, user.RoleAdmin, true},
		{user.Role("owner"), user.RoleStaff, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.have.AtLeast(tt.want), "%s >= %s", tt.have, tt.want)
	}
}

func TestUser_RecordLogin(t *testing.T) {
	u := builder.NewUserBuilder().BuildStored()
	at := builder.FixedNow.Add(48 * time.Hour)

	u.RecordLogin(at)

	require.NotNil(t, u.LastLogin())
	assert.Equal(t, at, *u.LastLogin())
	assert.Equal(t, at, u.UpdatedAt())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestRole_Permissions(t *testing.T) {
	staff := user.RoleStaff.Permissions()
	assert.ElementsMatch(t, []user.Permission{user.PermBookingsRead, user.PermBookingsStatus}, staff)

	admin := user.RoleAdmin.Permissions()
	assert.Contains(t, admin, user.PermVillasWrite)
	assert.Contains(t, admin, user.PermBookingsStatus)
	assert.Equal(t, admin, user.RoleSuperAdmin.Permissions())

	assert.Empty(t, user.Role("guest").Permissions())

	staff[0] = user.PermUploads
	assert.NotContains(t, user.RoleStaff.Permissions(), user.PermUploads)
}
