//go:build unit

package queries_test

import (
	"context"
	"testing"

	"villa-booking/internal/infra/memstore"
	"villa-booking/internal/usecase/queries"
	"villa-booking/internal/usecase/shared"
	"villa-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	active := builder.NewUserBuilder()
	inactive := builder.NewUserBuilder().WithUsername("former").WithEmail("former@villa.example.com").AsInactive()
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, active.BuildStored()); err != nil {
			return err
		}
		return tx.Users().Create(ctx, inactive.BuildStored())
	})
	q := queries.NewUserQueries(memstore.NewUserReadStore(f.store))

	got, err := q.GetCurrentUser(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, "admin", got.Role)
	assert.Contains(t, got.Permissions, "villas:write")
	assert.Contains(t, got.Permissions, "bookings:status")

	_, err = q.GetCurrentUser(ctx, inactive.ID)
	assert.ErrorIs(t, err, queries.ErrUserInactive)

	_, err = q.GetCurrentUser(ctx, uuid.New())
	assert.ErrorIs(t, err, queries.ErrUserNotFound)
}

func TestUserQueries_GetCurrentUser_StaffPermissions(t *testing.T) {
	f := newFixture(t)
	staff := builder.NewUserBuilder().WithUsername("frontdesk").WithEmail("frontdesk@villa.example.com").WithRole("staff")
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, staff.BuildStored())
	})

	got, err := queries.NewUserQueries(memstore.NewUserReadStore(f.store)).GetCurrentUser(context.Background(), staff.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bookings:read", "bookings:status"}, got.Permissions)
}
