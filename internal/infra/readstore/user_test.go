//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"villa-booking/internal/infra"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/usecase/queries"
	"villa-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userQueriesStub struct {
	mock.Mock
}

func (m *userQueriesStub) FindAdminUserByLogin(ctx context.Context, db sqlc.DBTX, login string) (sqlc.AdminUsers, error) {
	args := m.Called(ctx, db, login)
	return args.Get(0).(sqlc.AdminUsers), args.Error(1)
}

func (m *userQueriesStub) FindAdminUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AdminUsers, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.AdminUsers), args.Error(1)
}

func TestUserReadStore_FindByLogin(t *testing.T) {
	lastLogin := builder.FixedNow.Add(-2 * time.Hour)
	row := builder.NewUserBuilder().WithRole("staff").WithLastLogin(lastLogin).BuildInfra()

	t.Run("maps the row and returns the hash separately", func(t *testing.T) {
		stub := new(userQueriesStub)
		stub.On("FindAdminUserByLogin", mock.Anything, mock.Anything, "Admin@Villa.Example.com").Return(row, nil)

		view, hash, err := NewUserReadStore(stub, nil).FindByLogin(context.Background(), "Admin@Villa.Example.com")
		require.NoError(t, err)

		want := &queries.AuthorizedUserView{
			ID:        row.ID,
			Username:  row.Username,
			Email:     row.Email,
			Role:      "staff",
			IsActive:  true,
			LastLogin: &lastLogin,
		}
		if diff := cmp.Diff(want, view); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, row.PasswordHash, hash)
		stub.AssertExpectations(t)
	})

	t.Run("inactive accounts are still returned", func(t *testing.T) {
		inactive := builder.NewUserBuilder().AsInactive().BuildInfra()
		stub := new(userQueriesStub)
		stub.On("FindAdminUserByLogin", mock.Anything, mock.Anything, inactive.Username).Return(inactive, nil)

		view, _, err := NewUserReadStore(stub, nil).FindByLogin(context.Background(), inactive.Username)
		require.NoError(t, err)
		assert.False(t, view.IsActive)
	})
}

func TestUserReadStore_Errors(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "missing row", dbErr: sql.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "driver failure", dbErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name+" by login", func(t *testing.T) {
			stub := new(userQueriesStub)
			stub.On("FindAdminUserByLogin", mock.Anything, mock.Anything, "nobody").Return(sqlc.AdminUsers{}, tt.dbErr)

			view, hash, err := NewUserReadStore(stub, nil).FindByLogin(context.Background(), "nobody")
			assert.Nil(t, view)
			assert.Empty(t, hash)
			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
		})

		t.Run(tt.name+" by id", func(t *testing.T) {
			id := uuid.New()
			stub := new(userQueriesStub)
			stub.On("FindAdminUserByID", mock.Anything, mock.Anything, id).Return(sqlc.AdminUsers{}, tt.dbErr)

			view, err := NewUserReadStore(stub, nil).FindByID(context.Background(), id)
			assert.Nil(t, view)
			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestUserReadStore_FindByID(t *testing.T) {
	row := builder.NewUserBuilder().BuildInfra()
	stub := new(userQueriesStub)
	stub.On("FindAdminUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

	view, err := NewUserReadStore(stub, nil).FindByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, row.ID, view.ID)
	assert.Equal(t, "admin", view.Role)
	assert.Nil(t, view.LastLogin)
}
