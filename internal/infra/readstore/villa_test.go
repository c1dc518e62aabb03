//go:build unit

package readstore

import (
	"context"
	"testing"

	"villa-booking/internal/infra"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/usecase/queries"
	"villa-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVillaReadQueries struct {
	mock.Mock
}

func (m *MockVillaReadQueries) ListVillas(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVillasParams) ([]sqlc.Villas, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Villas), args.Error(1)
}

func (m *MockVillaReadQueries) GetVillaByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Villas, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Villas), args.Error(1)
}

func (m *MockVillaReadQueries) GetVillaBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Villas, error) {
	args := m.Called(ctx, db, slug)
	return args.Get(0).(sqlc.Villas), args.Error(1)
}

func (m *MockVillaReadQueries) ListVillaImagesByVillaIDs(ctx context.Context, db sqlc.DBTX, villaIds []uuid.UUID) ([]sqlc.VillaImages, error) {
	args := m.Called(ctx, db, villaIds)
	return args.Get(0).([]sqlc.VillaImages), args.Error(1)
}

func TestVillaReadStore_List_GroupsImages(t *testing.T) {
	first := builder.NewVillaBuilder().BuildInfra()
	second := builder.NewVillaBuilder().WithSlug("villa-lotus").BuildInfra()
	active := "active"

	q := new(MockVillaReadQueries)
	q.On("ListVillas", mock.Anything, mock.Anything, sqlc.ListVillasParams{
		Status:   pgtype.Text{String: active, Valid: true},
		RowLimit: 10,
	}).Return([]sqlc.Villas{first, second}, nil)
	q.On("ListVillaImagesByVillaIDs", mock.Anything, mock.Anything, []uuid.UUID{first.ID, second.ID}).Return([]sqlc.VillaImages{
		{VillaID: first.ID, ImageUrl: "https://img.example.com/1.jpg", IsPrimary: true},
		{VillaID: second.ID, ImageUrl: "https://img.example.com/2.jpg", IsPrimary: true},
		{VillaID: second.ID, ImageUrl: "https://img.example.com/3.jpg", SortOrder: 1},
	}, nil)

	got, err := NewVillaReadStore(q, nil).List(context.Background(), queries.VillaListFilter{Status: &active, Limit: 10})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Images, 1)
	assert.Len(t, got[1].Images, 2)
	assert.Equal(t, "villa-lotus", got[1].Slug)
	assert.Equal(t, []queries.AmenityView{{Icon: "wifi", Text: "Free WiFi"}}, got[0].Amenities)
	require.NotNil(t, got[0].HighSeasonPrice)
	assert.Equal(t, int64(3_750_000), *got[0].HighSeasonPrice)
}

func TestVillaReadStore_List_Empty(t *testing.T) {
	q := new(MockVillaReadQueries)
	q.On("ListVillas", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.Villas{}, nil)

	got, err := NewVillaReadStore(q, nil).List(context.Background(), queries.VillaListFilter{Limit: 20})

	require.NoError(t, err)
	assert.Empty(t, got)
	q.AssertNotCalled(t, "ListVillaImagesByVillaIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestVillaReadStore_FindBySlug(t *testing.T) {
	t.Run("keeps missing rates as nil", func(t *testing.T) {
		row := builder.NewVillaBuilder().WithoutHighSeasonPrice().BuildInfra()
		q := new(MockVillaReadQueries)
		q.On("GetVillaBySlug", mock.Anything, mock.Anything, "villa-sunset").Return(row, nil)
		q.On("ListVillaImagesByVillaIDs", mock.Anything, mock.Anything, []uuid.UUID{row.ID}).Return([]sqlc.VillaImages{}, nil)

		got, err := NewVillaReadStore(q, nil).FindBySlug(context.Background(), "villa-sunset")

		require.NoError(t, err)
		assert.Nil(t, got.HighSeasonPrice)
		assert.Equal(t, []string{"Private pool", "Rice field view"}, got.Features)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockVillaReadQueries)
		q.On("GetVillaBySlug", mock.Anything, mock.Anything, "missing").Return(sqlc.Villas{}, pgx.ErrNoRows)

		got, err := NewVillaReadStore(q, nil).FindBySlug(context.Background(), "missing")

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
