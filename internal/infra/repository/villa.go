package repository

import (
	"context"
	"time"

	"villa-booking/internal/domain/villa"
	"villa-booking/internal/infra"
	"villa-booking/internal/infra/repository/converter"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VillaWriteQueries interface {
	CreateVilla(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVillaParams) error
	UpdateVilla(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVillaParams) (int64, error)
	UpdateVillaStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVillaStatusParams) (int64, error)
	DeleteVilla(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetVillaByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Villas, error)
	LockVillaByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Villas, error)
	ListVillaImagesByVillaIDs(ctx context.Context, db sqlc.DBTX, villaIds []uuid.UUID) ([]sqlc.VillaImages, error)
	CreateVillaImage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVillaImageParams) error
	DeleteVillaImagesByVillaID(ctx context.Context, db sqlc.DBTX, villaID uuid.UUID) error
}

type VillaRepository struct {
	queries VillaWriteQueries
	db      sqlc.DBTX
}

func NewVillaRepository(queries VillaWriteQueries, db sqlc.DBTX) *VillaRepository {
	return &VillaRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VillaRepository) Create(ctx context.Context, v *villa.Villa) error {
	params, err := converter.VillaToCreateParams(v)
	if err != nil {
		return infra.WrapRepoErr("failed to encode villa", err)
	}
	if err := r.queries.CreateVilla(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create villa", err)
	}
	return r.insertImages(ctx, v)
}

func (r *VillaRepository) Update(ctx context.Context, v *villa.Villa) error {
	params, err := converter.VillaToUpdateParams(v)
	if err != nil {
		return infra.WrapRepoErr("failed to encode villa", err)
	}
	affected, err := r.queries.UpdateVilla(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update villa", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "villa not found")
	}
	if err := r.queries.DeleteVillaImagesByVillaID(ctx, r.db, v.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear villa images", err)
	}
	return r.insertImages(ctx, v)
}

func (r *VillaRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status villa.Status, updatedAt time.Time) error {
	affected, err := r.queries.UpdateVillaStatus(ctx, r.db, sqlc.UpdateVillaStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(updatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update villa status", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "villa not found")
	}
	return nil
}

// Delete fails with FOREIGN_KEY_VIOLATED while reservations still reference the villa.
func (r *VillaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteVilla(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete villa", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "villa not found")
	}
	return nil
}

func (r *VillaRepository) FindByID(ctx context.Context, id uuid.UUID) (*villa.Villa, error) {
	row, err := r.queries.GetVillaByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("villa not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find villa", err)
	}
	images, err := r.queries.ListVillaImagesByVillaIDs(ctx, r.db, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load villa images", err)
	}
	v, err := converter.VillaFromRow(row, images)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode villa", err)
	}
	return v, nil
}

// LockForBooking takes a row lock with SELECT ... FOR UPDATE. Images are not loaded.
func (r *VillaRepository) LockForBooking(ctx context.Context, id uuid.UUID) (*villa.Villa, error) {
	row, err := r.queries.LockVillaByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("villa not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock villa", err)
	}
	v, err := converter.VillaFromRow(row, nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode villa", err)
	}
	return v, nil
}

func (r *VillaRepository) insertImages(ctx context.Context, v *villa.Villa) error {
	for _, p := range converter.VillaImagesToParams(v.ID(), v.Images()) {
		if err := r.queries.CreateVillaImage(ctx, r.db, p); err != nil {
			return infra.WrapRepoErr("failed to create villa image", err)
		}
	}
	return nil
}
