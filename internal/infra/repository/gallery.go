package repository

import (
	"context"

	"villa-booking/internal/domain/gallery"
	"villa-booking/internal/infra"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GalleryWriteQueries interface {
	CreateGalleryItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGalleryItemParams) error
	UpdateGalleryItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateGalleryItemParams) (int64, error)
	DeleteGalleryItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetGalleryItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GalleryItems, error)
}

type GalleryRepository struct {
	queries GalleryWriteQueries
	db      sqlc.DBTX
}

func NewGalleryRepository(queries GalleryWriteQueries, db sqlc.DBTX) *GalleryRepository {
	return &GalleryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GalleryRepository) Create(ctx context.Context, item *gallery.Item) error {
	err := r.queries.CreateGalleryItem(ctx, r.db, sqlc.CreateGalleryItemParams{
		ID:           item.ID(),
		Title:        item.Title(),
		Description:  item.Description(),
		ImageUrl:     item.ImageURL(),
		AltText:      item.AltText(),
		DisplayOrder: int32(item.DisplayOrder()), // #nosec G115
		IsActive:     item.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(item.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(item.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create gallery item", err)
	}
	return nil
}

func (r *GalleryRepository) Update(ctx context.Context, item *gallery.Item) error {
	affected, err := r.queries.UpdateGalleryItem(ctx, r.db, sqlc.UpdateGalleryItemParams{
		ID:           item.ID(),
		Title:        item.Title(),
		Description:  item.Description(),
		ImageUrl:     item.ImageURL(),
		AltText:      item.AltText(),
		DisplayOrder: int32(item.DisplayOrder()), // #nosec G115
		IsActive:     item.IsActive(),
		UpdatedAt:    pgconv.TimeToPgtype(item.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update gallery item", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "gallery item not found")
	}
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteGalleryItem(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete gallery item", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "gallery item not found")
	}
	return nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*gallery.Item, error) {
	row, err := r.queries.GetGalleryItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gallery item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find gallery item", err)
	}
	return GalleryItemFromRow(row), nil
}

func GalleryItemFromRow(row sqlc.GalleryItems) *gallery.Item {
	return gallery.ReconstructItem(row.ID, gallery.Attributes{
		Title:        row.Title,
		Description:  row.Description,
		ImageURL:     row.ImageUrl,
		AltText:      row.AltText,
		DisplayOrder: int(row.DisplayOrder),
		IsActive:     row.IsActive,
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}
