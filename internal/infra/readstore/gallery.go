package readstore

import (
	"context"

	"villa-booking/internal/infra"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/pkg/pgconv"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type GalleryReadQueries interface {
	ListGalleryItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGalleryItemsParams) ([]sqlc.GalleryItems, error)
	GetGalleryItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GalleryItems, error)
}

type GalleryReadStore struct {
	queries GalleryReadQueries
	db      sqlc.DBTX
}

func NewGalleryReadStore(queries GalleryReadQueries, db sqlc.DBTX) *GalleryReadStore {
	return &GalleryReadStore{queries: queries, db: db}
}

func (r *GalleryReadStore) List(ctx context.Context, activeOnly bool, limit int) ([]*queries.GalleryItemView, error) {
	rows, err := r.queries.ListGalleryItems(ctx, r.db, sqlc.ListGalleryItemsParams{
		ActiveOnly: activeOnly,
		RowLimit:   int32(limit), // #nosec G115 -- clamped by queries.ValidateLimit
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list gallery items", err)
	}
	out := make([]*queries.GalleryItemView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toGalleryItemView(row))
	}
	return out, nil
}

func (r *GalleryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GalleryItemView, error) {
	row, err := r.queries.GetGalleryItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gallery item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find gallery item", err)
	}
	return toGalleryItemView(row), nil
}

func toGalleryItemView(row sqlc.GalleryItems) *queries.GalleryItemView {
	return &queries.GalleryItemView{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		ImageURL:     row.ImageUrl,
		AltText:      row.AltText,
		DisplayOrder: row.DisplayOrder,
		IsActive:     row.IsActive,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
