package queries

import (
	"context"

	"villa-booking/internal/infra"
	"villa-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrGalleryItemNotFound = errs.New("gallery item not found")

type GalleryReadStore interface {
	// List orders by display order, then newest first.
	List(ctx context.Context, activeOnly bool, limit int) ([]*GalleryItemView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GalleryItemView, error)
}

type GalleryQueries interface {
	ListActive(ctx context.Context, limit int) ([]*GalleryItemView, error)
	ListAll(ctx context.Context, limit int) ([]*GalleryItemView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GalleryItemView, error)
}

type galleryQueriesImpl struct {
	store GalleryReadStore
}

func NewGalleryQueries(store GalleryReadStore) GalleryQueries {
	return &galleryQueriesImpl{store: store}
}

func (q *galleryQueriesImpl) ListActive(ctx context.Context, limit int) ([]*GalleryItemView, error) {
	return q.store.List(ctx, true, ValidateLimit(limit))
}

func (q *galleryQueriesImpl) ListAll(ctx context.Context, limit int) ([]*GalleryItemView, error) {
	return q.store.List(ctx, false, ValidateLimit(limit))
}

func (q *galleryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GalleryItemView, error) {
	item, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}
	return item, nil
}
