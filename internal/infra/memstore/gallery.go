package memstore

import (
	"context"
	"sort"

	"villa-booking/internal/domain/gallery"
	"villa-booking/internal/infra"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type galleryRepo struct {
	tx *memTx
}

func (r *galleryRepo) Create(_ context.Context, item *gallery.Item) error {
	rec := galleryRecordOf(item)
	return r.tx.write(func(s *Store) (func(*Store), error) {
		if _, ok := s.gallery[rec.id]; ok {
			return nil, infra.NewRepoErr(infra.KindDuplicateKey, "gallery item id already exists")
		}
		s.gallery[rec.id] = rec
		return func(s *Store) { delete(s.gallery, rec.id) }, nil
	})
}

func (r *galleryRepo) Update(_ context.Context, item *gallery.Item) error {
	rec := galleryRecordOf(item)
	return r.tx.write(func(s *Store) (func(*Store), error) {
		prev, ok := s.gallery[rec.id]
		if !ok {
			return nil, infra.NewRepoErr(infra.KindNotFound, "gallery item not found")
		}
		rec.createdAt = prev.createdAt
		s.gallery[rec.id] = rec
		return func(s *Store) { s.gallery[prev.id] = prev }, nil
	})
}

func (r *galleryRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.tx.write(func(s *Store) (func(*Store), error) {
		prev, ok := s.gallery[id]
		if !ok {
			return nil, infra.NewRepoErr(infra.KindNotFound, "gallery item not found")
		}
		delete(s.gallery, id)
		return func(s *Store) { s.gallery[id] = prev }, nil
	})
}

func (r *galleryRepo) FindByID(_ context.Context, id uuid.UUID) (*gallery.Item, error) {
	var (
		rec galleryRecord
		ok  bool
	)
	r.tx.read(func(s *Store) { rec, ok = s.gallery[id] })
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "gallery item not found")
	}
	return gallery.ReconstructItem(rec.id, rec.attrs, rec.createdAt, rec.updatedAt), nil
}

func galleryRecordOf(item *gallery.Item) galleryRecord {
	return galleryRecord{
		id: item.ID(),
		attrs: gallery.Attributes{
			Title:        item.Title(),
			Description:  item.Description(),
			ImageURL:     item.ImageURL(),
			AltText:      item.AltText(),
			DisplayOrder: item.DisplayOrder(),
			IsActive:     item.IsActive(),
		},
		createdAt: item.CreatedAt(),
		updatedAt: item.UpdatedAt(),
	}
}

type GalleryReadStore struct {
	store *Store
}

func NewGalleryReadStore(store *Store) *GalleryReadStore {
	return &GalleryReadStore{store: store}
}

// List orders by display order, newest first within the same slot.
func (r *GalleryReadStore) List(_ context.Context, activeOnly bool, limit int) ([]*queries.GalleryItemView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	recs := make([]galleryRecord, 0, len(r.store.gallery))
	for _, rec := range r.store.gallery {
		if activeOnly && !rec.attrs.IsActive {
			continue
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].attrs.DisplayOrder != recs[j].attrs.DisplayOrder {
			return recs[i].attrs.DisplayOrder < recs[j].attrs.DisplayOrder
		}
		return recs[i].createdAt.After(recs[j].createdAt)
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	out := make([]*queries.GalleryItemView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, galleryView(rec))
	}
	return out, nil
}

func (r *GalleryReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.GalleryItemView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.gallery[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "gallery item not found")
	}
	return galleryView(rec), nil
}

func galleryView(rec galleryRecord) *queries.GalleryItemView {
	return &queries.GalleryItemView{
		ID:           rec.id,
		Title:        rec.attrs.Title,
		Description:  rec.attrs.Description,
		ImageURL:     rec.attrs.ImageURL,
		AltText:      rec.attrs.AltText,
		DisplayOrder: int32(rec.attrs.DisplayOrder), // #nosec G115
		IsActive:     rec.attrs.IsActive,
		CreatedAt:    rec.createdAt,
		UpdatedAt:    rec.updatedAt,
	}
}
