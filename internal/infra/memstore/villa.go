package memstore

import (
	"context"
	"sort"
	"time"

	"villa-booking/internal/domain/villa"
	"villa-booking/internal/infra"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type villaRepo struct {
	tx *memTx
}

func (r *villaRepo) Create(_ context.Context, v *villa.Villa) error {
	rec := villaRecordOf(v)
	return r.tx.write(func(s *Store) (func(*Store), error) {
		if _, ok := s.villas[rec.id]; ok {
			return nil, infra.NewRepoErr(infra.KindDuplicateKey, "villa id already exists")
		}
		if s.slugTaken(rec.attrs.Slug, rec.id) {
			return nil, infra.NewRepoErr(infra.KindDuplicateKey, "villa slug already exists")
		}
		s.villas[rec.id] = rec
		return func(s *Store) { delete(s.villas, rec.id) }, nil
	})
}

func (r *villaRepo) Update(_ context.Context, v *villa.Villa) error {
	rec := villaRecordOf(v)
	return r.tx.write(func(s *Store) (func(*Store), error) {
		prev, ok := s.villas[rec.id]
		if !ok {
			return nil, infra.NewRepoErr(infra.KindNotFound, "villa not found")
		}
		if s.slugTaken(rec.attrs.Slug, rec.id) {
			return nil, infra.NewRepoErr(infra.KindDuplicateKey, "villa slug already exists")
		}
		rec.createdAt = prev.createdAt
		s.villas[rec.id] = rec
		return func(s *Store) { s.villas[prev.id] = prev }, nil
	})
}

func (r *villaRepo) UpdateStatus(_ context.Context, id uuid.UUID, status villa.Status, updatedAt time.Time) error {
	return r.tx.write(func(s *Store) (func(*Store), error) {
		prev, ok := s.villas[id]
		if !ok {
			return nil, infra.NewRepoErr(infra.KindNotFound, "villa not found")
		}
		next := prev
		next.attrs.Status = status.String()
		next.updatedAt = updatedAt
		s.villas[id] = next
		return func(s *Store) { s.villas[id] = prev }, nil
	})
}

func (r *villaRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.tx.write(func(s *Store) (func(*Store), error) {
		prev, ok := s.villas[id]
		if !ok {
			return nil, infra.NewRepoErr(infra.KindNotFound, "villa not found")
		}
		for _, res := range s.reservations {
			if res.villaID == id {
				return nil, infra.NewRepoErr(infra.KindForeignKeyViolated, "villa still has reservations")
			}
		}
		delete(s.villas, id)
		return func(s *Store) { s.villas[id] = prev }, nil
	})
}

func (r *villaRepo) FindByID(_ context.Context, id uuid.UUID) (*villa.Villa, error) {
	var (
		rec villaRecord
		ok  bool
	)
	r.tx.read(func(s *Store) { rec, ok = s.villas[id] })
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "villa not found")
	}
	return villa.ReconstructVilla(rec.id, cloneAttrs(rec.attrs), rec.createdAt, rec.updatedAt), nil
}

func (r *villaRepo) LockForBooking(ctx context.Context, id uuid.UUID) (*villa.Villa, error) {
	if err := r.tx.lockVilla(ctx, id); err != nil {
		return nil, infra.WrapRepoErr("failed to lock villa", err)
	}
	return r.FindByID(ctx, id)
}

func villaRecordOf(v *villa.Villa) villaRecord {
	return villaRecord{
		id: v.ID(),
		attrs: cloneAttrs(villa.Attributes{
			Slug:            v.Slug().String(),
			Title:           v.Title(),
			Description:     v.Description(),
			LongDescription: v.LongDescription(),
			Location:        v.Location(),
			MaxGuests:       v.MaxGuests(),
			Status:          v.Status().String(),
			Pricing:         v.Pricing(),
			Amenities:       v.Amenities(),
			Features:        v.Features(),
			Images:          v.Images(),
		}),
		createdAt: v.CreatedAt(),
		updatedAt: v.UpdatedAt(),
	}
}

// caller holds s.mu
func (s *Store) slugTaken(slug string, except uuid.UUID) bool {
	for id, v := range s.villas {
		if id != except && v.attrs.Slug == slug {
			return true
		}
	}
	return false
}

type VillaReadStore struct {
	store *Store
}

func NewVillaReadStore(store *Store) *VillaReadStore {
	return &VillaReadStore{store: store}
}

func (r *VillaReadStore) List(_ context.Context, filter queries.VillaListFilter) ([]*queries.VillaView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	recs := make([]villaRecord, 0, len(r.store.villas))
	for _, v := range r.store.villas {
		if filter.Status != nil && v.attrs.Status != *filter.Status {
			continue
		}
		recs = append(recs, v)
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].createdAt.Equal(recs[j].createdAt) {
			return recs[i].createdAt.After(recs[j].createdAt)
		}
		return recs[i].id.String() < recs[j].id.String()
	})
	if filter.Limit > 0 && len(recs) > filter.Limit {
		recs = recs[:filter.Limit]
	}

	out := make([]*queries.VillaView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, villaView(rec))
	}
	return out, nil
}

func (r *VillaReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.VillaView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.villas[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "villa not found")
	}
	return villaView(rec), nil
}

func (r *VillaReadStore) FindBySlug(_ context.Context, slug string) (*queries.VillaView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rec := range r.store.villas {
		if rec.attrs.Slug == slug {
			return villaView(rec), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "villa not found")
}

func villaView(rec villaRecord) *queries.VillaView {
	a := cloneAttrs(rec.attrs)
	view := &queries.VillaView{
		ID:              rec.id,
		Slug:            a.Slug,
		Title:           a.Title,
		Description:     a.Description,
		LongDescription: a.LongDescription,
		Location:        a.Location,
		MaxGuests:       int32(a.MaxGuests), // #nosec G115
		Status:          a.Status,
		WeekdayPrice:    a.Pricing.WeekdayRate,
		WeekendPrice:    a.Pricing.WeekendRate,
		HighSeasonPrice: a.Pricing.HighSeasonRate,
		Amenities:       make([]queries.AmenityView, 0, len(a.Amenities)),
		Features:        a.Features,
		Images:          make([]queries.VillaImageView, 0, len(a.Images)),
		CreatedAt:       rec.createdAt,
		UpdatedAt:       rec.updatedAt,
	}
	if view.Features == nil {
		view.Features = []string{}
	}
	for _, am := range a.Amenities {
		view.Amenities = append(view.Amenities, queries.AmenityView{Icon: am.Icon, Text: am.Text})
	}
	for _, img := range a.Images {
		view.Images = append(view.Images, queries.VillaImageView{
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: int32(img.SortOrder), // #nosec G115
		})
	}
	return view
}
