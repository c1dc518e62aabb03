package queries

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/villa"
	"villa-booking/internal/infra"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrVillaNotFound = errs.New("villa not found")

type VillaReadStore interface {
	List(ctx context.Context, filter VillaListFilter) ([]*VillaView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VillaView, error)
	FindBySlug(ctx context.Context, slug string) (*VillaView, error)
}

type VillaQueries interface {
	// ListActive is the public catalog: active villas only, newest first.
	ListActive(ctx context.Context, limit int) ([]*VillaView, error)
	List(ctx context.Context, filter VillaListFilter) ([]*VillaView, error)
	// GetBySlug hides inactive villas.
	GetBySlug(ctx context.Context, slug string) (*VillaDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VillaDetail, error)
}

type villaQueriesImpl struct {
	store VillaReadStore
	cache shared.Cache
	ttl   time.Duration
}

func NewVillaQueries(store VillaReadStore, cache shared.Cache, ttl time.Duration) VillaQueries {
	return &villaQueriesImpl{store: store, cache: cache, ttl: ttl}
}

func (q *villaQueriesImpl) ListActive(ctx context.Context, limit int) ([]*VillaView, error) {
	limit = ValidateLimit(limit)
	key := shared.VillaCachePrefix + "active:" + strconv.Itoa(limit)

	var cached []*VillaView
	if q.lookup(ctx, key, &cached) {
		return cached, nil
	}

	active := villa.StatusActive.String()
	views, err := q.store.List(ctx, VillaListFilter{Status: &active, Limit: limit})
	if err != nil {
		return nil, err
	}
	q.remember(ctx, key, views)
	return views, nil
}

func (q *villaQueriesImpl) List(ctx context.Context, filter VillaListFilter) ([]*VillaView, error) {
	if filter.Status != nil {
		if _, err := villa.NewStatus(*filter.Status); err != nil || *filter.Status == "" {
			return nil, villa.ErrInvalidStatus
		}
	}
	filter.Limit = ValidateLimit(filter.Limit)
	return q.store.List(ctx, filter)
}

func (q *villaQueriesImpl) GetBySlug(ctx context.Context, slug string) (*VillaDetail, error) {
	key := shared.VillaCachePrefix + "slug:" + slug

	var cached VillaDetail
	if q.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	v, err := q.store.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVillaNotFound
		}
		return nil, err
	}
	if v.Status != villa.StatusActive.String() {
		return nil, ErrVillaNotFound
	}

	detail := newVillaDetail(v)
	q.remember(ctx, key, detail)
	return detail, nil
}

func (q *villaQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VillaDetail, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVillaNotFound
		}
		return nil, err
	}
	return newVillaDetail(v), nil
}

// lookup treats cache failures as misses; the store stays the source of truth.
func (q *villaQueriesImpl) lookup(ctx context.Context, key string, dst any) bool {
	hit, err := q.cache.Get(ctx, key, dst)
	if err != nil {
		slog.WarnContext(ctx, "villa cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return hit
}

func (q *villaQueriesImpl) remember(ctx context.Context, key string, value any) {
	if err := q.cache.Set(ctx, key, value, q.ttl); err != nil {
		slog.WarnContext(ctx, "villa cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func newVillaDetail(v *VillaView) *VillaDetail {
	detail := &VillaDetail{Villa: v}
	r, err := pricing.PriceRange(ProfileOf(v))
	if err == nil {
		detail.PriceRange = &PriceRangeView{Min: r.Min, Max: r.Max, Display: pricing.FormatRange(r)}
	}
	return detail
}

func ProfileOf(v *VillaView) pricing.Profile {
	return pricing.Profile{
		WeekdayRate:    v.WeekdayPrice,
		WeekendRate:    v.WeekendPrice,
		HighSeasonRate: v.HighSeasonPrice,
	}
}
