package readstore

import (
	"context"

	"villa-booking/internal/infra"
	"villa-booking/internal/infra/repository/converter"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/pkg/pgconv"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type VillaReadQueries interface {
	ListVillas(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVillasParams) ([]sqlc.Villas, error)
	GetVillaByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Villas, error)
	GetVillaBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Villas, error)
	ListVillaImagesByVillaIDs(ctx context.Context, db sqlc.DBTX, villaIds []uuid.UUID) ([]sqlc.VillaImages, error)
}

type VillaReadStore struct {
	queries VillaReadQueries
	db      sqlc.DBTX
}

func NewVillaReadStore(queries VillaReadQueries, db sqlc.DBTX) *VillaReadStore {
	return &VillaReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VillaReadStore) List(ctx context.Context, filter queries.VillaListFilter) ([]*queries.VillaView, error) {
	rows, err := r.queries.ListVillas(ctx, r.db, sqlc.ListVillasParams{
		Status:   pgconv.StringPtrToPgtype(filter.Status),
		RowLimit: int32(filter.Limit), // #nosec G115 -- clamped by queries.ValidateLimit
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list villas", err)
	}
	if len(rows) == 0 {
		return []*queries.VillaView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	images, err := r.queries.ListVillaImagesByVillaIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list villa images", err)
	}
	byVilla := make(map[uuid.UUID][]sqlc.VillaImages, len(rows))
	for _, img := range images {
		byVilla[img.VillaID] = append(byVilla[img.VillaID], img)
	}

	out := make([]*queries.VillaView, 0, len(rows))
	for _, row := range rows {
		view, err := toVillaView(row, byVilla[row.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode villa", err)
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *VillaReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VillaView, error) {
	row, err := r.queries.GetVillaByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("villa not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find villa by ID", err)
	}
	return r.withImages(ctx, row)
}

func (r *VillaReadStore) FindBySlug(ctx context.Context, slug string) (*queries.VillaView, error) {
	row, err := r.queries.GetVillaBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("villa not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find villa by slug", err)
	}
	return r.withImages(ctx, row)
}

func (r *VillaReadStore) withImages(ctx context.Context, row sqlc.Villas) (*queries.VillaView, error) {
	images, err := r.queries.ListVillaImagesByVillaIDs(ctx, r.db, []uuid.UUID{row.ID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list villa images", err)
	}
	view, err := toVillaView(row, images)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode villa", err)
	}
	return view, nil
}

func toVillaView(row sqlc.Villas, images []sqlc.VillaImages) (*queries.VillaView, error) {
	amenities, err := converter.DecodeAmenities(row.Amenities)
	if err != nil {
		return nil, err
	}
	features, err := converter.DecodeFeatures(row.Features)
	if err != nil {
		return nil, err
	}

	view := &queries.VillaView{
		ID:              row.ID,
		Slug:            row.Slug,
		Title:           row.Title,
		Description:     row.Description,
		LongDescription: row.LongDescription,
		Location:        row.Location,
		MaxGuests:       row.MaxGuests,
		Status:          row.Status,
		WeekdayPrice:    pgconv.Int64PtrFromPgtype(row.WeekdayPrice),
		WeekendPrice:    pgconv.Int64PtrFromPgtype(row.WeekendPrice),
		HighSeasonPrice: pgconv.Int64PtrFromPgtype(row.HighSeasonPrice),
		Amenities:       make([]queries.AmenityView, 0, len(amenities)),
		Features:        features,
		Images:          make([]queries.VillaImageView, 0, len(images)),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if view.Features == nil {
		view.Features = []string{}
	}
	for _, a := range amenities {
		view.Amenities = append(view.Amenities, queries.AmenityView{Icon: a.Icon, Text: a.Text})
	}
	for _, img := range images {
		view.Images = append(view.Images, queries.VillaImageView{
			URL:       img.ImageUrl,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		})
	}
	return view, nil
}
