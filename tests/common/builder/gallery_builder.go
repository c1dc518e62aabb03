//go:build unit || e2e

package builder

import (
	"time"

	"villa-booking/internal/domain/gallery"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GalleryBuilder struct {
	ID           uuid.UUID
	Title        string
	Description  string
	ImageURL     string
	AltText      string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
}

func NewGalleryBuilder() *GalleryBuilder {
	return &GalleryBuilder{
		ID:           uuid.New(),
		Title:        "Infinity pool",
		Description:  "Morning view over the valley",
		ImageURL:     "https://res.cloudinary.com/demo/image/upload/gallery-pool.jpg",
		AltText:      "Infinity pool over the valley",
		DisplayOrder: 1,
		IsActive:     true,
		CreatedAt:    FixedNow,
	}
}

func (g *GalleryBuilder) With(mutate func(*GalleryBuilder)) *GalleryBuilder {
	mutate(g)
	return g
}

func (g *GalleryBuilder) Attributes() gallery.Attributes {
	return gallery.Attributes{
		Title:        g.Title,
		Description:  g.Description,
		ImageURL:     g.ImageURL,
		AltText:      g.AltText,
		DisplayOrder: g.DisplayOrder,
		IsActive:     g.IsActive,
	}
}

func (g *GalleryBuilder) BuildDomain() (*gallery.Item, error) {
	return gallery.NewItem(g.Attributes(), g.CreatedAt)
}

func (g *GalleryBuilder) BuildStored() *gallery.Item {
	return gallery.ReconstructItem(g.ID, g.Attributes(), g.CreatedAt, g.CreatedAt)
}

func (g *GalleryBuilder) BuildInfra() sqlc.GalleryItems {
	return sqlc.GalleryItems{
		ID:           g.ID,
		Title:        g.Title,
		Description:  g.Description,
		ImageUrl:     g.ImageURL,
		AltText:      g.AltText,
		DisplayOrder: int32(g.DisplayOrder), // #nosec G115
		IsActive:     g.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: g.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: g.CreatedAt, Valid: true},
	}
}

func (g *GalleryBuilder) BuildView() *queries.GalleryItemView {
	return &queries.GalleryItemView{
		ID:           g.ID,
		Title:        g.Title,
		Description:  g.Description,
		ImageURL:     g.ImageURL,
		AltText:      g.AltText,
		DisplayOrder: int32(g.DisplayOrder), // #nosec G115
		IsActive:     g.IsActive,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.CreatedAt,
	}
}
