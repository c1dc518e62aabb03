//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/villa"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VillaBuilder struct {
	ID              uuid.UUID
	Slug            string
	Title           string
	Description     string
	LongDescription string
	Location        string
	MaxGuests       int
	Status          string
	WeekdayPrice    *int64
	WeekendPrice    *int64
	HighSeasonPrice *int64
	Amenities       []villa.Amenity
	Features        []string
	Images          []villa.Image
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewVillaBuilder() *VillaBuilder {
	weekday, weekend, high := int64(2_000_000), int64(2_500_000), int64(3_750_000)
	return &VillaBuilder{
		ID:              uuid.New(),
		Slug:            "villa-sunset",
		Title:           "Villa Sunset",
		Description:     "Three-bedroom villa facing the rice fields",
		LongDescription: "A quiet retreat ten minutes from Ubud centre.",
		Location:        "Ubud, Bali",
		MaxGuests:       6,
		Status:          "active",
		WeekdayPrice:    &weekday,
		WeekendPrice:    &weekend,
		HighSeasonPrice: &high,
		Amenities:       []villa.Amenity{{Icon: "wifi", Text: "Free WiFi"}},
		Features:        []string{"Private pool", "Rice field view"},
		Images: []villa.Image{
			{URL: "https://res.cloudinary.com/demo/image/upload/villa-sunset-1.jpg", AltText: "Pool at dusk", IsPrimary: true},
		},
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
}

func (b *VillaBuilder) With(mutate func(*VillaBuilder)) *VillaBuilder {
	mutate(b)
	return b
}

func (b *VillaBuilder) WithSlug(slug string) *VillaBuilder {
	b.Slug = slug
	return b
}

func (b *VillaBuilder) AsInactive() *VillaBuilder {
	b.Status = "inactive"
	return b
}

func (b *VillaBuilder) WithoutHighSeasonPrice() *VillaBuilder {
	b.HighSeasonPrice = nil
	return b
}

func (b *VillaBuilder) Pricing() pricing.Profile {
	return pricing.Profile{
		WeekdayRate:    b.WeekdayPrice,
		WeekendRate:    b.WeekendPrice,
		HighSeasonRate: b.HighSeasonPrice,
	}
}

func (b *VillaBuilder) Attributes() villa.Attributes {
	return villa.Attributes{
		Slug:            b.Slug,
		Title:           b.Title,
		Description:     b.Description,
		LongDescription: b.LongDescription,
		Location:        b.Location,
		MaxGuests:       b.MaxGuests,
		Status:          b.Status,
		Pricing:         b.Pricing(),
		Amenities:       b.Amenities,
		Features:        b.Features,
		Images:          b.Images,
	}
}

// BuildDomain validates the attributes the way an admin create would.
func (b *VillaBuilder) BuildDomain() (*villa.Villa, error) {
	return villa.NewVilla(b.Attributes(), b.CreatedAt)
}

// BuildStored skips validation and keeps the builder's ID.
func (b *VillaBuilder) BuildStored() *villa.Villa {
	return villa.ReconstructVilla(b.ID, b.Attributes(), b.CreatedAt, b.UpdatedAt)
}

func (b *VillaBuilder) BuildInfra() sqlc.Villas {
	amenities, _ := json.Marshal(b.amenityViews())
	features, _ := json.Marshal(b.Features)
	return sqlc.Villas{
		ID:              b.ID,
		Slug:            b.Slug,
		Title:           b.Title,
		Description:     b.Description,
		LongDescription: b.LongDescription,
		Location:        b.Location,
		MaxGuests:       int32(b.MaxGuests), // #nosec G115
		Status:          b.Status,
		WeekdayPrice:    int8Of(b.WeekdayPrice),
		WeekendPrice:    int8Of(b.WeekendPrice),
		HighSeasonPrice: int8Of(b.HighSeasonPrice),
		Amenities:       amenities,
		Features:        features,
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *VillaBuilder) BuildView() *queries.VillaView {
	images := make([]queries.VillaImageView, 0, len(b.Images))
	for _, img := range b.Images {
		images = append(images, queries.VillaImageView{
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: int32(img.SortOrder), // #nosec G115
		})
	}
	return &queries.VillaView{
		ID:              b.ID,
		Slug:            b.Slug,
		Title:           b.Title,
		Description:     b.Description,
		LongDescription: b.LongDescription,
		Location:        b.Location,
		MaxGuests:       int32(b.MaxGuests), // #nosec G115
		Status:          b.Status,
		WeekdayPrice:    b.WeekdayPrice,
		WeekendPrice:    b.WeekendPrice,
		HighSeasonPrice: b.HighSeasonPrice,
		Amenities:       b.amenityViews(),
		Features:        b.Features,
		Images:          images,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *VillaBuilder) amenityViews() []queries.AmenityView {
	out := make([]queries.AmenityView, 0, len(b.Amenities))
	for _, a := range b.Amenities {
		out = append(out, queries.AmenityView{Icon: a.Icon, Text: a.Text})
	}
	return out
}

func int8Of(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}
