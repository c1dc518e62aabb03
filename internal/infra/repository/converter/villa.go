package converter

import (
	"encoding/json"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/villa"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type amenityJSON struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

func EncodeAmenities(in []villa.Amenity) ([]byte, error) {
	out := make([]amenityJSON, 0, len(in))
	for _, a := range in {
		out = append(out, amenityJSON(a))
	}
	return json.Marshal(out)
}

func DecodeAmenities(raw []byte) ([]villa.Amenity, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var in []amenityJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	out := make([]villa.Amenity, 0, len(in))
	for _, a := range in {
		out = append(out, villa.Amenity(a))
	}
	return out, nil
}

func EncodeFeatures(in []string) ([]byte, error) {
	if in == nil {
		in = []string{}
	}
	return json.Marshal(in)
}

func DecodeFeatures(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func VillaToCreateParams(v *villa.Villa) (sqlc.CreateVillaParams, error) {
	amenities, err := EncodeAmenities(v.Amenities())
	if err != nil {
		return sqlc.CreateVillaParams{}, err
	}
	features, err := EncodeFeatures(v.Features())
	if err != nil {
		return sqlc.CreateVillaParams{}, err
	}
	p := v.Pricing()
	return sqlc.CreateVillaParams{
		ID:              v.ID(),
		Slug:            v.Slug().String(),
		Title:           v.Title(),
		Description:     v.Description(),
		LongDescription: v.LongDescription(),
		Location:        v.Location(),
		MaxGuests:       int32(v.MaxGuests()), // #nosec G115 -- validated small positive
		Status:          v.Status().String(),
		WeekdayPrice:    pgconv.Int64PtrToPgtype(p.WeekdayRate),
		WeekendPrice:    pgconv.Int64PtrToPgtype(p.WeekendRate),
		HighSeasonPrice: pgconv.Int64PtrToPgtype(p.HighSeasonRate),
		Amenities:       amenities,
		Features:        features,
		CreatedAt:       pgconv.TimeToPgtype(v.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(v.UpdatedAt()),
	}, nil
}

func VillaToUpdateParams(v *villa.Villa) (sqlc.UpdateVillaParams, error) {
	created, err := VillaToCreateParams(v)
	if err != nil {
		return sqlc.UpdateVillaParams{}, err
	}
	return sqlc.UpdateVillaParams{
		ID:              created.ID,
		Slug:            created.Slug,
		Title:           created.Title,
		Description:     created.Description,
		LongDescription: created.LongDescription,
		Location:        created.Location,
		MaxGuests:       created.MaxGuests,
		Status:          created.Status,
		WeekdayPrice:    created.WeekdayPrice,
		WeekendPrice:    created.WeekendPrice,
		HighSeasonPrice: created.HighSeasonPrice,
		Amenities:       created.Amenities,
		Features:        created.Features,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}

func VillaImagesToParams(villaID uuid.UUID, images []villa.Image) []sqlc.CreateVillaImageParams {
	out := make([]sqlc.CreateVillaImageParams, 0, len(images))
	for _, img := range images {
		out = append(out, sqlc.CreateVillaImageParams{
			VillaID:   villaID,
			ImageUrl:  img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: int32(img.SortOrder), // #nosec G115
		})
	}
	return out
}

func VillaImagesFromRows(rows []sqlc.VillaImages) []villa.Image {
	out := make([]villa.Image, 0, len(rows))
	for _, r := range rows {
		out = append(out, villa.Image{
			URL:       r.ImageUrl,
			AltText:   r.AltText,
			IsPrimary: r.IsPrimary,
			SortOrder: int(r.SortOrder),
		})
	}
	return out
}

func PricingFromRow(row sqlc.Villas) pricing.Profile {
	return pricing.Profile{
		WeekdayRate:    pgconv.Int64PtrFromPgtype(row.WeekdayPrice),
		WeekendRate:    pgconv.Int64PtrFromPgtype(row.WeekendPrice),
		HighSeasonRate: pgconv.Int64PtrFromPgtype(row.HighSeasonPrice),
	}
}

func VillaFromRow(row sqlc.Villas, images []sqlc.VillaImages) (*villa.Villa, error) {
	amenities, err := DecodeAmenities(row.Amenities)
	if err != nil {
		return nil, err
	}
	features, err := DecodeFeatures(row.Features)
	if err != nil {
		return nil, err
	}
	attrs := villa.Attributes{
		Slug:            row.Slug,
		Title:           row.Title,
		Description:     row.Description,
		LongDescription: row.LongDescription,
		Location:        row.Location,
		MaxGuests:       int(row.MaxGuests),
		Status:          row.Status,
		Pricing:         PricingFromRow(row),
		Amenities:       amenities,
		Features:        features,
		Images:          VillaImagesFromRows(images),
	}
	return villa.ReconstructVilla(row.ID, attrs, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}
