package response

import (
	"time"

	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AmenityResponse struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

type VillaImageResponse struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int32  `json:"sort_order"`
}

type PriceRangeResponse struct {
	Min     int64  `json:"min"`
	Max     int64  `json:"max"`
	Display string `json:"display"`
}

type VillaResponse struct {
	ID              uuid.UUID            `json:"id"`
	Slug            string               `json:"slug"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	LongDescription string               `json:"long_description"`
	Location        string               `json:"location"`
	MaxGuests       int32                `json:"max_guests"`
	Status          string               `json:"status"`
	WeekdayPrice    *int64               `json:"weekday_price"`
	WeekendPrice    *int64               `json:"weekend_price"`
	HighSeasonPrice *int64               `json:"high_season_price"`
	Amenities       []AmenityResponse    `json:"amenities"`
	Features        []string             `json:"features"`
	Images          []VillaImageResponse `json:"images"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type VillaDetailResponse struct {
	Villa      *VillaResponse      `json:"villa"`
	PriceRange *PriceRangeResponse `json:"price_range,omitempty"`
}

func FromVillaView(v *queries.VillaView) *VillaResponse {
	var resp VillaResponse
	copyInto(&resp, v)
	if resp.Amenities == nil {
		resp.Amenities = []AmenityResponse{}
	}
	if resp.Features == nil {
		resp.Features = []string{}
	}
	if resp.Images == nil {
		resp.Images = []VillaImageResponse{}
	}
	return &resp
}

func FromVillaViews(views []*queries.VillaView) []*VillaResponse {
	out := make([]*VillaResponse, len(views))
	for i, v := range views {
		out[i] = FromVillaView(v)
	}
	return out
}

func FromVillaDetail(d *queries.VillaDetail) *VillaDetailResponse {
	resp := &VillaDetailResponse{Villa: FromVillaView(d.Villa)}
	if d.PriceRange != nil {
		resp.PriceRange = &PriceRangeResponse{
			Min:     d.PriceRange.Min,
			Max:     d.PriceRange.Max,
			Display: d.PriceRange.Display,
		}
	}
	return resp
}

type VillaStatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}
