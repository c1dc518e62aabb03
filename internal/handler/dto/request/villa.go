package request

import (
	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/villa"
)

type AmenityRequest struct {
	Icon string `json:"icon" binding:"max=50"`
	Text string `json:"text" binding:"required,max=120"`
}

type VillaImageRequest struct {
	URL       string `json:"url" binding:"required,url"`
	AltText   string `json:"alt_text" binding:"max=200"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order" binding:"min=0"`
}

type VillaRequest struct {
	Slug            string              `json:"slug" binding:"required,max=120"`
	Title           string              `json:"title" binding:"required,max=200"`
	Description     string              `json:"description"`
	LongDescription string              `json:"long_description"`
	Location        string              `json:"location" binding:"required,max=200"`
	MaxGuests       int                 `json:"max_guests" binding:"required,min=1"`
	Status          string              `json:"status" binding:"omitempty,oneof=active inactive"`
	WeekdayPrice    *int64              `json:"weekday_price" binding:"required,min=0"`
	WeekendPrice    *int64              `json:"weekend_price" binding:"required,min=0"`
	HighSeasonPrice *int64              `json:"high_season_price" binding:"required,min=0"`
	Amenities       []AmenityRequest    `json:"amenities" binding:"dive"`
	Features        []string            `json:"features"`
	Images          []VillaImageRequest `json:"images" binding:"dive"`
}

func (r *VillaRequest) ToAttributes() villa.Attributes {
	status := r.Status
	if status == "" {
		status = villa.StatusActive.String()
	}

	amenities := make([]villa.Amenity, 0, len(r.Amenities))
	for _, a := range r.Amenities {
		amenities = append(amenities, villa.Amenity{Icon: a.Icon, Text: a.Text})
	}
	images := make([]villa.Image, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, villa.Image{
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		})
	}

	return villa.Attributes{
		Slug:            r.Slug,
		Title:           r.Title,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		Location:        r.Location,
		MaxGuests:       r.MaxGuests,
		Status:          status,
		Pricing: pricing.Profile{
			WeekdayRate:    r.WeekdayPrice,
			WeekendRate:    r.WeekendPrice,
			HighSeasonRate: r.HighSeasonPrice,
		},
		Amenities: amenities,
		Features:  append([]string(nil), r.Features...),
		Images:    images,
	}
}

type ListVillasQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}
