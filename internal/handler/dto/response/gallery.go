package response

import (
	"time"

	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type GalleryItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	AltText      string    `json:"alt_text"`
	DisplayOrder int32     `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromGalleryItems(items []*queries.GalleryItemView) []*GalleryItemResponse {
	out := make([]*GalleryItemResponse, len(items))
	for i, it := range items {
		out[i] = FromGalleryItem(it)
	}
	return out
}

func FromGalleryItem(v *queries.GalleryItemView) *GalleryItemResponse {
	var resp GalleryItemResponse
	copyInto(&resp, v)
	return &resp
}

type GalleryToggleResponse struct {
	ID       uuid.UUID `json:"id"`
	IsActive bool      `json:"is_active"`
}
