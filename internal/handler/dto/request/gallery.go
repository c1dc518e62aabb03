package request

import (
	"villa-booking/internal/domain/gallery"
	"villa-booking/internal/pkg/patch"
)

type GalleryRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url" binding:"required,url"`
	AltText      string `json:"alt_text" binding:"max=200"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
	IsActive     *bool  `json:"is_active"`
}

func (r *GalleryRequest) ToAttributes() gallery.Attributes {
	return gallery.Attributes{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		AltText:      r.AltText,
		DisplayOrder: r.DisplayOrder,
		IsActive:     patch.Coalesce(r.IsActive, true),
	}
}

type LimitQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}
