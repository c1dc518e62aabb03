package response

import (
	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/usecase/queries"
	"villa-booking/internal/usecase/shared"
)

type HighSeasonDateResponse struct {
	Date    string `json:"date"`
	Name    string `json:"name"`
	Weekday string `json:"weekday"`
}

func FromHighSeasonDates(dates []queries.HighSeasonDateView) []HighSeasonDateResponse {
	out := make([]HighSeasonDateResponse, len(dates))
	for i, d := range dates {
		out[i] = HighSeasonDateResponse{
			Date:    pricing.FormatDate(d.Date),
			Name:    d.Name,
			Weekday: d.Date.Weekday().String(),
		}
	}
	return out
}

type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Bytes    int    `json:"bytes"`
}

func FromUploadedImage(img *shared.UploadedImage) *UploadResponse {
	var resp UploadResponse
	copyInto(&resp, img)
	return &resp
}

type IDResponse struct {
	ID string `json:"id"`
}
