//go:build unit || e2e

package builder

import (
	reqdto "villa-booking/internal/handler/dto/request"
)

func (b *ReservationBuilder) BuildCreateRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VillaID:         b.VillaID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		GuestsCount:     b.GuestsCount,
		ExtraBedCount:   b.ExtraBedCount,
		ExtraBedPrice:   b.ExtraBedPrice,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *VillaBuilder) BuildRequest() reqdto.VillaRequest {
	amenities := make([]reqdto.AmenityRequest, 0, len(b.Amenities))
	for _, a := range b.Amenities {
		amenities = append(amenities, reqdto.AmenityRequest{Icon: a.Icon, Text: a.Text})
	}
	images := make([]reqdto.VillaImageRequest, 0, len(b.Images))
	for _, img := range b.Images {
		images = append(images, reqdto.VillaImageRequest{
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		})
	}
	return reqdto.VillaRequest{
		Slug:            b.Slug,
		Title:           b.Title,
		Description:     b.Description,
		LongDescription: b.LongDescription,
		Location:        b.Location,
		MaxGuests:       b.MaxGuests,
		Status:          b.Status,
		WeekdayPrice:    b.WeekdayPrice,
		WeekendPrice:    b.WeekendPrice,
		HighSeasonPrice: b.HighSeasonPrice,
		Amenities:       amenities,
		Features:        b.Features,
		Images:          images,
	}
}

func (g *GalleryBuilder) BuildRequest() reqdto.GalleryRequest {
	active := g.IsActive
	return reqdto.GalleryRequest{
		Title:        g.Title,
		Description:  g.Description,
		ImageURL:     g.ImageURL,
		AltText:      g.AltText,
		DisplayOrder: g.DisplayOrder,
		IsActive:     &active,
	}
}

func (u *UserBuilder) BuildLoginRequest(password string) reqdto.LoginRequest {
	return reqdto.LoginRequest{Username: u.Username, Password: password}
}
