package api

import (
	"net/http"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/domain/villa"
	"villa-booking/internal/handler/httperr"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/queries"
	"villa-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type errorRule struct {
	target  error
	status  int
	message string
}

// errorRules is matched top-down; more specific causes come before the sentinels that mark them.
// An empty message exposes the cause text, which for these errors is a user-facing domain message.
var errorRules = []errorRule{
	{reservation.ErrInvalidStatusTransition, http.StatusConflict, ""},
	{reservation.ErrReservationNotModifiable, http.StatusConflict, ""},
	{pricing.ErrCalendarYearNotLoaded, http.StatusUnprocessableEntity, "Pricing calendar is not available for the selected dates"},
	{pricing.ErrIncompletePricingProfile, http.StatusUnprocessableEntity, "Villa pricing is incomplete"},
	{pricing.ErrPriceOverflow, http.StatusUnprocessableEntity, "Stay price is out of range"},

	{commands.ErrInvalidBooking, http.StatusBadRequest, ""},
	{commands.ErrNothingToUpdate, http.StatusBadRequest, ""},
	{commands.ErrInvalidVilla, http.StatusBadRequest, ""},
	{commands.ErrInvalidGalleryItem, http.StatusBadRequest, ""},
	{commands.ErrUnsupportedImageType, http.StatusBadRequest, ""},
	{commands.ErrImageTooLarge, http.StatusBadRequest, ""},
	{queries.ErrInvalidWindow, http.StatusBadRequest, ""},
	{queries.ErrPageOutOfRange, http.StatusBadRequest, ""},
	{pricing.ErrInvalidRange, http.StatusBadRequest, ""},
	{villa.ErrInvalidStatus, http.StatusBadRequest, ""},
	{reservation.ErrInvalidStatus, http.StatusBadRequest, ""},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},

	{commands.ErrVillaNotBookable, http.StatusNotFound, ""},
	{commands.ErrVillaNotFound, http.StatusNotFound, "Villa not found"},
	{queries.ErrVillaNotFound, http.StatusNotFound, "Villa not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrGalleryItemNotFound, http.StatusNotFound, "Gallery item not found"},
	{queries.ErrGalleryItemNotFound, http.StatusNotFound, "Gallery item not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},

	{commands.ErrUnavailable, http.StatusConflict, ""},
	{commands.ErrBookingDeleteBlocked, http.StatusConflict, ""},
	{commands.ErrSlugTaken, http.StatusConflict, "Slug already in use"},
	{commands.ErrVillaHasBookings, http.StatusConflict, "Villa still has bookings and cannot be deleted"},

	{shared.ErrStorageDisabled, http.StatusServiceUnavailable, "Image uploads are not configured"},
	{commands.ErrUploadFailed, http.StatusBadGateway, "Image upload failed"},
}

// abortWithUsecaseError maps usecase and domain errors onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	for _, rule := range errorRules {
		if !errs.Is(err, rule.target) {
			continue
		}
		msg := rule.message
		if msg == "" {
			msg = errs.Cause(err).Error()
		}
		httperr.AbortWithError(c, rule.status, err, msg, nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}
