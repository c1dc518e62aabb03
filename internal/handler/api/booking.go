package api

import (
	"net/http"

	reqdto "villa-booking/internal/handler/dto/request"
	resdto "villa-booking/internal/handler/dto/response"
	"villa-booking/internal/handler/httperr"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: bookingCommands,
		queries:  bookingQueries,
	}
}

// @Summary Request a booking
// @Description Public booking form. The booking is stored as pending with the website source.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreatePublic(c *gin.Context) {
	h.create(c, commands.OriginPublic)
}

// @Summary Create a booking
// @Description Back-office booking entry; source and initial status may be set.
// @Tags admin-bookings
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings [post]
func (h *BookingHandler) CreateAdmin(c *gin.Context) {
	h.create(c, commands.OriginAdmin)
}

func (h *BookingHandler) create(c *gin.Context, origin commands.Origin) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request")
		return
	}

	result, err := h.commands.Create(c.Request.Context(), req, origin)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary List bookings
// @Tags admin-bookings
// @Security CookieAuth
// @Produce json
// @Param status query string false "Booking status"
// @Param villa_id query string false "Villa ID"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query parameters")
		return
	}

	filter := queries.BookingFilter{Page: q.Page, Limit: q.Limit}
	if q.Status != "" {
		filter.Status = &q.Status
	}
	if q.VillaID != "" {
		villaID, err := uuid.Parse(q.VillaID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid villa ID", nil)
			return
		}
		filter.VillaID = &villaID
	}

	page, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary Get booking
// @Tags admin-bookings
// @Security CookieAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking ID")
	if !ok {
		return
	}

	booking, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get booking")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(booking))
}

// @Summary Update booking
// @Description Partial update. Changing the dates reprices the stay and re-checks availability.
// @Tags admin-bookings
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking ID")
	if !ok {
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request")
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req); err != nil {
		abortWithUsecaseError(c, err, "Failed to update booking")
		return
	}

	h.respondWithBooking(c, id)
}

// @Summary Change booking status
// @Tags admin-bookings
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking ID")
	if !ok {
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request")
		return
	}

	if err := h.commands.ChangeStatus(c.Request.Context(), id, req.Status); err != nil {
		abortWithUsecaseError(c, err, "Failed to change booking status")
		return
	}

	h.respondWithBooking(c, id)
}

// @Summary Delete booking
// @Description Only cancelled or completed bookings can be deleted.
// @Tags admin-bookings
// @Security CookieAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking ID")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Failed to delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, id uuid.UUID) {
	booking, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(booking))
}

func parseID(c *gin.Context, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}
