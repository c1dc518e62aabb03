package api

import (
	"net/http"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	reqdto "villa-booking/internal/handler/dto/request"
	resdto "villa-booking/internal/handler/dto/response"
	"villa-booking/internal/handler/httperr"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VillaHandler struct {
	commands commands.VillaCommands
	queries  queries.VillaQueries
	bookings queries.BookingQueries
}

func NewVillaHandler(villaCommands commands.VillaCommands, villaQueries queries.VillaQueries, bookingQueries queries.BookingQueries) *VillaHandler {
	return &VillaHandler{
		commands: villaCommands,
		queries:  villaQueries,
		bookings: bookingQueries,
	}
}

// @Summary List villas
// @Description Active villas, newest first.
// @Tags villas
// @Produce json
// @Param limit query int false "Maximum number of villas"
// @Success 200 {array} resdto.VillaResponse
// @Router /villas [get]
func (h *VillaHandler) ListPublic(c *gin.Context) {
	var q reqdto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query parameters")
		return
	}

	villas, err := h.queries.ListActive(c.Request.Context(), q.Limit)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list villas")
		return
	}

	c.JSON(http.StatusOK, resdto.FromVillaViews(villas))
}

// @Summary Get villa by slug
// @Tags villas
// @Produce json
// @Param slug path string true "Villa slug"
// @Success 200 {object} resdto.VillaDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /villas/{slug} [get]
func (h *VillaHandler) GetBySlug(c *gin.Context) {
	detail, err := h.queries.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get villa")
		return
	}

	c.JSON(http.StatusOK, resdto.FromVillaDetail(detail))
}

// @Summary Villa availability
// @Description Booked ranges and nights of an active villa inside [from, to).
// @Tags villas
// @Produce json
// @Param slug path string true "Villa slug"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Day after the last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /villas/{slug}/availability [get]
func (h *VillaHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query parameters")
		return
	}
	from, err := pricing.ParseDate(q.From)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date", nil)
		return
	}
	to, err := pricing.ParseDate(q.To)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date", nil)
		return
	}

	availability, err := h.bookings.Availability(c.Request.Context(), c.Param("slug"), from, to)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load availability")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(availability))
}

// @Summary Price quote
// @Description Nightly breakdown and total for a stay, plus whether the dates are free.
// @Tags villas
// @Produce json
// @Param slug path string true "Villa slug"
// @Param check_in query string true "Check-in (YYYY-MM-DD)"
// @Param check_out query string true "Check-out (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /villas/{slug}/quote [get]
func (h *VillaHandler) Quote(c *gin.Context) {
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query parameters")
		return
	}
	stay, err := reservation.ParseStay(q.CheckIn, q.CheckOut)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	quote, err := h.bookings.Quote(c.Request.Context(), c.Param("slug"), stay)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to quote stay")
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}

// @Summary List all villas
// @Tags admin-villas
// @Security CookieAuth
// @Produce json
// @Param status query string false "active or inactive"
// @Param limit query int false "Maximum number of villas"
// @Success 200 {array} resdto.VillaResponse
// @Router /admin/villas [get]
func (h *VillaHandler) ListAdmin(c *gin.Context) {
	var q reqdto.ListVillasQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query parameters")
		return
	}

	filter := queries.VillaListFilter{Limit: q.Limit}
	if q.Status != "" {
		filter.Status = &q.Status
	}
	villas, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list villas")
		return
	}

	c.JSON(http.StatusOK, resdto.FromVillaViews(villas))
}

// @Summary Get villa
// @Tags admin-villas
// @Security CookieAuth
// @Produce json
// @Param id path string true "Villa ID"
// @Success 200 {object} resdto.VillaDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/villas/{id} [get]
func (h *VillaHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid villa ID")
	if !ok {
		return
	}

	detail, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get villa")
		return
	}

	c.JSON(http.StatusOK, resdto.FromVillaDetail(detail))
}

// @Summary Create villa
// @Tags admin-villas
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body reqdto.VillaRequest true "Villa"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/villas [post]
func (h *VillaHandler) Create(c *gin.Context) {
	var req reqdto.VillaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create villa")
		return
	}

	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id.String()})
}

// @Summary Update villa
// @Description Replaces every field including amenities and images.
// @Tags admin-villas
// @Security CookieAuth
// @Accept json
// @Param id path string true "Villa ID"
// @Param request body reqdto.VillaRequest true "Villa"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/villas/{id} [put]
func (h *VillaHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid villa ID")
	if !ok {
		return
	}

	var req reqdto.VillaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request")
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req); err != nil {
		abortWithUsecaseError(c, err, "Failed to update villa")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Toggle villa status
// @Tags admin-villas
// @Security CookieAuth
// @Produce json
// @Param id path string true "Villa ID"
// @Success 200 {object} resdto.VillaStatusResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/villas/{id}/toggle [patch]
func (h *VillaHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c, "Invalid villa ID")
	if !ok {
		return
	}

	status, err := h.commands.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to toggle villa")
		return
	}

	c.JSON(http.StatusOK, resdto.VillaStatusResponse{ID: id, Status: status.String()})
}

// @Summary Delete villa
// @Description Villas that still have bookings cannot be deleted; deactivate them instead.
// @Tags admin-villas
// @Security CookieAuth
// @Param id path string true "Villa ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/villas/{id} [delete]
func (h *VillaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid villa ID")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Failed to delete villa")
		return
	}

	c.Status(http.StatusNoContent)
}
