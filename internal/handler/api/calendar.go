package api

import (
	"net/http"

	reqdto "villa-booking/internal/handler/dto/request"
	resdto "villa-booking/internal/handler/dto/response"
	"villa-booking/internal/handler/httperr"
	"villa-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	queries queries.CalendarQueries
}

func NewCalendarHandler(calendarQueries queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{queries: calendarQueries}
}

// @Summary Upcoming high-season dates
// @Description Holidays and other high-season days from today on, in calendar order.
// @Tags calendar
// @Produce json
// @Param limit query int false "Maximum number of dates"
// @Success 200 {array} resdto.HighSeasonDateResponse
// @Router /calendar/high-season [get]
func (h *CalendarHandler) HighSeason(c *gin.Context) {
	var q reqdto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query parameters")
		return
	}

	dates, err := h.queries.UpcomingHighSeason(c.Request.Context(), q.Limit)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load calendar")
		return
	}

	c.JSON(http.StatusOK, resdto.FromHighSeasonDates(dates))
}
