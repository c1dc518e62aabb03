//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"villa-booking/internal/domain/user"
	"villa-booking/internal/handler/dto/request"
	"villa-booking/internal/handler/dto/response"
	"villa-booking/tests/common/authtest"
	"villa-booking/tests/common/dbtest"
	"villa-booking/tests/common/httptest"
	"villa-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const slug = "villa-sunset"

type bookingSuite struct {
	e2e.SharedSuite
	villaID uuid.UUID
	admin   []*http.Cookie
	staff   []*http.Cookie
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.villaID = dbtest.CreateTestVilla(s.T(), s.DB, slug, 2_000_000, 2_500_000, 3_750_000)
	s.admin = []*http.Cookie{authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin", string(user.RoleAdmin))}
	s.staff = []*http.Cookie{authtest.CreateAndLogin(s.T(), s.DB, s.Router, "frontdesk", string(user.RoleStaff))}
}

func (s *bookingSuite) bookingRequest(checkIn, checkOut string) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		VillaID:     s.villaID,
		GuestName:   "Budi Santoso",
		GuestEmail:  "budi@example.com",
		GuestPhone:  "+62 812 3456 7890",
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GuestsCount: 2,
	}
}

func (s *bookingSuite) book(checkIn, checkOut string) *response.CreateBookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.bookingRequest(checkIn, checkOut), "")
	var created response.CreateBookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return &created
}

func (s *bookingSuite) TestPublicBookingFlow() {
	s.Run("quote, book, and see the dates blocked", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/villas/"+slug+"/quote?check_in=2025-09-04&check_out=2025-09-07", nil, "")
		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.Equal(t, int64(8_250_000), quote.TotalPrice)
		require.True(t, quote.Available)

		created := s.book("2025-09-04", "2025-09-07")
		require.Equal(t, quote.TotalPrice, created.TotalPrice)
		require.Equal(t, 3, created.TotalNights)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs"))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/villas/"+slug+"/availability?from=2025-09-01&to=2025-09-30", nil, "")
		var availability response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &availability)
		if diff := cmp.Diff([]string{"2025-09-04", "2025-09-05", "2025-09-06"}, availability.BookedDates); diff != "" {
			t.Errorf("booked dates mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("overlapping stays are rejected, back-to-back stays are not", func() {
		t := s.T()
		s.book("2025-09-04", "2025-09-07")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.bookingRequest("2025-09-06", "2025-09-08"), "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		s.book("2025-09-07", "2025-09-09")
		s.book("2025-09-02", "2025-09-04")
	})

	s.Run("check-in in the past", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.bookingRequest("2025-08-30", "2025-09-02"), "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("unknown villa", func() {
		t := s.T()
		req := s.bookingRequest("2025-09-04", "2025-09-06")
		req.VillaID = uuid.New()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", req, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestConcurrentBookings() {
	s.Run("only one of many racing requests wins", func() {
		t := s.T()
		const racers = 8

		codes := make([]int, racers)
		var wg sync.WaitGroup
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.bookingRequest("2025-10-01", "2025-10-04"), "")
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created, "status codes: %v", codes)
		require.Equal(t, racers-1, conflicts, "status codes: %v", codes)
	})
}

func (s *bookingSuite) TestAdminLifecycle() {
	s.Run("cancelling frees the dates and unlocks deletion", func() {
		t := s.T()
		created := s.book("2025-09-04", "2025-09-06")
		bookingURL := fmt.Sprintf("/api/admin/bookings/%s", created.BookingID)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodDelete, bookingURL, nil, s.admin, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPatch, bookingURL+"/status",
			request.UpdateBookingStatusRequest{Status: "confirmed"}, s.staff, "")
		var booking response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &booking)
		require.Equal(t, "confirmed", booking.Status)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPatch, bookingURL+"/status",
			request.UpdateBookingStatusRequest{Status: "pending"}, s.staff, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPatch, bookingURL+"/status",
			request.UpdateBookingStatusRequest{Status: "cancelled"}, s.staff, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		s.book("2025-09-04", "2025-09-06")

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodDelete, bookingURL, nil, s.admin, "")
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, bookingURL, nil, s.staff, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("editing dates reprices", func() {
		t := s.T()
		created := s.book("2025-09-04", "2025-09-06")
		checkOut := "2025-09-08"

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPut, "/api/admin/bookings/"+created.BookingID.String(),
			request.UpdateBookingRequest{CheckOut: &checkOut}, s.admin, "")
		var booking response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &booking)
		require.Equal(t, int32(4), booking.TotalNights)
		// weekday, holiday, two weekend nights
		require.Equal(t, int64(10_750_000), booking.TotalPrice)
	})

	s.Run("staff cannot delete", func() {
		t := s.T()
		created := s.book("2025-09-04", "2025-09-06")
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodDelete, "/api/admin/bookings/"+created.BookingID.String(), nil, s.staff, "")
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("list filters by status", func() {
		t := s.T()
		s.book("2025-09-04", "2025-09-06")
		s.book("2025-09-10", "2025-09-12")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, "/api/admin/bookings?status=pending&limit=1", nil, s.staff, "")
		var page response.BookingPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Equal(t, int64(2), page.Total)
		require.Len(t, page.Items, 1)
		require.Equal(t, int64(2), page.TotalPages)
		require.Equal(t, "Villa "+slug, page.Items[0].VillaTitle)
	})
}

func (s *bookingSuite) TestVillaDeletion() {
	s.Run("villas with bookings cannot be deleted", func() {
		t := s.T()
		s.book("2025-09-04", "2025-09-06")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodDelete, "/api/admin/villas/"+s.villaID.String(), nil, s.admin, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
