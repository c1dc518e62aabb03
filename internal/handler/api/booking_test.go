//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/handler/api"
	reqdto "villa-booking/internal/handler/dto/request"
	resdto "villa-booking/internal/handler/dto/response"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/queries"
	"villa-booking/tests/common/builder"
	"villa-booking/tests/common/httptest"
	"villa-booking/tests/common/testutil"
	commandsmock "villa-booking/tests/mock/commands"
	queriesmock "villa-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreatePublic)
	s.router.POST("/admin/bookings", s.handler.CreateAdmin)
	s.router.GET("/admin/bookings", s.handler.List)
	s.router.GET("/admin/bookings/:id", s.handler.Get)
	s.router.PUT("/admin/bookings/:id", s.handler.Update)
	s.router.PATCH("/admin/bookings/:id/status", s.handler.ChangeStatus)
	s.router.DELETE("/admin/bookings/:id", s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) TestCreatePublic() {
	url := "/bookings"
	reqBody := builder.NewReservationBuilder().BuildCreateRequest()
	result := &commands.CreateBookingResult{
		BookingID:   uuid.New(),
		VillaName:   "Villa Sunset",
		TotalNights: 2,
		TotalPrice:  5_750_000,
		Status:      "pending",
	}

	s.Run("success: returns 201 with the booking summary", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, commands.OriginPublic).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.BookingID, response.BookingID)
		s.Equal(int64(5_750_000), response.TotalPrice)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseBooking{
			{name: "missing villa_id", mutate: testutil.Field("villa_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing guest_name", mutate: testutil.Field("guest_name", nil), expectCode: http.StatusBadRequest},
			{name: "guest_name too long", mutate: testutil.Field("guest_name", strings.Repeat("a", 121)), expectCode: http.StatusBadRequest},
			{name: "invalid guest_email", mutate: testutil.Field("guest_email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "check_in not a date", mutate: testutil.Field("check_in", "04/09/2025"), expectCode: http.StatusBadRequest},
			{name: "check_out missing", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
			{name: "zero guests", mutate: testutil.Field("guests_count", 0), expectCode: http.StatusBadRequest},
			{name: "too many extra beds", mutate: testutil.Field("extra_bed_count", 11), expectCode: http.StatusBadRequest},
			{name: "unknown booking_source", mutate: testutil.Field("booking_source", "fax"), expectCode: http.StatusBadRequest},
			{name: "status outside initial set", mutate: testutil.Field("status", "completed"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "dates taken",
				commandsError:  commands.ErrUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available for the selected dates",
			},
			{
				name:           "villa missing or inactive",
				commandsError:  commands.ErrVillaNotBookable,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "villa not found or not available",
			},
			{
				name:           "invalid range exposes the domain message",
				commandsError:  errs.Mark(reservation.ErrInvalidRange, commands.ErrInvalidBooking),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "check-out must be after check-in",
			},
			{
				name:           "check-in in the past",
				commandsError:  errs.Mark(reservation.ErrCheckInInPast, commands.ErrInvalidBooking),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "check-in date cannot be in the past",
			},
			{
				name:           "calendar year missing",
				commandsError:  errs.Mark(pricing.ErrCalendarYearNotLoaded, commands.ErrInvalidBooking),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Pricing calendar is not available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, commands.OriginPublic).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCreateAdmin() {
	reqBody := builder.NewReservationBuilder().BuildCreateRequest()
	reqBody.BookingSource = "whatsapp"
	reqBody.Status = "confirmed"

	s.Run("success: passes the admin origin through", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, commands.OriginAdmin).
			Return(&commands.CreateBookingResult{BookingID: uuid.New(), Status: "confirmed"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings", reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("confirmed", response.Status)
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: forwards filters and pages", func() {
		villaID := uuid.New()
		status := "confirmed"
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BookingFilter{
			Status:  &status,
			VillaID: &villaID,
			Page:    2,
			Limit:   10,
		}).Return(&queries.BookingPage{Items: []*queries.BookingView{view}, Total: 11, Page: 2, Limit: 10}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/bookings?status=confirmed&villa_id="+villaID.String()+"&page=2&limit=10", nil, "")

		var response resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal(int64(11), response.Total)
		s.Equal(int64(2), response.TotalPages)
		s.Equal("2025-09-04", response.Items[0].CheckIn)
	})

	s.Run("error: 400 on an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=archived", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 on a malformed villa id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?villa_id=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 when the page is out of range", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, queries.ErrPageOutOfRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?page=10737420&limit=200", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("2025-09-06", response.CheckOut)
		s.Equal(pricing.FormatRupiah(view.TotalPrice), response.TotalDisplay)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestUpdate() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/admin/bookings/" + view.ID.String()
	checkOut := "2025-09-07"
	reqBody := reqdto.UpdateBookingRequest{CheckOut: &checkOut}

	s.Run("success: returns the updated booking", func() {
		gomock.InOrder(
			s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody).Return(nil),
			s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "no fields", commandsError: commands.ErrNothingToUpdate, expectedStatus: http.StatusBadRequest},
			{name: "overlap", commandsError: commands.ErrUnavailable, expectedStatus: http.StatusConflict},
			{name: "finished booking", commandsError: errs.Mark(reservation.ErrReservationNotModifiable, commands.ErrInvalidBooking), expectedStatus: http.StatusConflict},
			{name: "missing", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestChangeStatus() {
	view := builder.NewReservationBuilder().WithStatus("confirmed").BuildView()
	url := "/admin/bookings/" + view.ID.String() + "/status"

	s.Run("success: returns the booking with its new status", func() {
		gomock.InOrder(
			s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), view.ID, "confirmed").Return(nil),
			s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "confirmed"}, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "archived"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 on a forbidden transition", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), view.ID, "pending").
			Return(errs.Mark(reservation.ErrInvalidStatusTransition, commands.ErrInvalidBooking)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "pending"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "invalid reservation status transition")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while the booking still blocks its dates", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrBookingDeleteBlocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot be deleted")
	})
}
