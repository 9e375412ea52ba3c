//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"court-reserve/internal/domain/booking"
	"court-reserve/internal/handler/api"
	reqdto "court-reserve/internal/handler/dto/request"
	resdto "court-reserve/internal/handler/dto/response"
	"court-reserve/internal/pkg/guard"
	"court-reserve/internal/usecase"
	"court-reserve/internal/usecase/readmodel"
	"court-reserve/tests/common/builder"
	"court-reserve/tests/common/httptest"
	"court-reserve/tests/common/testutil"
	usecasemock "court-reserve/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockReservationUseCase
	handler     *api.ReservationHandler
	authedUser  uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockUseCase)
	s.authedUser = uuid.New()

	// mock middleware behavior for authenticated routes
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.authedUser)
		}
	})

	s.router.GET("/reservations/schedule", s.handler.GetWeekSchedule)
	s.router.POST("/reservations", s.handler.CreateReservations)
	s.router.GET("/reservations", s.handler.GetUserReservations)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.PUT("/reservations/:id", s.handler.UpdateReservation)
	s.router.DELETE("/reservations/:id", s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) createBody(courtID uuid.UUID) reqdto.CreateReservationsRequest {
	return reqdto.CreateReservationsRequest{
		Slots: []reqdto.SlotPayload{
			{CourtID: courtID, Date: "2025-11-01", StartTime: "10:00", EndTime: "11:00"},
		},
	}
}

func (s *ReservationHandlerTestSuite) TestGetWeekSchedule() {
	courtID := uuid.New()
	url := "/reservations/schedule?court_id=" + courtID.String() + "&week_start=2025-11-01"

	s.Run("success: returns the week grid", func() {
		monday := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
		rm := &readmodel.WeekScheduleRM{
			WeekStart: monday,
			CourtID:   courtID,
			Days: []readmodel.ScheduleDayRM{
				{
					Date:     monday,
					Bookable: false,
					Cells: []readmodel.ScheduleCellRM{
						{StartTime: "09:00", EndTime: "10:00", State: "blocked"},
					},
				},
			},
		}
		s.mockUseCase.EXPECT().
			GetWeekSchedule(gomock.Any(), s.authedUser, courtID, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)).
			Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.WeekScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2025-10-27", response.WeekStart)
		s.Require().Len(response.Days, 1)
		s.Equal("blocked", response.Days[0].Cells[0].State)
	})

	s.Run("error: 400 on malformed court id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/schedule?court_id=nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid court ID format")
	})

	s.Run("error: 400 on malformed week_start", func() {
		badURL := "/reservations/schedule?court_id=" + courtID.String() + "&week_start=01-11-2025"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, badURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid week_start format, expected YYYY-MM-DD")
	})

	s.Run("error: 404 on unknown court", func() {
		s.mockUseCase.EXPECT().
			GetWeekSchedule(gomock.Any(), s.authedUser, courtID, gomock.Any()).
			Return(nil, usecase.ErrCourtNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})
}

func (s *ReservationHandlerTestSuite) TestCreateReservations() {
	url := "/reservations"
	courtID := uuid.New()
	reqBody := s.createBody(courtID)

	s.Run("success: returns 201 Created", func() {
		created := builder.NewReservationBuilder().WithUser(s.authedUser).WithCourt(courtID).BuildReadModel()
		s.mockUseCase.EXPECT().CreateReservations(gomock.Any(), s.authedUser, gomock.Any()).
			Return(&usecase.CreateResult{Created: []*readmodel.ReservationRM{created}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreateReservationsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Len(response.Created, 1)
		s.Empty(response.Failed)
	})

	s.Run("success with conflicts: returns 409 and reports both lists", func() {
		created := builder.NewReservationBuilder().WithUser(s.authedUser).WithCourt(courtID).BuildReadModel()
		result := &usecase.CreateResult{
			Created: []*readmodel.ReservationRM{created},
			Failed: []usecase.FailedSlot{
				{
					Slot: usecase.SlotRequest{
						CourtID:   courtID,
						Date:      time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
						StartTime: "11:00",
						EndTime:   "12:00",
					},
					Reason: usecase.ErrSlotConflict,
				},
			},
		}
		s.mockUseCase.EXPECT().CreateReservations(gomock.Any(), s.authedUser, gomock.Any()).
			Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusConflict, rec.Code)
		var response resdto.CreateReservationsResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Len(response.Created, 1)
		s.Require().Len(response.Failed, 1)
		s.Equal("11:00", response.Failed[0].StartTime)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing slots", mutate: testutil.Field("slots", nil)},
			{name: "empty slots", mutate: testutil.Field("slots", []any{})},
			{name: "too many slots", mutate: testutil.Field("slots", []any{
				map[string]any{"court_id": courtID.String(), "date": "2025-11-01", "start_time": "09:00", "end_time": "10:00"},
				map[string]any{"court_id": courtID.String(), "date": "2025-11-01", "start_time": "10:00", "end_time": "11:00"},
				map[string]any{"court_id": courtID.String(), "date": "2025-11-01", "start_time": "11:00", "end_time": "12:00"},
			})},
			{name: "bad date format", mutate: testutil.Field("slots", []any{
				map[string]any{"court_id": courtID.String(), "date": "01/11/2025", "start_time": "10:00", "end_time": "11:00"},
			})},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps booking errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "date not bookable",
				usecaseError:   booking.ErrNotBookableDate,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Date is not open for booking",
			},
			{
				name:           "daily cap",
				usecaseError:   booking.ErrDailyCapExceeded,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "At most 2 slots per day can be reserved",
			},
			{
				name:           "weekly cap",
				usecaseError:   booking.ErrWeeklyCapExceeded,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "At most 2 slots per week can be reserved",
			},
			{
				name:           "slot taken",
				usecaseError:   booking.ErrSlotTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot is already reserved",
			},
			{
				name:           "another request in flight",
				usecaseError:   guard.ErrRequestInFlight,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Another booking request is in progress",
			},
			{
				name:           "unknown court",
				usecaseError:   usecase.ErrCourtNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Court not found",
			},
			{
				name:           "incomplete registration",
				usecaseError:   usecase.ErrIncompleteRegistration,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Registration is incomplete; please sign up again to finish your profile",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().CreateReservations(gomock.Any(), s.authedUser, gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	existing := builder.NewReservationBuilder().WithUser(s.authedUser).BuildReadModel()
	url := fmt.Sprintf("/reservations/%s", existing.ID)

	s.Run("success: returns the reservation", func() {
		s.mockUseCase.EXPECT().GetReservation(gomock.Any(), s.authedUser, existing.ID).
			Return(existing, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(existing.ID, response.ID)
		s.Equal("2025-11-01", response.BookingDate)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 403 when owned by another user", func() {
		s.mockUseCase.EXPECT().GetReservation(gomock.Any(), s.authedUser, existing.ID).
			Return(nil, usecase.ErrNotOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Reservation belongs to another user")
	})
}

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	url := "/reservations"

	s.Run("success: lists upcoming reservations", func() {
		existing := builder.NewReservationBuilder().WithUser(s.authedUser).BuildReadModel()
		s.mockUseCase.EXPECT().ListUserReservations(gomock.Any(), s.authedUser, false).
			Return([]*readmodel.ReservationRM{existing}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: include_past is forwarded", func() {
		s.mockUseCase.EXPECT().ListUserReservations(gomock.Any(), s.authedUser, true).
			Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?include_past=true", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	existing := builder.NewReservationBuilder().WithUser(s.authedUser).BuildReadModel()
	url := fmt.Sprintf("/reservations/%s", existing.ID)
	reqBody := reqdto.UpdateReservationRequest{
		Slot: reqdto.SlotPayload{
			CourtID:   existing.CourtID,
			Date:      "2025-11-02",
			StartTime: "14:00",
			EndTime:   "15:00",
		},
	}

	s.Run("success: returns the moved reservation", func() {
		moved := builder.NewReservationBuilder().
			WithUser(s.authedUser).WithCourt(existing.CourtID).
			WithDate(time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)).WithTime("14:00", "15:00").
			BuildReadModel()
		s.mockUseCase.EXPECT().UpdateReservation(gomock.Any(), s.authedUser, existing.ID, gomock.Any()).
			Return(moved, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2025-11-02", response.BookingDate)
		s.Equal("14:00", response.StartTime)
	})

	s.Run("error: 403 past the modification cutoff", func() {
		s.mockUseCase.EXPECT().UpdateReservation(gomock.Any(), s.authedUser, existing.ID, gomock.Any()).
			Return(nil, usecase.ErrModificationLocked)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Reservations can only be changed up to the day before")
	})

	s.Run("error: 409 when the target slot is taken", func() {
		s.mockUseCase.EXPECT().UpdateReservation(gomock.Any(), s.authedUser, existing.ID, gomock.Any()).
			Return(nil, usecase.ErrSlotConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot is already reserved")
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	existing := builder.NewReservationBuilder().WithUser(s.authedUser).BuildReadModel()
	url := fmt.Sprintf("/reservations/%s", existing.ID)

	s.Run("success: returns 204 No Content", func() {
		s.mockUseCase.EXPECT().CancelReservation(gomock.Any(), s.authedUser, existing.ID).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 on unknown reservation", func() {
		s.mockUseCase.EXPECT().CancelReservation(gomock.Any(), s.authedUser, existing.ID).
			Return(usecase.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 403 past the modification cutoff", func() {
		s.mockUseCase.EXPECT().CancelReservation(gomock.Any(), s.authedUser, existing.ID).
			Return(usecase.ErrModificationLocked)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Reservations can only be changed up to the day before")
	})
}
