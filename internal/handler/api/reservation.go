package api

import (
	"errors"
	"net/http"
	"time"

	"court-reserve/internal/domain/booking"
	reqdto "court-reserve/internal/handler/dto/request"
	resdto "court-reserve/internal/handler/dto/response"
	"court-reserve/internal/handler/middleware"
	"court-reserve/internal/pkg/guard"
	"court-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Get week schedule
// @Description Get the availability grid for one court over a Monday-based week
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param court_id query string true "Court ID"
// @Param week_start query string false "Any date inside the requested week (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} resdto.WeekScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/schedule [get]
func (h *ReservationHandler) GetWeekSchedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	courtID, err := uuid.Parse(c.Query("court_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	weekStart := time.Now()
	if raw := c.Query("week_start"); raw != "" {
		weekStart, err = time.Parse(booking.ISODate, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid week_start format, expected YYYY-MM-DD",
			})
			return
		}
	}

	schedule, err := h.reservationUseCase.GetWeekSchedule(c.Request.Context(), userID, courtID, weekStart)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekScheduleRM(schedule))
}

// @Summary Create reservations
// @Description Reserve the selected slots; partial failures are reported per slot
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationsRequest true "Slots to reserve"
// @Success 201 {object} resdto.CreateReservationsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	slots, err := req.ToSlotRequests()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	result, err := h.reservationUseCase.CreateReservations(c.Request.Context(), userID, slots)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	status := http.StatusCreated
	if len(result.Failed) > 0 {
		// some slots were taken first; the rest stay reserved
		status = http.StatusConflict
	}
	c.JSON(status, resdto.FromCreateResult(result))
}

// @Summary Get reservation
// @Description Get one of the current user's reservations by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	reservationRM, err := h.reservationUseCase.GetReservation(c.Request.Context(), userID, id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(reservationRM))
}

// @Summary Get user reservations
// @Description List the current user's reservations, upcoming by default
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param include_past query bool false "Include past reservations"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	includePast := c.Query("include_past") == "true"

	reservationsRM, err := h.reservationUseCase.ListUserReservations(c.Request.Context(), userID, includePast)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRMs(reservationsRM))
}

// @Summary Update reservation
// @Description Move a reservation to a different slot before the modification cutoff
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Replacement slot"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	target, err := req.Slot.ToSlotRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	reservationRM, err := h.reservationUseCase.UpdateReservation(c.Request.Context(), userID, id, target)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(reservationRM))
}

// @Summary Cancel reservation
// @Description Cancel a reservation before the modification cutoff
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationUseCase.CancelReservation(c.Request.Context(), userID, id); err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, usecase.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Court not found",
		})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Reservation belongs to another user",
		})
	case errors.Is(err, usecase.ErrIncompleteRegistration):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Registration is incomplete; please sign up again to finish your profile",
		})
	case errors.Is(err, usecase.ErrModificationLocked):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Reservations can only be changed up to the day before",
		})
	case errors.Is(err, usecase.ErrSlotConflict), errors.Is(err, booking.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot is already reserved",
		})
	case errors.Is(err, guard.ErrRequestInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Another booking request is in progress",
		})
	case errors.Is(err, booking.ErrNotBookableDate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Date is not open for booking",
		})
	case errors.Is(err, booking.ErrDailyCapExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "At most 2 slots per day can be reserved",
		})
	case errors.Is(err, booking.ErrWeeklyCapExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "At most 2 slots per week can be reserved",
		})
	case errors.Is(err, booking.ErrInvalidSlotTime), errors.Is(err, booking.ErrInvalidSlotPair):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
	case errors.Is(err, usecase.ErrNoSlotsSelected):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No slots selected",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
