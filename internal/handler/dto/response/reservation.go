package response

import (
	"time"

	"court-reserve/internal/usecase"
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                uuid.UUID `json:"id"`
	CourtID           uuid.UUID `json:"courtId"`
	CourtName         string    `json:"courtName"`
	BookingDate       string    `json:"bookingDate"`
	StartTime         string    `json:"startTime"`
	EndTime           string    `json:"endTime"`
	ReservationNumber *string   `json:"reservationNumber,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	return &ReservationResponse{
		ID:                rm.ID,
		CourtID:           rm.CourtID,
		CourtName:         rm.CourtName,
		BookingDate:       rm.BookingDate.Format("2006-01-02"),
		StartTime:         rm.StartTime,
		EndTime:           rm.EndTime,
		ReservationNumber: rm.ReservationNumber,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

func FromReservationRMs(rms []*readmodel.ReservationRM) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromReservationRM(rm))
	}
	return out
}

type FailedSlotResponse struct {
	CourtID   uuid.UUID `json:"courtId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	Reason    string    `json:"reason"`
}

type CreateReservationsResponse struct {
	Created []*ReservationResponse `json:"created"`
	Failed  []FailedSlotResponse   `json:"failed,omitempty"`
}

func FromCreateResult(result *usecase.CreateResult) *CreateReservationsResponse {
	resp := &CreateReservationsResponse{
		Created: FromReservationRMs(result.Created),
	}
	for _, f := range result.Failed {
		resp.Failed = append(resp.Failed, FailedSlotResponse{
			CourtID:   f.Slot.CourtID,
			Date:      f.Slot.Date.Format("2006-01-02"),
			StartTime: f.Slot.StartTime,
			Reason:    f.Reason.Error(),
		})
	}
	return resp
}

type WeekScheduleResponse struct {
	WeekStart string                   `json:"weekStart"`
	CourtID   uuid.UUID                `json:"courtId"`
	Days      []ScheduleDayResponse    `json:"days"`
	TimeSlots []ScheduleHeaderResponse `json:"timeSlots"`
}

type ScheduleHeaderResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type ScheduleDayResponse struct {
	Date         string                 `json:"date"`
	Bookable     bool                   `json:"bookable"`
	UserDayCount int                    `json:"userDayCount"`
	Cells        []ScheduleCellResponse `json:"cells"`
}

type ScheduleCellResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	State     string `json:"state"`
	Mine      bool   `json:"mine"`
}

func FromWeekScheduleRM(rm *readmodel.WeekScheduleRM) *WeekScheduleResponse {
	resp := &WeekScheduleResponse{
		WeekStart: rm.WeekStart.Format("2006-01-02"),
		CourtID:   rm.CourtID,
	}
	for _, day := range rm.Days {
		cells := make([]ScheduleCellResponse, 0, len(day.Cells))
		for _, cell := range day.Cells {
			cells = append(cells, ScheduleCellResponse{
				StartTime: cell.StartTime,
				EndTime:   cell.EndTime,
				State:     cell.State,
				Mine:      cell.Mine,
			})
		}
		resp.Days = append(resp.Days, ScheduleDayResponse{
			Date:         day.Date.Format("2006-01-02"),
			Bookable:     day.Bookable,
			UserDayCount: day.UserDayCount,
			Cells:        cells,
		})
	}
	if len(rm.Days) > 0 {
		for _, cell := range rm.Days[0].Cells {
			resp.TimeSlots = append(resp.TimeSlots, ScheduleHeaderResponse{
				StartTime: cell.StartTime,
				EndTime:   cell.EndTime,
			})
		}
	}
	return resp
}
