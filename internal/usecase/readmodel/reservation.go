package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleCellRM struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	State     string `json:"state"`
	Mine      bool   `json:"mine"`
}

type ScheduleDayRM struct {
	Date         time.Time        `json:"date"`
	Bookable     bool             `json:"bookable"`
	UserDayCount int              `json:"userDayCount"`
	Cells        []ScheduleCellRM `json:"cells"`
}

type WeekScheduleRM struct {
	WeekStart time.Time       `json:"weekStart"`
	CourtID   uuid.UUID       `json:"courtId"`
	Days      []ScheduleDayRM `json:"days"`
}

type ReservationRM struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	CourtID           uuid.UUID `json:"courtId"`
	CourtName         string    `json:"courtName"`
	BookingDate       time.Time `json:"bookingDate"`
	StartTime         string    `json:"startTime"`
	EndTime           string    `json:"endTime"`
	ReservationNumber *string   `json:"reservationNumber,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
