//go:build unit || e2e

package builder

import (
	"time"

	"court-reserve/internal/domain/booking"
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// ReservationBuilder defaults to a bookable Saturday slot.
type ReservationBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CourtID     uuid.UUID
	CourtName   string
	BookingDate time.Time
	StartTime   string
	EndTime     string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		CourtID:     uuid.New(),
		CourtName:   "Court A",
		BookingDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), // Saturday
		StartTime:   "10:00",
		EndTime:     "11:00",
	}
}

func (r *ReservationBuilder) BuildReadModel() *readmodel.ReservationRM {
	now := time.Now()
	number := "R20251101-ABCD"
	return &readmodel.ReservationRM{
		ID:                r.ID,
		UserID:            r.UserID,
		CourtID:           r.CourtID,
		CourtName:         r.CourtName,
		BookingDate:       r.BookingDate,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		ReservationNumber: &number,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (r *ReservationBuilder) BuildSlot() booking.Slot {
	ts, err := booking.NewTimeSlot(r.StartTime, r.EndTime)
	if err != nil {
		panic(err)
	}
	return booking.NewSlot(r.CourtID, r.BookingDate, ts)
}

func (r *ReservationBuilder) WithUser(id uuid.UUID) *ReservationBuilder {
	r.UserID = id
	return r
}

func (r *ReservationBuilder) WithCourt(id uuid.UUID) *ReservationBuilder {
	r.CourtID = id
	return r
}

func (r *ReservationBuilder) WithDate(date time.Time) *ReservationBuilder {
	r.BookingDate = date
	return r
}

func (r *ReservationBuilder) WithTime(start, end string) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = end
	return r
}
