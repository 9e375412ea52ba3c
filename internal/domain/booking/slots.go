package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlotTime = errors.New("start time is not on an hourly boundary within opening hours")
	ErrInvalidSlotPair = errors.New("end time must be exactly one hour after start time")
)

// Courts are open 09:00-17:00, booked in fixed one-hour slots.
const (
	OpeningHour  = 9
	ClosingHour  = 17
	SlotsPerDay  = ClosingHour - OpeningHour
	DaysPerWeek  = 7
)

// TimeSlot is one fixed hour-long interval, "HH:MM" wall-clock strings
// as persisted (start_time/end_time columns).
type TimeSlot struct {
	Start string
	End   string
}

// TimeSlots enumerates the day's 8 slots in order: 09:00-10:00 .. 16:00-17:00.
func TimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, SlotsPerDay)
	for hour := OpeningHour; hour < ClosingHour; hour++ {
		slots = append(slots, TimeSlot{
			Start: fmt.Sprintf("%02d:00", hour),
			End:   fmt.Sprintf("%02d:00", hour+1),
		})
	}
	return slots
}

// NewTimeSlot validates an externally supplied start/end pair against the
// fixed grid.
func NewTimeSlot(start, end string) (TimeSlot, error) {
	for _, s := range TimeSlots() {
		if s.Start == start {
			if s.End != end {
				return TimeSlot{}, ErrInvalidSlotPair
			}
			return s, nil
		}
	}
	return TimeSlot{}, ErrInvalidSlotTime
}

// Slot is a concrete bookable cell: one court, one date, one hour.
type Slot struct {
	CourtID uuid.UUID
	Date    time.Time // date-only
	Time    TimeSlot
}

func NewSlot(courtID uuid.UUID, date time.Time, ts TimeSlot) Slot {
	return Slot{
		CourtID: courtID,
		Date:    DateOnly(date),
		Time:    ts,
	}
}

func (s Slot) DateKey() string {
	return s.Date.Format(ISODate)
}

// Equal identifies a cell by (court, date, start); end is derived.
func (s Slot) Equal(other Slot) bool {
	return s.CourtID == other.CourtID &&
		s.DateKey() == other.DateKey() &&
		s.Time.Start == other.Time.Start
}
