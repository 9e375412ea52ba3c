package booking

import (
	"time"

	"github.com/google/uuid"
)

type CellState string

const (
	CellBlocked  CellState = "blocked"  // date not bookable at all
	CellReserved CellState = "reserved" // occupied by an existing reservation
	CellOpen     CellState = "open"
)

// Occupied is the minimal view of an existing reservation the calculator
// needs. Ownership does not matter here; any reservation blocks the cell.
type Occupied struct {
	CourtID uuid.UUID
	Date    time.Time
	Start   string
	UserID  uuid.UUID
}

type Cell struct {
	Time  TimeSlot
	State CellState
}

type DaySchedule struct {
	Date     time.Time
	Bookable bool
	Cells    []Cell
}

type WeekSchedule struct {
	WeekStart time.Time
	CourtID   uuid.UUID
	Days      []DaySchedule
}

// BuildWeekSchedule marks every cell of the 7-day window starting at
// weekStart for one court. Pure function of its inputs and the static
// holiday table; "today" plays no part here.
func BuildWeekSchedule(weekStart time.Time, courtID uuid.UUID, existing []Occupied) WeekSchedule {
	reserved := make(map[string]struct{}, len(existing))
	for _, occ := range existing {
		if occ.CourtID != courtID {
			continue
		}
		reserved[occ.Date.Format(ISODate)+"/"+occ.Start] = struct{}{}
	}

	start := DateOnly(weekStart)
	days := make([]DaySchedule, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		date := start.AddDate(0, 0, i)
		bookable := IsBookableDate(date)
		dateKey := date.Format(ISODate)

		cells := make([]Cell, 0, SlotsPerDay)
		for _, ts := range TimeSlots() {
			state := CellOpen
			if !bookable {
				state = CellBlocked
			} else if _, taken := reserved[dateKey+"/"+ts.Start]; taken {
				state = CellReserved
			}
			cells = append(cells, Cell{Time: ts, State: state})
		}

		days = append(days, DaySchedule{Date: date, Bookable: bookable, Cells: cells})
	}

	return WeekSchedule{WeekStart: start, CourtID: courtID, Days: days}
}

// StateOf looks up the computed state for a (date, start) cell. Dates
// outside the window report CellBlocked.
func (w WeekSchedule) StateOf(date time.Time, start string) CellState {
	key := DateOnly(date)
	for _, day := range w.Days {
		if day.Date.Equal(key) {
			for _, cell := range day.Cells {
				if cell.Time.Start == start {
					return cell.State
				}
			}
		}
	}
	return CellBlocked
}
