package booking

import "errors"

var (
	ErrNotBookableDate   = errors.New("date is not bookable")
	ErrSlotTaken         = errors.New("slot is already reserved")
	ErrDailyCapExceeded  = errors.New("daily reservation cap exceeded")
	ErrWeeklyCapExceeded = errors.New("weekly reservation cap exceeded")
)

// Caps on a member's simultaneous holdings. The daily cap counts existing
// reservations plus pending picks; the weekly cap counts pending picks only.
const (
	MaxSlotsPerDay  = 2
	MaxSlotsPerWeek = 2
)

type SelectionMode int

const (
	// ModeNormal enforces both caps; used when composing a new booking.
	ModeNormal SelectionMode = iota
	// ModeSingle holds at most one slot and bypasses caps; used when
	// picking a replacement slot for an existing reservation. A new pick
	// replaces the held one, so cap errors cannot occur.
	ModeSingle
)

// SlotContext is what the enforcer must know about the target cell at
// toggle time, read from the current week's schedule.
type SlotContext struct {
	Reserved     bool // cell occupied by anyone for this court
	UserDayCount int  // the user's existing reservations on this date
}

// Selection is a member's in-progress, unsubmitted set of picked slots.
// Created empty, mutated by Toggle, cleared on submit or navigation.
type Selection struct {
	mode  SelectionMode
	slots []Slot
}

func NewSelection(mode SelectionMode) *Selection {
	return &Selection{mode: mode}
}

func (s *Selection) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

func (s *Selection) Size() int {
	return len(s.slots)
}

func (s *Selection) Contains(slot Slot) bool {
	return s.indexOf(slot) >= 0
}

func (s *Selection) Clear() {
	s.slots = nil
}

// Toggle picks or unpicks a slot. Unpicking always succeeds; picking is
// checked in order: bookable date, slot free, daily cap, weekly cap.
func (s *Selection) Toggle(slot Slot, ctx SlotContext) error {
	if idx := s.indexOf(slot); idx >= 0 {
		if s.mode == ModeSingle {
			s.slots = nil
		} else {
			s.slots = append(s.slots[:idx], s.slots[idx+1:]...)
		}
		return nil
	}

	if !IsBookableDate(slot.Date) {
		return ErrNotBookableDate
	}
	if ctx.Reserved {
		return ErrSlotTaken
	}

	if s.mode == ModeSingle {
		s.slots = []Slot{slot}
		return nil
	}

	dayCount := ctx.UserDayCount + s.countForDate(slot)
	if dayCount >= MaxSlotsPerDay {
		return ErrDailyCapExceeded
	}
	if len(s.slots) >= MaxSlotsPerWeek {
		return ErrWeeklyCapExceeded
	}

	s.slots = append(s.slots, slot)
	return nil
}

func (s *Selection) indexOf(slot Slot) int {
	for i, held := range s.slots {
		if held.Equal(slot) {
			return i
		}
	}
	return -1
}

func (s *Selection) countForDate(slot Slot) int {
	count := 0
	for _, held := range s.slots {
		if held.CourtID == slot.CourtID && held.DateKey() == slot.DateKey() {
			count++
		}
	}
	return count
}
