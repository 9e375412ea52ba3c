//go:build unit

package booking_test

import (
	"testing"

	"court-reserve/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(courtID uuid.UUID, dateStr, start string) booking.Slot {
	ts, err := booking.NewTimeSlot(start, nextHour(start))
	if err != nil {
		panic(err)
	}
	return booking.NewSlot(courtID, date(dateStr), ts)
}

func nextHour(start string) string {
	for _, ts := range booking.TimeSlots() {
		if ts.Start == start {
			return ts.End
		}
	}
	panic("not a slot start: " + start)
}

func TestSelectionToggle(t *testing.T) {
	courtID := uuid.New()
	free := booking.SlotContext{}

	t.Run("pick then unpick restores the empty selection", func(t *testing.T) {
		sel := booking.NewSelection(booking.ModeNormal)
		slot := slotAt(courtID, "2025-01-04", "09:00")

		require.NoError(t, sel.Toggle(slot, free))
		assert.Equal(t, 1, sel.Size())
		assert.True(t, sel.Contains(slot))

		require.NoError(t, sel.Toggle(slot, free))
		assert.Equal(t, 0, sel.Size())
		assert.False(t, sel.Contains(slot))
	})

	t.Run("non-bookable date rejected", func(t *testing.T) {
		sel := booking.NewSelection(booking.ModeNormal)
		// 2025-01-06 is a Monday and not in the holiday table
		err := sel.Toggle(slotAt(courtID, "2025-01-06", "09:00"), free)
		assert.ErrorIs(t, err, booking.ErrNotBookableDate)
		assert.Equal(t, 0, sel.Size())
	})

	t.Run("occupied slot rejected regardless of cap state", func(t *testing.T) {
		sel := booking.NewSelection(booking.ModeNormal)
		err := sel.Toggle(slotAt(courtID, "2025-01-04", "09:00"), booking.SlotContext{Reserved: true})
		assert.ErrorIs(t, err, booking.ErrSlotTaken)
	})

	t.Run("daily cap counts existing reservations", func(t *testing.T) {
		// Scenario: week of 2025-01-04, existing reservation 09:00 on the 4th.
		sel := booking.NewSelection(booking.ModeNormal)
		oneExisting := booking.SlotContext{UserDayCount: 1}

		require.NoError(t, sel.Toggle(slotAt(courtID, "2025-01-04", "10:00"), oneExisting))

		err := sel.Toggle(slotAt(courtID, "2025-01-04", "11:00"), oneExisting)
		assert.ErrorIs(t, err, booking.ErrDailyCapExceeded)

		// another day still has weekly headroom
		require.NoError(t, sel.Toggle(slotAt(courtID, "2025-01-05", "09:00"), free))

		err = sel.Toggle(slotAt(courtID, "2025-01-05", "10:00"), free)
		assert.ErrorIs(t, err, booking.ErrWeeklyCapExceeded)

		assert.Equal(t, 2, sel.Size())
	})

	t.Run("daily cap from pending picks alone", func(t *testing.T) {
		sel := booking.NewSelection(booking.ModeNormal)
		require.NoError(t, sel.Toggle(slotAt(courtID, "2025-01-04", "09:00"), free))
		require.NoError(t, sel.Toggle(slotAt(courtID, "2025-01-04", "10:00"), free))

		err := sel.Toggle(slotAt(courtID, "2025-01-04", "11:00"), free)
		assert.ErrorIs(t, err, booking.ErrDailyCapExceeded)
	})

	t.Run("weekly cap never exceeded", func(t *testing.T) {
		sel := booking.NewSelection(booking.ModeNormal)
		require.NoError(t, sel.Toggle(slotAt(courtID, "2025-01-04", "09:00"), free))
		require.NoError(t, sel.Toggle(slotAt(courtID, "2025-01-05", "09:00"), free))

		err := sel.Toggle(slotAt(courtID, "2025-01-11", "09:00"), free)
		assert.ErrorIs(t, err, booking.ErrWeeklyCapExceeded)
		assert.LessOrEqual(t, sel.Size(), booking.MaxSlotsPerWeek)
	})

	t.Run("deselection succeeds even at the cap", func(t *testing.T) {
		sel := booking.NewSelection(booking.ModeNormal)
		first := slotAt(courtID, "2025-01-04", "09:00")
		require.NoError(t, sel.Toggle(first, free))
		require.NoError(t, sel.Toggle(slotAt(courtID, "2025-01-05", "09:00"), free))

		require.NoError(t, sel.Toggle(first, free))
		assert.Equal(t, 1, sel.Size())
	})

	t.Run("same start on a different court is a distinct slot", func(t *testing.T) {
		sel := booking.NewSelection(booking.ModeNormal)
		otherCourt := uuid.New()
		require.NoError(t, sel.Toggle(slotAt(courtID, "2025-01-04", "09:00"), free))
		require.NoError(t, sel.Toggle(slotAt(otherCourt, "2025-01-04", "09:00"), free))
		assert.Equal(t, 2, sel.Size())
	})
}

func TestSelectionSingleMode(t *testing.T) {
	courtID := uuid.New()
	free := booking.SlotContext{}

	t.Run("new pick replaces the held slot without cap errors", func(t *testing.T) {
		sel := booking.NewSelection(booking.ModeSingle)
		first := slotAt(courtID, "2025-01-04", "09:00")
		second := slotAt(courtID, "2025-01-05", "14:00")

		require.NoError(t, sel.Toggle(first, free))
		require.NoError(t, sel.Toggle(second, free))

		assert.Equal(t, 1, sel.Size())
		assert.True(t, sel.Contains(second))
		assert.False(t, sel.Contains(first))
	})

	t.Run("re-click clears the held slot", func(t *testing.T) {
		sel := booking.NewSelection(booking.ModeSingle)
		slot := slotAt(courtID, "2025-01-04", "09:00")

		require.NoError(t, sel.Toggle(slot, free))
		require.NoError(t, sel.Toggle(slot, free))
		assert.Equal(t, 0, sel.Size())
	})

	t.Run("caps bypassed but occupancy still checked", func(t *testing.T) {
		sel := booking.NewSelection(booking.ModeSingle)
		err := sel.Toggle(slotAt(courtID, "2025-01-04", "09:00"), booking.SlotContext{Reserved: true, UserDayCount: 5})
		assert.ErrorIs(t, err, booking.ErrSlotTaken)

		require.NoError(t, sel.Toggle(slotAt(courtID, "2025-01-04", "10:00"), booking.SlotContext{UserDayCount: 5}))
		assert.Equal(t, 1, sel.Size())
	})
}
