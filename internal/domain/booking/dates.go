package booking

import "time"

// ISODate is the canonical date key format used across the booking domain.
const ISODate = "2006-01-02"

// Japanese public holidays, 2025-2027. Curated by hand per year; dates
// outside this range fall back to a pure weekend check. Known staleness
// risk once 2027 passes, extend the table rather than deriving holidays.
var holidays = map[string]struct{}{
	// 2025
	"2025-01-01": {}, // New Year's Day
	"2025-01-13": {}, // Coming of Age Day
	"2025-02-11": {}, // National Foundation Day
	"2025-02-23": {}, // Emperor's Birthday
	"2025-03-20": {}, // Vernal Equinox Day
	"2025-04-29": {}, // Showa Day
	"2025-05-03": {}, // Constitution Memorial Day
	"2025-05-04": {}, // Greenery Day
	"2025-05-05": {}, // Children's Day
	"2025-07-21": {}, // Marine Day
	"2025-08-11": {}, // Mountain Day
	"2025-09-15": {}, // Respect for the Aged Day
	"2025-09-23": {}, // Autumnal Equinox Day
	"2025-10-13": {}, // Sports Day
	"2025-11-03": {}, // Culture Day
	"2025-11-23": {}, // Labor Thanksgiving Day
	// 2026
	"2026-01-01": {}, // New Year's Day
	"2026-01-12": {}, // Coming of Age Day
	"2026-02-11": {}, // National Foundation Day
	"2026-02-23": {}, // Emperor's Birthday
	"2026-03-20": {}, // Vernal Equinox Day
	"2026-04-29": {}, // Showa Day
	"2026-05-03": {}, // Constitution Memorial Day
	"2026-05-04": {}, // Greenery Day
	"2026-05-05": {}, // Children's Day
	"2026-05-06": {}, // substitute holiday (Constitution Memorial Day falls on Sunday)
	"2026-07-20": {}, // Marine Day
	"2026-08-11": {}, // Mountain Day
	"2026-09-21": {}, // Respect for the Aged Day
	"2026-09-22": {}, // citizens' holiday (between two holidays)
	"2026-09-23": {}, // Autumnal Equinox Day
	"2026-10-12": {}, // Sports Day
	"2026-11-03": {}, // Culture Day
	"2026-11-23": {}, // Labor Thanksgiving Day
	// 2027
	"2027-01-01": {}, // New Year's Day
	"2027-01-11": {}, // Coming of Age Day
	"2027-02-11": {}, // National Foundation Day
	"2027-02-23": {}, // Emperor's Birthday
	"2027-03-21": {}, // Vernal Equinox Day
	"2027-04-29": {}, // Showa Day
	"2027-05-03": {}, // Constitution Memorial Day
	"2027-05-04": {}, // Greenery Day
	"2027-05-05": {}, // Children's Day
	"2027-07-19": {}, // Marine Day
	"2027-08-11": {}, // Mountain Day
	"2027-09-20": {}, // Respect for the Aged Day
	"2027-09-23": {}, // Autumnal Equinox Day
	"2027-10-11": {}, // Sports Day
	"2027-11-03": {}, // Culture Day
	"2027-11-23": {}, // Labor Thanksgiving Day
}

func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func IsHoliday(date time.Time) bool {
	_, ok := holidays[date.Format(ISODate)]
	return ok
}

// IsBookableDate reports whether reservations may be placed on date.
// Courts are open on weekends and listed holidays only.
func IsBookableDate(date time.Time) bool {
	return IsWeekend(date) || IsHoliday(date)
}

// WeekOf returns the Monday starting the week containing date,
// truncated to midnight in date's location.
func WeekOf(date time.Time) time.Time {
	d := DateOnly(date)
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDate(0, 0, -offset)
}

// DateOnly strips the time-of-day component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate compares two timestamps by calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
