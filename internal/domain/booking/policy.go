package booking

import "time"

// CanModify reports whether a reservation on bookingDate may still be
// changed or cancelled. The cutoff is the day before: same-day and
// next-day reservations are locked, strictly later dates are open.
// The comparison is by calendar date, so a DATE column scanned as UTC
// midnight and a local server clock agree on where the cutoff falls.
func CanModify(bookingDate, now time.Time) bool {
	tomorrow := DateOnly(now).AddDate(0, 0, 1)
	return bookingDate.Format(ISODate) > tomorrow.Format(ISODate)
}
