package projection

import (
	"time"
)

// MonthsBetween returns the inclusive count of calendar-month steps from
// start to end: (endYear-startYear)*12 + (endMonth-startMonth) + 1.
// Returns 0 or negative when end precedes start's month.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}

// monthsElapsed is the exclusive variant: whole calendar months from start
// to month. Drives the compound-growth exponent so the start month itself
// carries zero growth.
func monthsElapsed(start, month time.Time) int {
	return (month.Year()-start.Year())*12 + int(month.Month()) - int(start.Month())
}

// sameMonth reports whether two dates fall in the same calendar year+month.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// monthOnOrAfter reports whether month is in the same calendar month as
// anchor or later. Day-of-month is deliberately ignored: recurrence and
// funding recognition work at month granularity.
func monthOnOrAfter(month, anchor time.Time) bool {
	return monthsElapsed(anchor, month) >= 0
}

// inRange is an inclusive date-range membership test. Used for salary
// activity windows, which keep full date granularity.
func inRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// daysIn returns the number of days in the given year/month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthSequence materializes every month cursor from start to end inclusive,
// stepping one calendar month at a time. The day-of-month follows start but
// is clamped to the target month's length, so a Jan 31 start yields Feb 28
// rather than rolling over into March.
func MonthSequence(start, end time.Time) []time.Time {
	n := MonthsBetween(start, end)
	if n <= 0 {
		return nil
	}

	out := make([]time.Time, 0, n)
	year, month, day := start.Date()
	for i := 0; i < n; i++ {
		y, m := normalizeMonth(year, int(month)+i)
		d := day
		if max := daysIn(y, m); d > max {
			d = max
		}
		out = append(out, time.Date(y, m, d, 0, 0, 0, 0, start.Location()))
	}
	return out
}

// normalizeMonth folds a 1-based month offset back into [1, 12], carrying
// into the year.
func normalizeMonth(year, month int) (int, time.Month) {
	year += (month - 1) / 12
	month = (month-1)%12 + 1
	return year, time.Month(month)
}
