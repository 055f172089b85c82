package analytics

import "time"

const dateLayout = "2006-01-02"

// dateKey formats a timestamp as a calendar date string. Keys compare
// chronologically as plain strings, which is what the inclusive
// start/end bounds rely on.
func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// mostRecentSunday returns the date key of the start of the current
// week (Sunday) relative to now.
func mostRecentSunday(now time.Time) string {
	return dateKey(now.AddDate(0, 0, -int(now.Weekday())))
}

// sameMonth reports whether the reservation date falls in the same
// calendar month and year as now.
func sameMonth(date, now time.Time) bool {
	return date.Year() == now.Year() && date.Month() == now.Month()
}
