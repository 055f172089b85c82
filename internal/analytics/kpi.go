package analytics

import (
	"time"

	"fitclub-admin-backend/internal/model"
)

// Summarize derives the dashboard KPIs from the full unfiltered record
// set. The week starts on the most recent Sunday.
func Summarize(records []model.Reservation, now time.Time) Summary {
	today := dateKey(now)
	weekStart := mostRecentSunday(now)

	summary := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case model.StatusConfirmed:
			summary.Confirmed++
		case model.StatusCancelled:
			summary.Cancelled++
		}

		key := dateKey(r.ReservationDate)
		if key == today {
			summary.Today++
		}
		if key >= weekStart {
			summary.ThisWeek++
		}
	}
	return summary
}
