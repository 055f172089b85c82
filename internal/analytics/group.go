package analytics

import (
	"sort"
	"time"

	"fitclub-admin-backend/internal/model"
)

// GroupSessions collapses the filtered view into per-session
// aggregates. Reservations dated before today are dropped; the rest
// land in exactly one group keyed by (class, schedule, date). Groups
// come back sorted ascending by date and start time.
func GroupSessions(filtered []model.Reservation, now time.Time) []SessionGroup {
	today := dateKey(now)

	groups := make(map[SessionKey]*SessionGroup)
	order := make([]SessionKey, 0)

	for _, r := range filtered {
		if dateKey(r.ReservationDate) < today {
			continue
		}

		key := KeyOf(r)
		group, exists := groups[key]
		if !exists {
			group = &SessionGroup{
				Key:            key,
				ClassName:      ResolveClassName(r),
				InstructorName: ResolveInstructorName(r),
				LocationName:   ResolveLocationName(r),
				Date:           key.Date,
				Time:           StartTimeHHMM(r),
			}
			groups[key] = group
			order = append(order, key)
		}

		group.Reservations = append(group.Reservations, r)
		switch r.Status {
		case model.StatusConfirmed:
			group.ConfirmedCount++
		case model.StatusCancelled:
			group.CancelledCount++
		}
	}

	result := make([]SessionGroup, 0, len(groups))
	for _, key := range order {
		result = append(result, *groups[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date+" "+result[i].Time < result[j].Date+" "+result[j].Time
	})
	return result
}
