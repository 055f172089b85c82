package analytics

import "fitclub-admin-backend/internal/model"

// OccupancyCounts counts confirmed reservations per session over the
// FULL record set. Callers must feed it the unfiltered list: occupancy
// annotates rows with how many people are really in a session, so it
// must never reflect whatever filters happen to be active.
func OccupancyCounts(records []model.Reservation) map[SessionKey]int {
	counts := make(map[SessionKey]int)
	for _, r := range records {
		if r.Status != model.StatusConfirmed {
			continue
		}
		counts[KeyOf(r)]++
	}
	return counts
}
