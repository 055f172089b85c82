package analytics

import (
	"strings"
	"time"

	"fitclub-admin-backend/internal/model"
)

// Filter applies the conjunction of all active predicates to records.
// It is a pure function: now only feeds the relative date windows, and
// the input slice is never mutated.
func Filter(records []model.Reservation, params FilterParams, now time.Time) []model.Reservation {
	query := strings.ToLower(strings.TrimSpace(params.Search))
	today := dateKey(now)
	weekStart := mostRecentSunday(now)

	filtered := make([]model.Reservation, 0, len(records))
	for _, r := range records {
		if query != "" && !matchesSearch(r, query) {
			continue
		}
		if params.Status != "" && params.Status != "all" && r.Status != params.Status {
			continue
		}
		if params.LocationID != 0 {
			id, ok := ResolveLocationID(r)
			if !ok || id != params.LocationID {
				continue
			}
		}
		if params.InstructorID != 0 {
			id, ok := ResolveInstructorID(r)
			if !ok || id != params.InstructorID {
				continue
			}
		}
		if !matchesDate(r, params, now, today, weekStart) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// matchesSearch reports whether any of the four searchable fields
// contains the lowercased query.
func matchesSearch(r model.Reservation, query string) bool {
	for _, field := range []string{memberName(r), memberEmail(r), className(r), instructorName(r)} {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// matchesDate evaluates the relative date window and the explicit
// inclusive bounds. Both can be active at once; every active
// constraint must hold.
func matchesDate(r model.Reservation, params FilterParams, now time.Time, today, weekStart string) bool {
	key := dateKey(r.ReservationDate)

	switch params.DateMode {
	case DateModeToday:
		if key != today {
			return false
		}
	case DateModeWeek:
		if key < weekStart {
			return false
		}
	case DateModeMonth:
		if !sameMonth(r.ReservationDate, now) {
			return false
		}
	}

	if params.StartDate != "" && key < params.StartDate {
		return false
	}
	if params.EndDate != "" && key > params.EndDate {
		return false
	}
	return true
}
