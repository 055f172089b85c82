package analytics

import (
	"sort"
	"time"

	"fitclub-admin-backend/internal/model"
)

const rankLimit = 10

// weekdayLabels maps time.Weekday to its Spanish chart label.
var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// weekdayOrder is the fixed Monday-first display order of the
// by-weekday table.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Rank builds the three chart tables from the full unfiltered record
// set.
func Rank(records []model.Reservation) RankTables {
	return RankTables{
		ByClass:      RankByClass(records),
		ByWeekday:    RankByWeekday(records),
		ByInstructor: RankByInstructor(records),
	}
}

// RankByClass counts reservations per class name and returns the top
// ten, descending.
func RankByClass(records []model.Reservation) []RankEntry {
	counts := make(map[string]int)
	for _, r := range records {
		counts[ResolveClassName(r)]++
	}
	return topN(counts, rankLimit)
}

// RankByInstructor counts reservations per instructor name and returns
// the top ten, descending.
func RankByInstructor(records []model.Reservation) []RankEntry {
	counts := make(map[string]int)
	for _, r := range records {
		counts[ResolveInstructorName(r)]++
	}
	return topN(counts, rankLimit)
}

// RankByWeekday counts reservations per day of week. Unlike the other
// tables it is never truncated and keeps a fixed Monday→Sunday order;
// days with no reservations are omitted.
func RankByWeekday(records []model.Reservation) []RankEntry {
	counts := make(map[time.Weekday]int)
	for _, r := range records {
		counts[r.ReservationDate.Weekday()]++
	}

	entries := make([]RankEntry, 0, len(counts))
	for _, day := range weekdayOrder {
		if count, ok := counts[day]; ok {
			entries = append(entries, RankEntry{Label: weekdayLabels[day], Count: count})
		}
	}
	return entries
}

// topN turns a counting map into a descending frequency table capped
// at limit entries. Ties break alphabetically so the output is stable
// across runs.
func topN(counts map[string]int, limit int) []RankEntry {
	entries := make([]RankEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, RankEntry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
