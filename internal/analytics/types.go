package analytics

import (
	"fmt"
	"time"

	"fitclub-admin-backend/internal/model"
)

// DateMode selects one of the fixed relative date windows.
type DateMode string

const (
	DateModeAll   DateMode = "all"
	DateModeToday DateMode = "today"
	DateModeWeek  DateMode = "week"
	DateModeMonth DateMode = "month"
)

// FilterParams holds the five independent filter dimensions. Zero
// values ("", 0, DateModeAll) mean "no restriction" on that dimension.
type FilterParams struct {
	Search       string
	Status       model.ReservationStatus
	LocationID   int64
	InstructorID int64
	DateMode     DateMode
	StartDate    string // "YYYY-MM-DD", inclusive lower bound
	EndDate      string // "YYYY-MM-DD", inclusive upper bound
}

// Key returns a stable cache key for this parameter set.
func (p FilterParams) Key() string {
	return fmt.Sprintf("%s|%s|%d|%d|%s|%s|%s",
		p.Search, p.Status, p.LocationID, p.InstructorID, p.DateMode, p.StartDate, p.EndDate)
}

// SessionKey identifies one real-world class occurrence. Missing class
// or schedule references collapse to zero so such reservations still
// group together per date.
type SessionKey struct {
	ClassID    int64
	ScheduleID int64
	Date       string // "YYYY-MM-DD"
}

// KeyOf derives the session key of a reservation.
func KeyOf(r model.Reservation) SessionKey {
	key := SessionKey{Date: dateKey(r.ReservationDate)}
	if r.ScheduleID != nil {
		key.ScheduleID = *r.ScheduleID
	}
	if c := classOf(r); c != nil {
		key.ClassID = c.ID
	}
	return key
}

// SessionGroup is the per-session aggregate produced by the grouper.
type SessionGroup struct {
	Key            SessionKey          `json:"key"`
	ClassName      string              `json:"class_name"`
	InstructorName string              `json:"instructor_name"`
	LocationName   string              `json:"location_name"`
	Date           string              `json:"date"`
	Time           string              `json:"time"` // "HH:MM", empty when no schedule
	Reservations   []model.Reservation `json:"reservations"`
	ConfirmedCount int                 `json:"confirmed_count"`
	CancelledCount int                 `json:"cancelled_count"`
}

// Summary holds the scalar KPIs over the full unfiltered record set.
type Summary struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
}

// RankEntry is one row of a frequency table.
type RankEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RankTables bundles the three chart tables.
type RankTables struct {
	ByClass      []RankEntry `json:"by_class"`
	ByWeekday    []RankEntry `json:"by_weekday"`
	ByInstructor []RankEntry `json:"by_instructor"`
}

// Row is one reservation annotated for display: resolved names plus
// the live occupancy of its session.
type Row struct {
	model.Reservation
	ClassName      string `json:"class_name"`
	InstructorName string `json:"instructor_name"`
	LocationName   string `json:"location_name"`
	Time           string `json:"time"`
	Occupancy      int    `json:"occupancy"`
}

// Snapshot is one wholesale load of the record source. It is replaced
// atomically on reload and never mutated in place.
type Snapshot struct {
	Reservations []model.Reservation
	Locations    []model.Location
	Instructors  []model.Instructor
	Occupancy    map[SessionKey]int
	LoadedAt     time.Time
}
