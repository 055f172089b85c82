package analytics

import "fitclub-admin-backend/internal/model"

// Fallback display strings for reservations with missing references.
const (
	FallbackClassName      = "Sin clase"
	FallbackInstructorName = "Sin instructor"
	FallbackLocationName   = "Sin sede"
)

// classOf returns the reservation's class, reachable only through the
// schedule.
func classOf(r model.Reservation) *model.Class {
	if r.Schedule == nil {
		return nil
	}
	return r.Schedule.Class
}

// locationIDAccessors is the ordered fallback chain for resolving
// which sede a reservation belongs to. The schedule's direct reference
// wins over the class's; id fields win over nested objects. Both the
// row-level and the group-level resolvers go through this one chain.
var locationIDAccessors = []func(model.Reservation) *int64{
	func(r model.Reservation) *int64 {
		if r.Schedule == nil {
			return nil
		}
		return r.Schedule.LocationID
	},
	func(r model.Reservation) *int64 {
		if c := classOf(r); c != nil {
			return c.LocationID
		}
		return nil
	},
	func(r model.Reservation) *int64 {
		if r.Schedule != nil && r.Schedule.Location != nil {
			return &r.Schedule.Location.ID
		}
		return nil
	},
	func(r model.Reservation) *int64 {
		if c := classOf(r); c != nil && c.Location != nil {
			return &c.Location.ID
		}
		return nil
	},
}

// ResolveLocationID walks the fallback chain and returns the first
// location id found.
func ResolveLocationID(r model.Reservation) (int64, bool) {
	for _, access := range locationIDAccessors {
		if id := access(r); id != nil {
			return *id, true
		}
	}
	return 0, false
}

// ResolveLocationName returns the display name of the resolved sede,
// or "Sin sede" when the chain comes up empty or the id has no nested
// object carrying a name.
func ResolveLocationName(r model.Reservation) string {
	if r.Schedule != nil && r.Schedule.Location != nil && r.Schedule.Location.Name != "" {
		return r.Schedule.Location.Name
	}
	if c := classOf(r); c != nil && c.Location != nil && c.Location.Name != "" {
		return c.Location.Name
	}
	return FallbackLocationName
}

// ResolveInstructorID resolves the instructor via the class's id field
// first, then the nested instructor object.
func ResolveInstructorID(r model.Reservation) (int64, bool) {
	c := classOf(r)
	if c == nil {
		return 0, false
	}
	if c.InstructorID != nil {
		return *c.InstructorID, true
	}
	if c.Instructor != nil {
		return c.Instructor.ID, true
	}
	return 0, false
}

// ResolveInstructorName returns the instructor's display name or
// "Sin instructor".
func ResolveInstructorName(r model.Reservation) string {
	if c := classOf(r); c != nil && c.Instructor != nil && c.Instructor.Name != "" {
		return c.Instructor.Name
	}
	return FallbackInstructorName
}

// ResolveClassName returns the class name or "Sin clase".
func ResolveClassName(r model.Reservation) string {
	if c := classOf(r); c != nil && c.Name != "" {
		return c.Name
	}
	return FallbackClassName
}

// memberName and memberEmail return empty strings for reservations
// without a member row; they never substitute a fallback label because
// search must not match placeholder text.
func memberName(r model.Reservation) string {
	if r.Member == nil {
		return ""
	}
	return r.Member.FullName
}

func memberEmail(r model.Reservation) string {
	if r.Member == nil {
		return ""
	}
	return r.Member.Email
}

// className is the raw class name without fallback, for search.
func className(r model.Reservation) string {
	if c := classOf(r); c != nil {
		return c.Name
	}
	return ""
}

// instructorName is the raw instructor name without fallback, for search.
func instructorName(r model.Reservation) string {
	if c := classOf(r); c != nil && c.Instructor != nil {
		return c.Instructor.Name
	}
	return ""
}

// StartTimeHHMM truncates the schedule's start time to minute
// precision; reservations without a schedule get an empty string.
func StartTimeHHMM(r model.Reservation) string {
	if r.Schedule == nil {
		return ""
	}
	t := r.Schedule.StartTime
	if len(t) > 5 {
		t = t[:5]
	}
	return t
}
