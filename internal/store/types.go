package store

import (
	"time"

	"fitclub-admin-backend/internal/model"
)

// FeedItem represents a single reservation record from the booking
// platform's feed, denormalized the way the upstream API ships it.
// Optional references come through as nullable ids.
type FeedItem struct {
	ID             int64   `json:"id"`
	MemberID       *int64  `json:"memberId"`
	MemberName     string  `json:"memberName"`
	MemberEmail    string  `json:"memberEmail"`
	ScheduleID     *int64  `json:"scheduleId"`
	StartTime      string  `json:"startTime"`
	ClassID        *int64  `json:"classId"`
	ClassName      string  `json:"className"`
	InstructorID   *int64  `json:"instructorId"`
	InstructorName string  `json:"instructorName"`
	LocationID     *int64  `json:"locationId"`
	LocationName   string  `json:"locationName"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	CreatedAt      *string `json:"createdAt"`

	// Filled in by the importer after normalizing the raw strings.
	DateParsed      time.Time               `json:"-"`
	CreatedAtParsed *time.Time              `json:"-"`
	StatusParsed    model.ReservationStatus `json:"-"`
}
