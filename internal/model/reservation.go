package model

import "time"

// ReservationStatus enumerates the lifecycle states of a reservation.
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
	StatusNoShow    ReservationStatus = "no_show"
)

// Reservation represents a member's booking for one class session.
// This service only ever moves a reservation from confirmed to
// cancelled; completed/no_show are written by the booking platform.
type Reservation struct {
	ID              int64             `gorm:"primaryKey" json:"id"`
	MemberID        *int64            `gorm:"index" json:"member_id"`
	ScheduleID      *int64            `gorm:"index" json:"schedule_id"`
	ReservationDate time.Time         `gorm:"type:date;not null;index" json:"reservation_date"`
	Status          ReservationStatus `gorm:"size:16;not null;index" json:"status"`
	CreatedAt       time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null" json:"-"`

	// Associations
	Member   *Member        `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Schedule *ClassSchedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
}
