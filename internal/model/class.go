package model

import "time"

// Class represents a class offering (e.g. "Yoga", "Spinning").
// Instructor and Location references are optional: imported records may
// arrive before their related rows, or never reference one at all.
type Class struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:256;not null" json:"name"`
	InstructorID *int64    `gorm:"index" json:"instructor_id"`
	LocationID   *int64    `gorm:"index" json:"location_id"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
	UpdatedAt    time.Time `gorm:"not null" json:"-"`

	// Associations
	Instructor *Instructor `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Location   *Location   `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// ClassSchedule represents a recurring slot of a class at a location.
// Its own LocationID takes precedence over the class's when resolving
// where a session takes place.
type ClassSchedule struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	ClassID    *int64    `gorm:"index" json:"class_id"`
	LocationID *int64    `gorm:"index" json:"location_id"`
	StartTime  string    `gorm:"size:8;not null" json:"start_time"` // "HH:MM" or "HH:MM:SS"
	CreatedAt  time.Time `gorm:"not null" json:"-"`
	UpdatedAt  time.Time `gorm:"not null" json:"-"`

	// Associations
	Class    *Class    `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}
