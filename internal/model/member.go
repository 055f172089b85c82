package model

import "time"

// Member represents the club member who booked a reservation.
type Member struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"size:256;not null" json:"full_name"`
	Email     string    `gorm:"size:256" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}
