package models

import "time"

// Service is a bookable offering. Schedules and clients point at it by id
// without a declared foreign key, so deleting a service never cascades.
type Service struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
