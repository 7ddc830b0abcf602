package models

import "time"

type Schedule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	IsAvailable bool      `gorm:"not null" json:"is_available"`
	ServiceID   uint      `gorm:"index" json:"service_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
