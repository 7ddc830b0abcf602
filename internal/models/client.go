package models

import "time"

// Cliente sem login, vinculado a um serviço e a um slot da agenda
type Client struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	ServiceID  uint `gorm:"index" json:"service_id"`
	ScheduleID uint `gorm:"index" json:"schedule_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
