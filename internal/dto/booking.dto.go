package dto

import (
	"time"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
)

type MessageResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

type ServiceDTO struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ScheduleDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
	ServiceID   uint   `json:"service_id"`
}

type ClientDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	ServiceID  uint   `json:"service_id"`
	ScheduleID uint   `json:"schedule_id"`
}

type HistoryDTO struct {
	ClientDTO
	Date string `json:"date"`
}

func Services(in []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(in))
	for _, s := range in {
		out = append(out, ServiceDTO{ID: s.ID, Name: s.Name, Price: s.Price})
	}
	return out
}

func Schedules(in []models.Schedule, loc *time.Location) []ScheduleDTO {
	out := make([]ScheduleDTO, 0, len(in))
	for _, s := range in {
		out = append(out, ScheduleDTO{
			ID:          s.ID,
			Date:        timezone.FormatISO(s.Date, loc),
			IsAvailable: s.IsAvailable,
			ServiceID:   s.ServiceID,
		})
	}
	return out
}

func Client(c models.Client) ClientDTO {
	return ClientDTO{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		ServiceID:  c.ServiceID,
		ScheduleID: c.ScheduleID,
	}
}

func Clients(in []models.Client) []ClientDTO {
	out := make([]ClientDTO, 0, len(in))
	for _, c := range in {
		out = append(out, Client(c))
	}
	return out
}

func History(in []domain.HistoryRecord, loc *time.Location) []HistoryDTO {
	out := make([]HistoryDTO, 0, len(in))
	for _, r := range in {
		out = append(out, HistoryDTO{
			ClientDTO: Client(r.Client),
			Date:      timezone.FormatISO(r.Date, loc),
		})
	}
	return out
}
