package booking

import (
	"time"

	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

// ===============================
// Partial updates
// ===============================

// A nil field keeps the stored value; an empty patch is a no-op.

type ServicePatch struct {
	Name  *string
	Price *float64
}

func (p ServicePatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil
}

func (p ServicePatch) Apply(s *models.Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
}

type SchedulePatch struct {
	Date        *time.Time
	IsAvailable *bool
	ServiceID   *uint
}

func (p SchedulePatch) IsEmpty() bool {
	return p.Date == nil && p.IsAvailable == nil && p.ServiceID == nil
}

func (p SchedulePatch) Apply(s *models.Schedule) {
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.IsAvailable != nil {
		s.IsAvailable = *p.IsAvailable
	}
	if p.ServiceID != nil {
		s.ServiceID = *p.ServiceID
	}
}

type ClientPatch struct {
	Name       *string
	Phone      *string
	ServiceID  *uint
	ScheduleID *uint
}

func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.ServiceID == nil && p.ScheduleID == nil
}

func (p ClientPatch) Apply(c *models.Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.ServiceID != nil {
		c.ServiceID = *p.ServiceID
	}
	if p.ScheduleID != nil {
		c.ScheduleID = *p.ScheduleID
	}
}
