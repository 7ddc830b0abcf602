package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

type CreateScheduleInput struct {
	Date      time.Time
	ServiceID uint
	// nil = disponível
	IsAvailable *bool
}

type Schedules struct {
	repo  domain.Store
	audit audit.Recorder
}

func NewSchedules(repo domain.Store, audit audit.Recorder) *Schedules {
	return &Schedules{repo: repo, audit: audit}
}

// Create does not check that ServiceID exists.
func (uc *Schedules) Create(ctx context.Context, in CreateScheduleInput) (*models.Schedule, error) {
	if in.Date.IsZero() {
		return nil, httperr.ErrValidation("invalid_date", "Data inválida.")
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	s := &models.Schedule{
		Date:        in.Date,
		IsAvailable: available,
		ServiceID:   in.ServiceID,
	}
	if err := uc.repo.CreateSchedule(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: &s.ID,
		Metadata: map[string]any{"date": s.Date, "service_id": s.ServiceID},
	})

	return s, nil
}

func (uc *Schedules) List(ctx context.Context) ([]models.Schedule, error) {
	return uc.repo.ListSchedules(ctx)
}

func (uc *Schedules) Get(ctx context.Context, id uint) (*models.Schedule, error) {
	return uc.repo.GetSchedule(ctx, id)
}

func (uc *Schedules) Update(ctx context.Context, id uint, patch domain.SchedulePatch) (*models.Schedule, error) {
	if patch.Date != nil && patch.Date.IsZero() {
		return nil, httperr.ErrValidation("invalid_date", "Data inválida.")
	}

	s, err := uc.repo.UpdateSchedule(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return s, nil
}

// Delete leaves clients booked into the slot untouched.
func (uc *Schedules) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteSchedule(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_deleted",
		Entity:   "schedule",
		EntityID: &id,
	})

	return nil
}
