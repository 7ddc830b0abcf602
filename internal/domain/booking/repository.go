package booking

import (
	"context"

	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

// Store is the durable home of services, schedule slots and clients.
// Lookups of absent ids fail with httperr.NotFoundError.
type Store interface {
	// -------- Service --------
	CreateService(ctx context.Context, s *models.Service) error
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	UpdateService(ctx context.Context, id uint, patch ServicePatch) (*models.Service, error)
	DeleteService(ctx context.Context, id uint) error

	// -------- Schedule --------
	CreateSchedule(ctx context.Context, s *models.Schedule) error
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	GetSchedule(ctx context.Context, id uint) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, id uint, patch SchedulePatch) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id uint) error

	// -------- Client --------
	CreateClient(ctx context.Context, c *models.Client) error
	ListClients(ctx context.Context, filter ClientFilter) ([]models.Client, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	UpdateClient(ctx context.Context, id uint, patch ClientPatch) (*models.Client, error)
	DeleteClient(ctx context.Context, id uint) error

	Close() error
}
