package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *BookingGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.first(ctx, &s, "service", id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BookingGormRepository) UpdateService(
	ctx context.Context,
	id uint,
	patch domain.ServicePatch,
) (*models.Service, error) {

	s, err := r.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return s, nil
	}

	patch.Apply(s)

	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, fmt.Errorf("update service %d: %w", id, err)
	}
	return s, nil
}

func (r *BookingGormRepository) DeleteService(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.Service{}, "service", id)
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) CreateSchedule(ctx context.Context, s *models.Schedule) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

func (r *BookingGormRepository) GetSchedule(ctx context.Context, id uint) (*models.Schedule, error) {
	var s models.Schedule
	if err := r.first(ctx, &s, "schedule", id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BookingGormRepository) UpdateSchedule(
	ctx context.Context,
	id uint,
	patch domain.SchedulePatch,
) (*models.Schedule, error) {

	s, err := r.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return s, nil
	}

	patch.Apply(s)

	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, fmt.Errorf("update schedule %d: %w", id, err)
	}
	return s, nil
}

func (r *BookingGormRepository) DeleteSchedule(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.Schedule{}, "schedule", id)
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) CreateClient(ctx context.Context, c *models.Client) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) ListClients(
	ctx context.Context,
	filter domain.ClientFilter,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Model(&models.Client{})

	if filter.Date != nil {
		q = q.
			Joins("JOIN schedules ON schedules.id = clients.schedule_id").
			Where("schedules.date = ?", *filter.Date)
	}

	if filter.ClientID != nil {
		q = q.Where("clients.id = ?", *filter.ClientID)
	}

	if filter.ServiceID != nil {
		q = q.Where("clients.service_id = ?", *filter.ServiceID)
	}

	var clients []models.Client
	if err := q.
		Select("clients.*").
		Order("clients.id ASC").
		Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *BookingGormRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.first(ctx, &c, "client", id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *BookingGormRepository) UpdateClient(
	ctx context.Context,
	id uint,
	patch domain.ClientPatch,
) (*models.Client, error) {

	c, err := r.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return c, nil
	}

	patch.Apply(c)

	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, fmt.Errorf("update client %d: %w", id, err)
	}
	return c, nil
}

func (r *BookingGormRepository) DeleteClient(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.Client{}, "client", id)
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

func (r *BookingGormRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (r *BookingGormRepository) first(ctx context.Context, dest any, entity string, id uint) error {
	err := r.db.WithContext(ctx).First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(entity, id)
	}
	if err != nil {
		return fmt.Errorf("get %s %d: %w", entity, id, err)
	}
	return nil
}

// sem cascade: dependentes continuam apontando para o id removido
func (r *BookingGormRepository) delete(ctx context.Context, model any, entity string, id uint) error {
	res := r.db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %d: %w", entity, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(entity, id)
	}
	return nil
}

// Compile-time check
var _ domain.Store = (*BookingGormRepository)(nil)
