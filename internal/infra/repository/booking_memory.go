package repository

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

// BookingMemoryRepository keeps every record in process memory. It backs
// DB_DRIVER=memory and stands in for the database in tests.
type BookingMemoryRepository struct {
	mu  sync.Mutex
	now func() time.Time

	services  table[models.Service]
	schedules table[models.Schedule]
	clients   table[models.Client]
}

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{now: time.Now}
}

// table keeps rows in insertion order; ids are never reused.
type table[T any] struct {
	nextID uint
	order  []uint
	rows   map[uint]T
}

func (t *table[T]) insert(row T) uint {
	if t.rows == nil {
		t.rows = make(map[uint]T)
	}
	t.nextID++
	t.order = append(t.order, t.nextID)
	t.rows[t.nextID] = row
	return t.nextID
}

func (t *table[T]) get(id uint) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) put(id uint, row T) {
	t.rows[id] = row
}

func (t *table[T]) remove(id uint) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateService(_ context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	s.CreatedAt, s.UpdatedAt = now, now
	s.ID = r.services.insert(*s)
	r.services.put(s.ID, *s)
	return nil
}

func (r *BookingMemoryRepository) ListServices(_ context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.services.all(), nil
}

func (r *BookingMemoryRepository) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services.get(id)
	if !ok {
		return nil, httperr.ErrNotFound("service", id)
	}
	return &s, nil
}

func (r *BookingMemoryRepository) UpdateService(
	_ context.Context,
	id uint,
	patch domain.ServicePatch,
) (*models.Service, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services.get(id)
	if !ok {
		return nil, httperr.ErrNotFound("service", id)
	}
	if patch.IsEmpty() {
		return &s, nil
	}
	patch.Apply(&s)
	s.UpdatedAt = r.now()
	r.services.put(id, s)
	return &s, nil
}

func (r *BookingMemoryRepository) DeleteService(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.services.remove(id) {
		return httperr.ErrNotFound("service", id)
	}
	return nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateSchedule(_ context.Context, s *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	s.CreatedAt, s.UpdatedAt = now, now
	s.ID = r.schedules.insert(*s)
	r.schedules.put(s.ID, *s)
	return nil
}

func (r *BookingMemoryRepository) ListSchedules(_ context.Context) ([]models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.schedules.all(), nil
}

func (r *BookingMemoryRepository) GetSchedule(_ context.Context, id uint) (*models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.schedules.get(id)
	if !ok {
		return nil, httperr.ErrNotFound("schedule", id)
	}
	return &s, nil
}

func (r *BookingMemoryRepository) UpdateSchedule(
	_ context.Context,
	id uint,
	patch domain.SchedulePatch,
) (*models.Schedule, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.schedules.get(id)
	if !ok {
		return nil, httperr.ErrNotFound("schedule", id)
	}
	if patch.IsEmpty() {
		return &s, nil
	}
	patch.Apply(&s)
	s.UpdatedAt = r.now()
	r.schedules.put(id, s)
	return &s, nil
}

func (r *BookingMemoryRepository) DeleteSchedule(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.schedules.remove(id) {
		return httperr.ErrNotFound("schedule", id)
	}
	return nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateClient(_ context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	c.CreatedAt, c.UpdatedAt = now, now
	c.ID = r.clients.insert(*c)
	r.clients.put(c.ID, *c)
	return nil
}

func (r *BookingMemoryRepository) ListClients(
	_ context.Context,
	filter domain.ClientFilter,
) ([]models.Client, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Client, 0)
	for _, c := range r.clients.all() {
		if filter.ClientID != nil && c.ID != *filter.ClientID {
			continue
		}
		if filter.ServiceID != nil && c.ServiceID != *filter.ServiceID {
			continue
		}
		if filter.Date != nil {
			s, ok := r.schedules.get(c.ScheduleID)
			if !ok || !s.Date.Equal(*filter.Date) {
				continue
			}
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *BookingMemoryRepository) GetClient(_ context.Context, id uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients.get(id)
	if !ok {
		return nil, httperr.ErrNotFound("client", id)
	}
	return &c, nil
}

func (r *BookingMemoryRepository) UpdateClient(
	_ context.Context,
	id uint,
	patch domain.ClientPatch,
) (*models.Client, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients.get(id)
	if !ok {
		return nil, httperr.ErrNotFound("client", id)
	}
	if patch.IsEmpty() {
		return &c, nil
	}
	patch.Apply(&c)
	c.UpdatedAt = r.now()
	r.clients.put(id, c)
	return &c, nil
}

func (r *BookingMemoryRepository) DeleteClient(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.clients.remove(id) {
		return httperr.ErrNotFound("client", id)
	}
	return nil
}

func (r *BookingMemoryRepository) Close() error { return nil }

// Compile-time check
var _ domain.Store = (*BookingMemoryRepository)(nil)
