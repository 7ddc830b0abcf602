package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

type CreateClientInput struct {
	Name       string
	Phone      string
	ServiceID  uint
	ScheduleID uint
}

type Clients struct {
	repo  domain.Store
	audit audit.Recorder
}

func NewClients(repo domain.Store, audit audit.Recorder) *Clients {
	return &Clients{repo: repo, audit: audit}
}

// Create stores the references as given; neither service nor schedule is looked up.
func (uc *Clients) Create(ctx context.Context, in CreateClientInput) (*models.Client, error) {
	if err := validateClientName(&in.Name); err != nil {
		return nil, err
	}
	if err := validatePhone(&in.Phone); err != nil {
		return nil, err
	}

	c := &models.Client{
		Name:       in.Name,
		Phone:      in.Phone,
		ServiceID:  in.ServiceID,
		ScheduleID: in.ScheduleID,
	}
	if err := uc.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]any{"service_id": c.ServiceID, "schedule_id": c.ScheduleID},
	})

	return c, nil
}

func (uc *Clients) List(ctx context.Context, filter domain.ClientFilter) ([]models.Client, error) {
	return uc.repo.ListClients(ctx, filter)
}

func (uc *Clients) Get(ctx context.Context, id uint) (*models.Client, error) {
	return uc.repo.GetClient(ctx, id)
}

func (uc *Clients) Update(ctx context.Context, id uint, patch domain.ClientPatch) (*models.Client, error) {
	if err := validateClientName(patch.Name); err != nil {
		return nil, err
	}
	if err := validatePhone(patch.Phone); err != nil {
		return nil, err
	}

	c, err := uc.repo.UpdateClient(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}

func (uc *Clients) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteClient(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	return nil
}

func validateClientName(name *string) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return httperr.ErrValidation("invalid_name", "Nome do cliente obrigatório.")
	}
	return nil
}

func validatePhone(phone *string) error {
	if phone != nil && strings.TrimSpace(*phone) == "" {
		return httperr.ErrValidation("invalid_phone", "Telefone obrigatório.")
	}
	return nil
}
