package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateServiceInput struct {
	Name  string
	Price float64
}

// ======================================================
// USE CASE
// ======================================================

type Services struct {
	repo  domain.Store
	audit audit.Recorder
}

func NewServices(repo domain.Store, audit audit.Recorder) *Services {
	return &Services{repo: repo, audit: audit}
}

func (uc *Services) Create(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	if err := validateServiceName(&in.Name); err != nil {
		return nil, err
	}
	if err := validatePrice(&in.Price); err != nil {
		return nil, err
	}

	s := &models.Service{
		Name:  in.Name,
		Price: in.Price,
	}
	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]any{"name": s.Name, "price": s.Price},
	})

	return s, nil
}

func (uc *Services) List(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx)
}

func (uc *Services) Get(ctx context.Context, id uint) (*models.Service, error) {
	return uc.repo.GetService(ctx, id)
}

func (uc *Services) Update(ctx context.Context, id uint, patch domain.ServicePatch) (*models.Service, error) {
	if err := validateServiceName(patch.Name); err != nil {
		return nil, err
	}
	if err := validatePrice(patch.Price); err != nil {
		return nil, err
	}

	s, err := uc.repo.UpdateService(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &s.ID,
	})

	return s, nil
}

func (uc *Services) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteService(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	return nil
}

// --------------------------------------------------
// Validations (nil = field absent from a patch)
// --------------------------------------------------

func validateServiceName(name *string) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return httperr.ErrValidation("invalid_name", "Nome do serviço obrigatório.")
	}
	return nil
}

func validatePrice(price *float64) error {
	if price != nil && *price < 0 {
		return httperr.ErrValidation("invalid_price", "Preço não pode ser negativo.")
	}
	return nil
}
