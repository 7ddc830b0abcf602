package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/dto"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/booking-scheduler/internal/usecase/booking"
)

type ServiceHandler struct {
	services *ucBooking.Services
}

func NewServiceHandler(services *ucBooking.Services) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name  string   `json:"name" binding:"required,notblank"`
	Price *float64 `json:"price" binding:"required,gte=0"`
}

type UpdateServiceRequest struct {
	Name  *string  `json:"name,omitempty" binding:"omitempty,notblank"`
	Price *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.Services(services))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.ServiceDTO{ID: s.ID, Name: s.Name, Price: s.Price})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.services.Create(c.Request.Context(), ucBooking.CreateServiceInput{
		Name:  req.Name,
		Price: *req.Price,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Serviço adicionado", s.ID)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bindPatch(c, &req) {
		return
	}

	s, err := h.services.Update(c.Request.Context(), id, domain.ServicePatch{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Serviço atualizado", s.ID)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Serviço removido", id)
}
