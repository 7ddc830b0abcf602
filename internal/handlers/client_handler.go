package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/dto"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/booking-scheduler/internal/usecase/booking"
)

type ClientHandler struct {
	clients *ucBooking.Clients
	loc     *time.Location
}

func NewClientHandler(clients *ucBooking.Clients, loc *time.Location) *ClientHandler {
	return &ClientHandler{clients: clients, loc: loc}
}

type CreateClientRequest struct {
	Name       string `json:"name" binding:"required,notblank"`
	Phone      string `json:"phone" binding:"required,notblank"`
	ServiceID  *uint  `json:"service_id" binding:"required"`
	ScheduleID *uint  `json:"schedule_id" binding:"required"`
}

type UpdateClientRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,notblank"`
	Phone      *string `json:"phone,omitempty" binding:"omitempty,notblank"`
	ServiceID  *uint   `json:"service_id,omitempty"`
	ScheduleID *uint   `json:"schedule_id,omitempty"`
}

// ======================================================
// LIST CLIENTS (filtros opcionais: date, client_id, service_id)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	filter, err := clientFilter(c, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	clients, err := h.clients.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.Clients(clients))
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.clients.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Client(*client))
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clients.Create(c.Request.Context(), ucBooking.CreateClientInput{
		Name:       req.Name,
		Phone:      req.Phone,
		ServiceID:  *req.ServiceID,
		ScheduleID: *req.ScheduleID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Cliente adicionado", client.ID)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if !bindPatch(c, &req) {
		return
	}

	client, err := h.clients.Update(c.Request.Context(), id, domain.ClientPatch{
		Name:       req.Name,
		Phone:      req.Phone,
		ServiceID:  req.ServiceID,
		ScheduleID: req.ScheduleID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Dados do cliente atualizados", client.ID)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Cliente removido", id)
}
