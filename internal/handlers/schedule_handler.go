package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/dto"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/booking-scheduler/internal/usecase/booking"
)

type ScheduleHandler struct {
	schedules *ucBooking.Schedules
	loc       *time.Location
}

func NewScheduleHandler(schedules *ucBooking.Schedules, loc *time.Location) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules, loc: loc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateScheduleRequest struct {
	Date        string `json:"date" binding:"required,isodate"` // ISO-8601
	ServiceID   *uint  `json:"service_id" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
}

type UpdateScheduleRequest struct {
	Date        *string `json:"date,omitempty" binding:"omitempty,isodate"`
	ServiceID   *uint   `json:"service_id,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.schedules.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.Schedules(schedules, h.loc))
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s, err := h.schedules.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Schedules([]models.Schedule{*s}, h.loc)[0])
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	date, err := timezone.ParseISO(req.Date, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	s, err := h.schedules.Create(c.Request.Context(), ucBooking.CreateScheduleInput{
		Date:        date,
		ServiceID:   *req.ServiceID,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Slot da agenda adicionado", s.ID)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if !bindPatch(c, &req) {
		return
	}

	patch := domain.SchedulePatch{
		ServiceID:   req.ServiceID,
		IsAvailable: req.IsAvailable,
	}
	if req.Date != nil {
		date, err := timezone.ParseISO(*req.Date, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		patch.Date = &date
	}

	s, err := h.schedules.Update(c.Request.Context(), id, patch)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Slot da agenda atualizado", s.ID)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.schedules.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Slot da agenda removido", id)
}
