package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-scheduler/internal/dto"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/booking-scheduler/internal/usecase/booking"
)

type HistoryHandler struct {
	history *ucBooking.History
	loc     *time.Location
}

func NewHistoryHandler(history *ucBooking.History, loc *time.Location) *HistoryHandler {
	return &HistoryHandler{history: history, loc: loc}
}

// List answers 404 when a matching client points at a deleted schedule.
func (h *HistoryHandler) List(c *gin.Context) {
	filter, err := clientFilter(c, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	records, err := h.history.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.History(records, h.loc))
}
