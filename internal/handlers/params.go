package handlers

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
	"github.com/BruksfildServices01/booking-scheduler/internal/validators"
)

// pathID reads :id. Non-numeric ids answer 404, the same as an unknown route.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
		return 0, false
	}
	return uint(id), true
}

// bindJSON binds and validates a request body, writing the 400 itself.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

// bindPatch is bindJSON for partial updates: an empty body is an empty patch.
func bindPatch(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	writeBindError(c, err)
	return false
}

func writeBindError(c *gin.Context, err error) {
	if field, ok := validators.FirstField(err); ok {
		httperr.BadRequest(c, "invalid_"+strings.ToLower(field), "Campo ausente ou inválido: "+field+".")
		return
	}
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}

// clientFilter reads the optional date, client_id and service_id query params.
func clientFilter(c *gin.Context, loc *time.Location) (domain.ClientFilter, error) {
	var f domain.ClientFilter

	if raw := c.Query("date"); raw != "" {
		d, err := timezone.ParseISO(raw, loc)
		if err != nil {
			return f, httperr.ErrValidation("invalid_date", "Data inválida.")
		}
		f.Date = &d
	}

	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		if err != nil {
			return f, httperr.ErrValidation("invalid_client_id", "Cliente inválido.")
		}
		v := uint(id)
		f.ClientID = &v
	}

	if raw := c.Query("service_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		if err != nil {
			return f, httperr.ErrValidation("invalid_service_id", "Serviço inválido.")
		}
		v := uint(id)
		f.ServiceID = &v
	}

	return f, nil
}
