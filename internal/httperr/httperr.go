package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond maps a use case error onto the HTTP contract:
// ValidationError → 400, NotFoundError → 404, anything else → 500.
func Respond(c *gin.Context, err error) {
	var ve ValidationError
	if errors.As(err, &ve) {
		BadRequest(c, ve.Code, ve.Message)
		return
	}

	var nf NotFoundError
	if errors.As(err, &nf) {
		NotFound(c, nf.Code(), notFoundMessage(nf.Entity))
		return
	}

	_ = c.Error(err)
	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"err", err,
	)
	Internal(c, "internal_error", "Erro interno.")
}

func notFoundMessage(entity string) string {
	switch entity {
	case "service":
		return "Serviço não encontrado."
	case "schedule":
		return "Slot da agenda não encontrado."
	case "client":
		return "Cliente não encontrado."
	default:
		return "Registro não encontrado."
	}
}
