package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"validation", ErrValidation("invalid_name", "Nome obrigatório."), http.StatusBadRequest, "invalid_name", "Nome obrigatório."},
		{"not found", ErrNotFound("client", 3), http.StatusNotFound, "client_not_found", "Cliente não encontrado."},
		{"wrapped not found", fmt.Errorf("history: %w", ErrNotFound("schedule", 9)), http.StatusNotFound, "schedule_not_found", "Slot da agenda não encontrado."},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "internal_error", "Erro interno."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Respond(c, tt.err)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			var body HTTPError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Code != tt.code || body.Message != tt.message {
				t.Fatalf("body = %+v", body)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	wrapped := fmt.Errorf("ctx: %w", ErrValidation("x", "y"))
	if !IsValidation(wrapped) || IsNotFound(wrapped) {
		t.Fatalf("validation predicates wrong for %v", wrapped)
	}
	if !IsNotFound(ErrNotFound("service", 1)) {
		t.Fatal("IsNotFound = false")
	}
}
