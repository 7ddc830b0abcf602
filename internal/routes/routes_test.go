package routes

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	"github.com/BruksfildServices01/booking-scheduler/internal/clientlink"
	"github.com/BruksfildServices01/booking-scheduler/internal/config"
	"github.com/BruksfildServices01/booking-scheduler/internal/db"
	"github.com/BruksfildServices01/booking-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/booking-scheduler/internal/middleware"
	"github.com/BruksfildServices01/booking-scheduler/internal/notify"
	"github.com/BruksfildServices01/booking-scheduler/internal/validators"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := validators.Register(); err != nil {
		t.Fatalf("validators.Register: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewEngine(Deps{
		Store:    repository.NewBookingMemoryRepository(),
		Audit:    audit.Nop{},
		Notifier: notify.NewLogNotifier(logger),
		Links:    clientlink.NewIssuer("https://example.com/client", "test-secret", time.Hour),
		Location: time.UTC,
		Logger:   logger,
	})
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}

func expectErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	expectStatus(t, w, status)
	body := decode[map[string]any](t, w)
	if body["error_code"] != code {
		t.Fatalf("error_code = %v, want %q", body["error_code"], code)
	}
}

// seed creates Haircut, a 2024-01-01T10:00:00 slot and Anna booked into it.
func seed(t *testing.T, r http.Handler) {
	t.Helper()
	expectStatus(t, do(t, r, http.MethodPost, "/services", `{"name":"Haircut","price":20}`), http.StatusCreated)
	expectStatus(t, do(t, r, http.MethodPost, "/schedule", `{"date":"2024-01-01T10:00:00","service_id":1}`), http.StatusCreated)
	expectStatus(t, do(t, r, http.MethodPost, "/clients", `{"name":"Anna","phone":"123","service_id":1,"schedule_id":1}`), http.StatusCreated)
}

func TestIndexAndHealth(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/", "")
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != "Telegram Mini App para agendamento de clientes" {
		t.Fatalf("index body = %q", w.Body.String())
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatalf("missing %s header", middleware.RequestIDHeader)
	}

	expectStatus(t, do(t, r, http.MethodGet, "/health", ""), http.StatusOK)
}

func TestServices_CRUD(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/services", `{"name":"Haircut","price":20}`)
	expectStatus(t, w, http.StatusCreated)
	created := decode[map[string]any](t, w)
	if created["message"] != "Serviço adicionado" || created["id"] != float64(1) {
		t.Fatalf("create body = %v", created)
	}

	w = do(t, r, http.MethodGet, "/services", "")
	expectStatus(t, w, http.StatusOK)
	list := decode[[]map[string]any](t, w)
	if len(list) != 1 || list[0]["name"] != "Haircut" || list[0]["price"] != float64(20) {
		t.Fatalf("list = %v", list)
	}

	w = do(t, r, http.MethodPut, "/services/1", `{"price":25}`)
	expectStatus(t, w, http.StatusOK)
	if decode[map[string]any](t, w)["message"] != "Serviço atualizado" {
		t.Fatalf("update body = %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/services/1", "")
	expectStatus(t, w, http.StatusOK)
	got := decode[map[string]any](t, w)
	if got["name"] != "Haircut" || got["price"] != float64(25) {
		t.Fatalf("get = %v", got)
	}

	expectStatus(t, do(t, r, http.MethodDelete, "/services/1", ""), http.StatusOK)
	expectErrorCode(t, do(t, r, http.MethodGet, "/services/1", ""), http.StatusNotFound, "service_not_found")

	w = do(t, r, http.MethodGet, "/services", "")
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Fatalf("empty list body = %s", body)
	}
}

func TestServices_Errors(t *testing.T) {
	r := newTestEngine(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"missing price", http.MethodPost, "/services", `{"name":"Haircut"}`, http.StatusBadRequest, "invalid_price"},
		{"missing name", http.MethodPost, "/services", `{"price":10}`, http.StatusBadRequest, "invalid_name"},
		{"blank name", http.MethodPost, "/services", `{"name":"  ","price":10}`, http.StatusBadRequest, "invalid_name"},
		{"negative price", http.MethodPost, "/services", `{"name":"Haircut","price":-1}`, http.StatusBadRequest, "invalid_price"},
		{"malformed json", http.MethodPost, "/services", `{"name":`, http.StatusBadRequest, "invalid_request"},
		{"update unknown", http.MethodPut, "/services/999", `{"name":"x"}`, http.StatusNotFound, "service_not_found"},
		{"delete unknown", http.MethodDelete, "/services/999", "", http.StatusNotFound, "service_not_found"},
		{"non numeric id", http.MethodGet, "/services/abc", "", http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectErrorCode(t, do(t, r, tt.method, tt.path, tt.body), tt.status, tt.code)
		})
	}
}

func TestServices_EmptyUpdateBody(t *testing.T) {
	r := newTestEngine(t)
	expectStatus(t, do(t, r, http.MethodPost, "/services", `{"name":"Haircut","price":20}`), http.StatusCreated)

	expectStatus(t, do(t, r, http.MethodPut, "/services/1", ""), http.StatusOK)
	expectStatus(t, do(t, r, http.MethodPut, "/services/1", "{}"), http.StatusOK)

	got := decode[map[string]any](t, do(t, r, http.MethodGet, "/services/1", ""))
	if got["name"] != "Haircut" || got["price"] != float64(20) {
		t.Fatalf("service changed by empty update: %v", got)
	}
}

func TestSchedule_CRUD(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/schedule", `{"date":"2024-01-01T10:00:00","service_id":1}`)
	expectStatus(t, w, http.StatusCreated)
	if decode[map[string]any](t, w)["message"] != "Slot da agenda adicionado" {
		t.Fatalf("create body = %s", w.Body.String())
	}

	list := decode[[]map[string]any](t, do(t, r, http.MethodGet, "/schedule", ""))
	if len(list) != 1 {
		t.Fatalf("list = %v", list)
	}
	if list[0]["date"] != "2024-01-01T10:00:00" || list[0]["service_id"] != float64(1) || list[0]["is_available"] != true {
		t.Fatalf("slot = %v", list[0])
	}

	expectStatus(t, do(t, r, http.MethodPut, "/schedule/1", `{"date":"2024-01-02T09:30:00","is_available":false}`), http.StatusOK)

	got := decode[map[string]any](t, do(t, r, http.MethodGet, "/schedule/1", ""))
	if got["date"] != "2024-01-02T09:30:00" || got["is_available"] != false {
		t.Fatalf("updated slot = %v", got)
	}

	expectStatus(t, do(t, r, http.MethodDelete, "/schedule/1", ""), http.StatusOK)
	expectErrorCode(t, do(t, r, http.MethodDelete, "/schedule/1", ""), http.StatusNotFound, "schedule_not_found")
}

func TestSchedule_Errors(t *testing.T) {
	r := newTestEngine(t)

	expectErrorCode(t, do(t, r, http.MethodPost, "/schedule", `{"date":"amanhã","service_id":1}`), http.StatusBadRequest, "invalid_date")
	expectErrorCode(t, do(t, r, http.MethodPost, "/schedule", `{"service_id":1}`), http.StatusBadRequest, "invalid_date")
	expectErrorCode(t, do(t, r, http.MethodPost, "/schedule", `{"date":"2024-01-01"}`), http.StatusBadRequest, "invalid_service_id")
	expectErrorCode(t, do(t, r, http.MethodPut, "/schedule/5", `{"is_available":true}`), http.StatusNotFound, "schedule_not_found")
}

func TestClients_CRUDAndFilters(t *testing.T) {
	r := newTestEngine(t)
	seed(t, r)

	list := decode[[]map[string]any](t, do(t, r, http.MethodGet, "/clients", ""))
	if len(list) != 1 || list[0]["name"] != "Anna" || list[0]["schedule_id"] != float64(1) {
		t.Fatalf("list = %v", list)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"?date=2024-01-01T10:00:00", 1},
		{"?date=2024-01-02T10:00:00", 0},
		{"?client_id=1", 1},
		{"?client_id=2", 0},
		{"?service_id=1&client_id=1", 1},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := do(t, r, http.MethodGet, "/clients"+tt.query, "")
			expectStatus(t, w, http.StatusOK)
			if got := decode[[]map[string]any](t, w); len(got) != tt.want {
				t.Fatalf("got %d clients, want %d", len(got), tt.want)
			}
		})
	}

	expectErrorCode(t, do(t, r, http.MethodGet, "/clients?client_id=abc", ""), http.StatusBadRequest, "invalid_client_id")
	expectErrorCode(t, do(t, r, http.MethodGet, "/clients?date=nope", ""), http.StatusBadRequest, "invalid_date")

	w := do(t, r, http.MethodPut, "/clients/1", `{"phone":"999"}`)
	expectStatus(t, w, http.StatusOK)
	if decode[map[string]any](t, w)["message"] != "Dados do cliente atualizados" {
		t.Fatalf("update body = %s", w.Body.String())
	}
	if got := decode[map[string]any](t, do(t, r, http.MethodGet, "/clients/1", "")); got["phone"] != "999" || got["name"] != "Anna" {
		t.Fatalf("client = %v", got)
	}

	expectErrorCode(t, do(t, r, http.MethodPost, "/clients", `{"name":"Bob","phone":"1","service_id":1}`), http.StatusBadRequest, "invalid_schedule_id")

	expectStatus(t, do(t, r, http.MethodDelete, "/clients/1", ""), http.StatusOK)
	expectErrorCode(t, do(t, r, http.MethodGet, "/clients/1", ""), http.StatusNotFound, "client_not_found")
}

func TestHistory(t *testing.T) {
	r := newTestEngine(t)
	seed(t, r)

	all := decode[[]map[string]any](t, do(t, r, http.MethodGet, "/admin/history", ""))
	if len(all) != 1 || all[0]["date"] != "2024-01-01T10:00:00" {
		t.Fatalf("unfiltered history = %v", all)
	}

	w := do(t, r, http.MethodGet, "/admin/history?client_id=1", "")
	expectStatus(t, w, http.StatusOK)
	records := decode[[]map[string]any](t, w)
	if len(records) != 1 {
		t.Fatalf("records = %v", records)
	}
	if records[0]["name"] != "Anna" || records[0]["date"] != "2024-01-01T10:00:00" {
		t.Fatalf("record = %v", records[0])
	}

	w = do(t, r, http.MethodGet, "/admin/history?client_id=2", "")
	expectStatus(t, w, http.StatusOK)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Fatalf("body = %s", body)
	}

	// deleting the slot leaves Anna pointing at nothing
	expectStatus(t, do(t, r, http.MethodDelete, "/schedule/1", ""), http.StatusOK)
	expectErrorCode(t, do(t, r, http.MethodGet, "/admin/history", ""), http.StatusNotFound, "schedule_not_found")
}

func TestNotifications(t *testing.T) {
	r := newTestEngine(t)
	seed(t, r)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"send without client", "/notifications", `{}`, http.StatusBadRequest, "missing_client_id"},
		{"send unknown client", "/notifications", `{"client_id":99}`, http.StatusNotFound, "client_not_found"},
		{"master without action", "/notify/master", `{"client_id":1}`, http.StatusBadRequest, "missing_client_id_or_action"},
		{"master zero client", "/notify/master", `{"client_id":0,"action":"new"}`, http.StatusBadRequest, "missing_client_id_or_action"},
		{"settings without master", "/notify/settings", `{"notifications_enabled":false}`, http.StatusBadRequest, "missing_master_id"},
		{"settings zero master", "/notify/settings", `{"master_id":0}`, http.StatusBadRequest, "missing_master_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectErrorCode(t, do(t, r, http.MethodPost, tt.path, tt.body), tt.status, tt.code)
		})
	}

	w := do(t, r, http.MethodPost, "/notifications", `{"client_id":1}`)
	expectStatus(t, w, http.StatusOK)
	if decode[map[string]any](t, w)["message"] != "Notificação enviada" {
		t.Fatalf("send body = %s", w.Body.String())
	}

	expectStatus(t, do(t, r, http.MethodPost, "/notify/master", `{"client_id":1,"action":"new"}`), http.StatusOK)

	w = do(t, r, http.MethodPost, "/notify/settings", `{"master_id":"m1"}`)
	expectStatus(t, w, http.StatusOK)
	settings := decode[map[string]any](t, w)
	if settings["master_id"] != "m1" || settings["notifications_enabled"] != true || settings["notification_frequency"] != "immediate" {
		t.Fatalf("settings = %v", settings)
	}
}

func TestAdmin(t *testing.T) {
	r := newTestEngine(t)

	expectErrorCode(t, do(t, r, http.MethodPost, "/admin/setup", `{}`), http.StatusBadRequest, "missing_telegram_id")

	w := do(t, r, http.MethodPost, "/admin/setup", `{"telegram_id":12345}`)
	expectStatus(t, w, http.StatusOK)
	if decode[map[string]any](t, w)["telegram_id"] != float64(12345) {
		t.Fatalf("setup body = %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/admin/generate-link", "")
	expectStatus(t, w, http.StatusOK)
	link, _ := decode[map[string]any](t, w)["client_link"].(string)
	if !strings.HasPrefix(link, "https://example.com/client?token=") {
		t.Fatalf("client_link = %q", link)
	}

	// no reader configured
	expectStatus(t, do(t, r, http.MethodGet, "/admin/audit-logs", ""), http.StatusNotFound)
}

// syncRecorder writes audit events inline so the test can read them back.
type syncRecorder struct {
	t *testing.T
	l *audit.Logger
}

func (r syncRecorder) Dispatch(ev audit.Event) {
	if err := r.l.Log(context.Background(), ev); err != nil {
		r.t.Errorf("audit log: %v", err)
	}
}

func TestAuditLogs_WithSQLStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if err := validators.Register(); err != nil {
		t.Fatal(err)
	}

	gdb, err := db.Open(&config.Config{
		DBDriver:       config.DriverSQLite,
		DBUrl:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store := repository.NewBookingGormRepository(gdb)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auditLogger := audit.New(gdb)

	r := NewEngine(Deps{
		Store:       store,
		Audit:       syncRecorder{t: t, l: auditLogger},
		AuditReader: auditLogger,
		Notifier:    notify.NewLogNotifier(logger),
		Links:       clientlink.NewIssuer("https://example.com/client", "test-secret", time.Hour),
		Location:    time.UTC,
		Logger:      logger,
	})

	seed(t, r)
	expectStatus(t, do(t, r, http.MethodPut, "/services/1", `{"price":30}`), http.StatusOK)

	w := do(t, r, http.MethodGet, "/admin/audit-logs?entity=service", "")
	expectStatus(t, w, http.StatusOK)

	body := decode[struct {
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
		Logs  []struct {
			Action string `json:"action"`
		} `json:"logs"`
	}](t, w)

	if body.Limit != 50 || body.Total != 2 || len(body.Logs) != 2 {
		t.Fatalf("body = %+v", body)
	}
	if body.Logs[0].Action != "service_updated" {
		t.Fatalf("newest action = %q", body.Logs[0].Action)
	}

	w = do(t, r, http.MethodGet, "/admin/history?client_id=1", "")
	expectStatus(t, w, http.StatusOK)
	if records := decode[[]map[string]any](t, w); len(records) != 1 || records[0]["date"] != "2024-01-01T10:00:00" {
		t.Fatalf("history = %v", records)
	}
}
