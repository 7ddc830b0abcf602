package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	ucNotification "github.com/BruksfildServices01/booking-scheduler/internal/usecase/notification"
)

type AdminHandler struct {
	notifications *ucNotification.Notifications
}

func NewAdminHandler(notifications *ucNotification.Notifications) *AdminHandler {
	return &AdminHandler{notifications: notifications}
}

type SetupAdminRequest struct {
	TelegramID any `json:"telegram_id"`
}

func (h *AdminHandler) Setup(c *gin.Context) {
	var req SetupAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil || isFalsy(req.TelegramID) {
		httperr.BadRequest(c, "missing_telegram_id", "Informe o telegram_id.")
		return
	}

	h.notifications.SetupAdmin(c.Request.Context(), req.TelegramID)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Administrador definido",
		"telegram_id": req.TelegramID,
	})
}

func (h *AdminHandler) GenerateLink(c *gin.Context) {
	link, err := h.notifications.GenerateClientLink(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Link gerado",
		"client_link": link.URL,
		"expires_at":  link.ExpiresAt.UTC(),
	})
}
