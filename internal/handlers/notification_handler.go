package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	ucNotification "github.com/BruksfildServices01/booking-scheduler/internal/usecase/notification"
)

// ======================================================
// HANDLER
// ======================================================

type NotificationHandler struct {
	notifications *ucNotification.Notifications
}

func NewNotificationHandler(notifications *ucNotification.Notifications) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// ======================================================
// REQUESTS
// ======================================================

type SendNotificationRequest struct {
	ClientID *uint `json:"client_id"`
}

type NotifyMasterRequest struct {
	ClientID *uint  `json:"client_id"`
	Action   string `json:"action"` // "new", "update", "cancel"
}

type NotificationSettingsRequest struct {
	MasterID              any     `json:"master_id"`
	NotificationsEnabled  *bool   `json:"notifications_enabled"`
	NotificationFrequency *string `json:"notification_frequency"` // "immediate", "daily", "weekly"
}

// ======================================================
// CLIENT REMINDER
// ======================================================

func (h *NotificationHandler) Send(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientID == nil {
		httperr.BadRequest(c, "missing_client_id", "Informe o client_id.")
		return
	}

	if _, err := h.notifications.RemindClient(c.Request.Context(), *req.ClientID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Notificação enviada",
		"client_id": *req.ClientID,
	})
}

// ======================================================
// MASTER
// ======================================================

func (h *NotificationHandler) NotifyMaster(c *gin.Context) {
	var req NotifyMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.ClientID == nil || *req.ClientID == 0 || req.Action == "" {
		httperr.BadRequest(c, "missing_client_id_or_action", "Informe client_id e action.")
		return
	}

	if _, err := h.notifications.NotifyMaster(c.Request.Context(), ucNotification.MasterNotificationInput{
		ClientID: *req.ClientID,
		Action:   req.Action,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Notificação enviada ao mestre",
		"client_id": *req.ClientID,
	})
}

// ======================================================
// SETTINGS
// ======================================================

func (h *NotificationHandler) Settings(c *gin.Context) {
	var req NotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil || isFalsy(req.MasterID) {
		httperr.BadRequest(c, "missing_master_id", "Informe o master_id.")
		return
	}

	s := h.notifications.ApplySettings(
		c.Request.Context(),
		req.MasterID,
		req.NotificationsEnabled,
		req.NotificationFrequency,
	)

	c.JSON(http.StatusOK, gin.H{
		"message":                "Configurações de notificação atualizadas",
		"master_id":              s.MasterID,
		"notifications_enabled":  s.NotificationsEnabled,
		"notification_frequency": s.NotificationFrequency,
	})
}

// isFalsy treats absent, null, zero, empty and false JSON values as missing.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case float64:
		return x == 0
	case bool:
		return !x
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	default:
		return false
	}
}
