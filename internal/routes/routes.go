package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	"github.com/BruksfildServices01/booking-scheduler/internal/clientlink"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/handlers"
	"github.com/BruksfildServices01/booking-scheduler/internal/middleware"
	"github.com/BruksfildServices01/booking-scheduler/internal/notify"
	ucBooking "github.com/BruksfildServices01/booking-scheduler/internal/usecase/booking"
	ucNotification "github.com/BruksfildServices01/booking-scheduler/internal/usecase/notification"
)

// Deps are the singletons the routes are built from. AuditReader may be
// nil, in which case /admin/audit-logs is not mounted. An empty
// CORSOrigins allows every origin.
type Deps struct {
	Store       domain.Store
	Audit       audit.Recorder
	AuditReader handlers.AuditReader
	Notifier    notify.Notifier
	Links       *clientlink.Issuer
	Location    *time.Location
	Logger      *slog.Logger
	CORSOrigins []string
}

func NewEngine(deps Deps) *gin.Engine {
	r := gin.New()
	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(deps.Logger),
		middleware.CORSMiddleware(deps.CORSOrigins),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	servicesUC := ucBooking.NewServices(deps.Store, deps.Audit)
	schedulesUC := ucBooking.NewSchedules(deps.Store, deps.Audit)
	clientsUC := ucBooking.NewClients(deps.Store, deps.Audit)
	historyUC := ucBooking.NewHistory(deps.Store)

	notificationsUC := ucNotification.NewNotifications(
		deps.Store,
		deps.Notifier,
		deps.Links,
		deps.Audit,
		deps.Location,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(servicesUC)
	scheduleHandler := handlers.NewScheduleHandler(schedulesUC, deps.Location)
	clientHandler := handlers.NewClientHandler(clientsUC, deps.Location)
	historyHandler := handlers.NewHistoryHandler(historyUC, deps.Location)
	notificationHandler := handlers.NewNotificationHandler(notificationsUC)
	adminHandler := handlers.NewAdminHandler(notificationsUC)

	r.GET("/", handlers.Index)
	r.GET("/health", handlers.Health)

	// ------------------------------
	// SERVICES
	// ------------------------------
	r.GET("/services", serviceHandler.List)
	r.POST("/services", serviceHandler.Create)
	r.GET("/services/:id", serviceHandler.Get)
	r.PUT("/services/:id", serviceHandler.Update)
	r.DELETE("/services/:id", serviceHandler.Delete)

	// ------------------------------
	// SCHEDULE
	// ------------------------------
	r.GET("/schedule", scheduleHandler.List)
	r.POST("/schedule", scheduleHandler.Create)
	r.GET("/schedule/:id", scheduleHandler.Get)
	r.PUT("/schedule/:id", scheduleHandler.Update)
	r.DELETE("/schedule/:id", scheduleHandler.Delete)

	// ------------------------------
	// CLIENTS
	// ------------------------------
	r.GET("/clients", clientHandler.List)
	r.POST("/clients", clientHandler.Create)
	r.GET("/clients/:id", clientHandler.Get)
	r.PUT("/clients/:id", clientHandler.Update)
	r.DELETE("/clients/:id", clientHandler.Delete)

	// ------------------------------
	// NOTIFICATIONS
	// ------------------------------
	r.POST("/notifications", notificationHandler.Send)
	r.POST("/notify/master", notificationHandler.NotifyMaster)
	r.POST("/notify/settings", notificationHandler.Settings)

	// ------------------------------
	// ADMIN
	// ------------------------------
	admin := r.Group("/admin")
	{
		admin.POST("/setup", adminHandler.Setup)
		admin.GET("/generate-link", adminHandler.GenerateLink)
		admin.GET("/history", historyHandler.List)

		if deps.AuditReader != nil {
			admin.GET("/audit-logs", handlers.NewAuditLogsHandler(deps.AuditReader).List)
		}
	}
}
