package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	"github.com/BruksfildServices01/booking-scheduler/internal/clientlink"
	"github.com/BruksfildServices01/booking-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/booking-scheduler/internal/db"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/booking-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/booking-scheduler/internal/logging"
	"github.com/BruksfildServices01/booking-scheduler/internal/notify"
	"github.com/BruksfildServices01/booking-scheduler/internal/routes"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
	"github.com/BruksfildServices01/booking-scheduler/internal/validators"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger := logging.New("booking-api", cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := validators.Register(); err != nil {
		return err
	}

	// ======================================================
	// STORE + AUDIT
	// ======================================================
	var (
		store       domain.Store
		recorder    audit.Recorder = audit.Nop{}
		auditReader handlers.AuditReader
		dispatcher  *audit.Dispatcher
	)

	if cfg.DBDriver == config.DriverMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		store = infraRepo.NewBookingMemoryRepository()
	} else {
		db, err := dbpkg.Open(cfg)
		if err != nil {
			return err
		}
		store = infraRepo.NewBookingGormRepository(db)

		auditLogger := audit.New(db)
		dispatcher = audit.NewDispatcher(auditLogger, logger, cfg.AuditQueueSize)
		recorder = dispatcher
		auditReader = auditLogger
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)

	engine := routes.NewEngine(routes.Deps{
		Store:       store,
		Audit:       recorder,
		AuditReader: auditReader,
		Notifier:    notify.NewLogNotifier(logger),
		Links:       clientlink.NewIssuer(cfg.ClientAppURL, cfg.LinkSecret, cfg.LinkTTL),
		Location:    timezone.Location(cfg.Timezone),
		Logger:      logger,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			_ = store.Close()
			return err
		}
	}

	// ======================================================
	// SHUTDOWN
	// ======================================================
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}

	if dispatcher != nil {
		if err := dispatcher.Close(shutdownCtx); err != nil {
			logger.Error("audit drain incomplete", "err", err)
		}
	}

	if err := store.Close(); err != nil {
		logger.Error("store close error", "err", err)
	}

	logger.Info("server stopped")
	return nil
}
