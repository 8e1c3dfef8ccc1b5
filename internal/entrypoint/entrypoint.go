package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/auth"
	"github.com/mrlokans/storyplanner/internal/config"
	http_controllers "github.com/mrlokans/storyplanner/internal/http"
	"github.com/mrlokans/storyplanner/internal/logging"
	"github.com/mrlokans/storyplanner/internal/scheduler"
	"github.com/mrlokans/storyplanner/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, logger *zap.Logger, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server", zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	// Background work stops after in-flight requests have drained.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	logger.Info("server exiting")
}

func Run(cfg *config.Config, version string) {
	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting storyplanner", zap.String("version", version))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := NewApp(cfg, logger, nil)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("error closing application", zap.Error(err))
		}
	}()

	// Initialize task queue and the audit retention schedule if enabled
	var taskClient *tasks.Client
	var cleanupScheduler *scheduler.AuditCleanupScheduler
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	if cfg.Tasks.Enabled {
		taskCfg := tasks.FromAppConfig(cfg)
		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg, logger)
		if err != nil {
			logger.Fatal("failed to initialize task queue", zap.Error(err))
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				logger.Error("error closing task client", zap.Error(err))
			}
		}()

		taskClient.Register(tasks.NewCleanupAuditEventsQueue(app.Audit, logger))
		go taskClient.Start(bgCtx)

		cleanupScheduler = scheduler.NewAuditCleanupScheduler(taskClient, cfg.Audit.CleanupSchedule, taskCfg.RetentionDays, logger)
		if err := cleanupScheduler.Start(bgCtx); err != nil {
			logger.Error("audit cleanup scheduler not started", zap.Error(err))
		}
	} else {
		logger.Info("task queue disabled, audit events will not be cleaned up")
	}

	limiter := auth.NewRateLimiter(auth.DefaultRateLimitConfig())
	defer limiter.Stop()

	routerCfg := http_controllers.RouterConfig{
		Importer:      app.Imports,
		Validator:     app.Notion,
		Gate:          app.Gate,
		Database:      app.DB,
		Projects:      app.Projects,
		Outlines:      app.Story,
		AuditEvents:   app.Audit,
		ImportLimiter: limiter,
		Version:       version,
		Logger:        logger,
	}
	if taskClient != nil {
		routerCfg.TaskClient = taskClient
		routerCfg.AuditRetentionDays = tasks.FromAppConfig(cfg).RetentionDays
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if cleanupScheduler != nil {
			cleanupScheduler.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
		}
		bgCancel()
	}

	Serve(router, cfg, logger, onShutdown)
}
