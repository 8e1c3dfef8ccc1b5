package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/auth"
	"github.com/mrlokans/storyplanner/internal/logging"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := logging.OrNop(cfg.Logger).Named("http")

	router := gin.New()
	router.Use(requestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(auth.SecurityHeadersMiddleware())
	router.Use(auth.StrictTransportSecurityMiddleware())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api", auth.RequireUser())

	// Import endpoints
	importer := NewNotionImportController(cfg.Importer, cfg.Validator, cfg.Gate, logger)
	importRoutes := []gin.HandlerFunc{importer.Import}
	if cfg.ImportLimiter != nil {
		importRoutes = append([]gin.HandlerFunc{cfg.ImportLimiter.Middleware()}, importRoutes...)
	}
	api.POST("/import/notion", importRoutes...)
	api.POST("/import/notion/validate", importer.ValidateToken)
	api.GET("/import/eligibility", importer.Eligibility)

	// Project read endpoints
	if cfg.Projects != nil && cfg.Outlines != nil {
		projects := NewProjectsController(cfg.Projects, cfg.Outlines, logger)
		api.GET("/projects", projects.ListProjects)
		api.GET("/projects/:id", projects.GetProject)
		api.GET("/projects/:id/outline", projects.GetOutline)
	}

	if cfg.AuditEvents != nil {
		auditController := NewAuditController(cfg.AuditEvents, logger)
		api.GET("/audit", auditController.GetAuditEvents)
	}

	// Task management endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient, cfg.AuditRetentionDays, logger)
		api.GET("/tasks/types", tasksController.ListTaskTypes)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
		api.POST("/tasks/:type/run", tasksController.RunTask)
	}

	return router
}

// requestLogger logs one line per request through zap.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		logger.Info("request", fields...)
	}
}
