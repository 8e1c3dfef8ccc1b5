package http

import (
	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/auth"
	"github.com/mrlokans/storyplanner/internal/database"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Importer  NotionImporter
	Validator TokenValidator
	Gate      EligibilityChecker
	Database  *database.Database

	// Read side of imported projects
	Projects ProjectReader
	Outlines OutlineReader

	// Audit trail (optional)
	AuditEvents AuditEventReader

	// Task queue client (optional)
	TaskClient         TaskQueue
	AuditRetentionDays int

	// Limits import requests per user (optional)
	ImportLimiter *auth.RateLimiter

	// Application info
	Version string

	Logger *zap.Logger
}
