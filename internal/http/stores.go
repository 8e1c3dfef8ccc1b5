package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/storyplanner/internal/database/story"
	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/importers"
	"github.com/mrlokans/storyplanner/internal/services"
)

// NotionImporter runs a full Notion import. Implemented by *services.ImportService.
type NotionImporter interface {
	Run(ctx context.Context, req services.ImportRequest) (importers.Report, error)
}

// TokenValidator checks an integration token. Implemented by *notion.Client.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) bool
}

// EligibilityChecker is implemented by *services.EligibilityGate.
type EligibilityChecker interface {
	CanImport(ctx context.Context, userID string) bool
}

// ProjectReader is implemented by *projects.Repository.
type ProjectReader interface {
	GetProjectByID(ctx context.Context, id string) (*entities.Project, error)
	ListProjectsForUser(ctx context.Context, userID string) ([]entities.Project, error)
}

// OutlineReader is implemented by *story.Repository.
type OutlineReader interface {
	GetOutline(ctx context.Context, projectID string) ([]story.OutlineAct, error)
	CountEntities(ctx context.Context, projectID string) (importers.ImportedCounts, error)
}

// AuditEventReader is implemented by *audit.Service.
type AuditEventReader interface {
	GetEvents(ctx context.Context, userID string, limit, offset int) ([]entities.AuditEvent, int64, error)
}

// TaskQueue is implemented by *tasks.Client.
type TaskQueue interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}
