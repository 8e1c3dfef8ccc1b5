package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/storyplanner/internal/audit"
	dbaudit "github.com/mrlokans/storyplanner/internal/database/audit"
	"github.com/mrlokans/storyplanner/internal/database/profiles"
	"github.com/mrlokans/storyplanner/internal/database/projects"
	"github.com/mrlokans/storyplanner/internal/database/story"
	"github.com/mrlokans/storyplanner/internal/http"
	"github.com/mrlokans/storyplanner/internal/importers"
	"github.com/mrlokans/storyplanner/internal/notion"
	"github.com/mrlokans/storyplanner/internal/scheduler"
	"github.com/mrlokans/storyplanner/internal/services"
	"github.com/mrlokans/storyplanner/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ importers.ProjectStore = (*projects.Repository)(nil)
var _ importers.EntityStore = (*story.Repository)(nil)
var _ services.ProfileReader = (*profiles.Repository)(nil)

var _ http.ProjectReader = (*projects.Repository)(nil)
var _ http.OutlineReader = (*story.Repository)(nil)
var _ http.AuditEventReader = (*audit.Service)(nil)
var _ http.AuditEventReader = (*dbaudit.Repository)(nil)

// =============================================================================
// Remote Workspace
// =============================================================================

var _ services.CollectionLoader = (*notion.Client)(nil)
var _ http.TokenValidator = (*notion.Client)(nil)

// =============================================================================
// Import Pipeline
// =============================================================================

var _ importers.Importer = (*importers.CharacterImporter)(nil)
var _ importers.Importer = (*importers.PlotImporter)(nil)
var _ importers.Importer = (*importers.ChapterImporter)(nil)
var _ importers.Importer = (*importers.LocationImporter)(nil)
var _ importers.Importer = (*importers.WorldElementImporter)(nil)

var _ services.ImportRunner = (*importers.Pipeline)(nil)
var _ services.EligibilityChecker = (*services.EligibilityGate)(nil)
var _ services.ImportAuditor = (*audit.Service)(nil)
var _ http.NotionImporter = (*services.ImportService)(nil)
var _ http.EligibilityChecker = (*services.EligibilityGate)(nil)

// =============================================================================
// Background Jobs
// =============================================================================

var _ tasks.AuditEventCleaner = (*audit.Service)(nil)
var _ http.TaskQueue = (*tasks.Client)(nil)
var _ scheduler.TaskEnqueuer = (*tasks.Client)(nil)
