package entrypoint

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/audit"
	"github.com/mrlokans/storyplanner/internal/config"
	"github.com/mrlokans/storyplanner/internal/database"
	dbaudit "github.com/mrlokans/storyplanner/internal/database/audit"
	"github.com/mrlokans/storyplanner/internal/database/profiles"
	"github.com/mrlokans/storyplanner/internal/database/projects"
	"github.com/mrlokans/storyplanner/internal/database/story"
	"github.com/mrlokans/storyplanner/internal/importers"
	"github.com/mrlokans/storyplanner/internal/logging"
	"github.com/mrlokans/storyplanner/internal/notion"
	"github.com/mrlokans/storyplanner/internal/services"
)

// App holds the components shared by the HTTP server and the CLI.
type App struct {
	DB       *database.Database
	Projects *projects.Repository
	Story    *story.Repository
	Profiles *profiles.Repository
	Audit    *audit.Service
	Notion   *notion.Client
	Pipeline *importers.Pipeline
	Gate     *services.EligibilityGate
	Imports  *services.ImportService

	logger *zap.Logger
}

// NewApp opens the database and wires the import stack.
// gate overrides the subscription check when non-nil.
func NewApp(cfg *config.Config, logger *zap.Logger, gate services.EligibilityChecker) (*App, error) {
	logger = logging.OrNop(logger)

	db, err := database.NewDatabase(cfg.Database.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		DB:       db,
		Projects: projects.NewRepository(db.DB),
		Story:    story.NewRepository(db.DB),
		Profiles: profiles.NewRepository(db.DB),
		Notion:   notion.NewClient(cfg.Notion, logger),
		logger:   logger,
	}
	app.Audit = audit.NewService(dbaudit.NewRepository(db.DB), logger)
	app.Pipeline = importers.NewPipeline(app.Projects, app.Story, logger)
	app.Gate = services.NewEligibilityGate(app.Profiles, logger)

	if gate == nil {
		gate = app.Gate
	}
	app.Imports = services.NewImportService(gate, app.Notion, app.Pipeline, app.Audit, logger)

	return app, nil
}

// Close flushes pending audit writes and closes the database.
func (a *App) Close() error {
	a.Audit.Wait()
	if err := a.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
