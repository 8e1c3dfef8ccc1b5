package importers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/logging"
)

// DefaultProjectName is used when the caller does not name the project.
const DefaultProjectName = "Notion Import"

// Pipeline handles the common import workflow:
// create project → import each collection → legacy copy.
//
// Collections are imported one after another. A failing collection is
// recorded in the report and the run continues with the next one.
type Pipeline struct {
	projects  ProjectStore
	store     EntityStore
	importers map[CollectionType]Importer
	logger    *zap.Logger
	now       func() time.Time
}

// NewPipeline creates a pipeline with the default importer for every
// collection type.
func NewPipeline(projects ProjectStore, store EntityStore, logger *zap.Logger) *Pipeline {
	logger = logging.OrNop(logger).Named("importers")
	outline := NewOutlineBuilder(store, logger)

	return &Pipeline{
		projects: projects,
		store:    store,
		importers: map[CollectionType]Importer{
			TypeCharacter: NewCharacterImporter(store),
			TypePlot:      NewPlotImporter(store),
			TypeChapter:   NewChapterImporter(store, outline),
			TypeLocation:  NewLocationImporter(store),
			TypeUnknown:   NewWorldElementImporter(store),
		},
		logger: logger,
		now:    time.Now,
	}
}

// Run imports collections into a new project owned by userID. preErrors are
// failures the caller hit before the run (unresolvable references, fetch
// errors) and are listed first in the report.
//
// The returned error is non-nil only when the project cannot be created.
func (p *Pipeline) Run(ctx context.Context, collections []Collection, projectName, userID string, preErrors ...string) (Report, error) {
	report := NewReport()
	report.Errors = append(report.Errors, preErrors...)

	name := strings.TrimSpace(projectName)
	if name == "" {
		name = DefaultProjectName
	}

	project := &entities.Project{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Source: entities.ProvenanceNotionImport,
	}
	if err := p.projects.CreateProject(ctx, project); err != nil {
		return report, fmt.Errorf("failed to create project: %w", err)
	}
	report.ProjectID = project.ID

	mapper := NewMapper(project.ID, p.now().UTC())

	for _, col := range collections {
		importer := p.importerFor(col.Type)
		outcome, err := importer.Import(ctx, mapper, col)
		report.apply(col, outcome, err)

		if err != nil {
			p.logger.Warn("collection import failed",
				zap.String("project", project.ID),
				zap.String("collection", col.Name),
				zap.String("type", string(col.Type)),
				zap.Error(err))
			continue
		}
		p.logger.Info("collection imported",
			zap.String("project", project.ID),
			zap.String("collection", col.Name),
			zap.String("type", string(col.Type)),
			zap.Int("records", len(col.Records)),
			zap.Int("entities", outcome.Imported.Total()))
	}

	p.writeLegacyRecords(ctx, mapper, collections, userID)

	report.Finalize()
	return report, nil
}

func (p *Pipeline) importerFor(t CollectionType) Importer {
	if imp, ok := p.importers[t]; ok {
		return imp
	}
	return p.importers[TypeUnknown]
}

// writeLegacyRecords copies every source record into the flat legacy table.
// Failures never reach the report.
func (p *Pipeline) writeLegacyRecords(ctx context.Context, m *Mapper, collections []Collection, userID string) {
	var rows []entities.LegacyRecord
	for _, col := range collections {
		for _, rec := range col.Records {
			rows = append(rows, m.LegacyRecord(col, rec, userID))
		}
	}
	if len(rows) == 0 {
		return
	}

	if err := p.store.InsertLegacyRecords(ctx, rows); err != nil {
		p.logger.Warn("legacy record copy failed",
			zap.String("project", m.ProjectID()),
			zap.Int("records", len(rows)),
			zap.Error(err))
	}
}
