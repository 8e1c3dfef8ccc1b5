package importers

import (
	"context"
	"fmt"

	"github.com/mrlokans/storyplanner/internal/entities"
)

// ProjectStore creates the container project of an import run.
type ProjectStore interface {
	CreateProject(ctx context.Context, project *entities.Project) error
}

// EntityStore persists batches of planning entities. Each Insert call writes
// one batch and returns the rows as persisted.
type EntityStore interface {
	InsertCharacters(ctx context.Context, rows []entities.Character) ([]entities.Character, error)
	InsertPlotThreads(ctx context.Context, rows []entities.PlotThread) ([]entities.PlotThread, error)
	InsertChapters(ctx context.Context, rows []entities.Chapter) ([]entities.Chapter, error)
	InsertLocations(ctx context.Context, rows []entities.Location) ([]entities.Location, error)
	InsertWorldElements(ctx context.Context, rows []entities.WorldElement) ([]entities.WorldElement, error)
	InsertOutlineNodes(ctx context.Context, rows []entities.OutlineNode) ([]entities.OutlineNode, error)
	InsertLegacyRecords(ctx context.Context, rows []entities.LegacyRecord) error
}

// StoreWriteError is returned when a target store rejects a batch.
type StoreWriteError struct {
	EntityType entities.EntityType
	Err        error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("failed to save %s records: %v", e.EntityType, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

func storeError(entityType entities.EntityType, err error) error {
	return &StoreWriteError{EntityType: entityType, Err: err}
}
