// Package story provides database operations for the planning entities
// written by the importer: characters, plot threads, chapters, locations,
// world elements and the outline tree.
package story

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/importers"
)

// DefaultBatchSize keeps each insert statement well under sqlite's
// variable limit.
const DefaultBatchSize = 100

// Repository handles all planning entity database operations.
type Repository struct {
	db        *gorm.DB
	batchSize int
}

// NewRepository creates a new story repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, batchSize: DefaultBatchSize}
}

// insertBatch writes rows in a single transaction so a rejected batch leaves
// nothing behind.
func insertBatch[T any](ctx context.Context, db *gorm.DB, rows []T, batchSize int) ([]T, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&rows, batchSize).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) InsertCharacters(ctx context.Context, rows []entities.Character) ([]entities.Character, error) {
	return insertBatch(ctx, r.db, rows, r.batchSize)
}

func (r *Repository) InsertPlotThreads(ctx context.Context, rows []entities.PlotThread) ([]entities.PlotThread, error) {
	return insertBatch(ctx, r.db, rows, r.batchSize)
}

func (r *Repository) InsertChapters(ctx context.Context, rows []entities.Chapter) ([]entities.Chapter, error) {
	return insertBatch(ctx, r.db, rows, r.batchSize)
}

func (r *Repository) InsertLocations(ctx context.Context, rows []entities.Location) ([]entities.Location, error) {
	return insertBatch(ctx, r.db, rows, r.batchSize)
}

func (r *Repository) InsertWorldElements(ctx context.Context, rows []entities.WorldElement) ([]entities.WorldElement, error) {
	return insertBatch(ctx, r.db, rows, r.batchSize)
}

func (r *Repository) InsertOutlineNodes(ctx context.Context, rows []entities.OutlineNode) ([]entities.OutlineNode, error) {
	return insertBatch(ctx, r.db, rows, r.batchSize)
}

func (r *Repository) InsertLegacyRecords(ctx context.Context, rows []entities.LegacyRecord) error {
	_, err := insertBatch(ctx, r.db, rows, r.batchSize)
	return err
}

// OutlineAct is an act node with its chapter nodes in order.
type OutlineAct struct {
	entities.OutlineNode
	Chapters []entities.OutlineNode `json:"chapters"`
}

// GetOutline returns a project's act → chapter tree ordered by sort order.
func (r *Repository) GetOutline(ctx context.Context, projectID string) ([]OutlineAct, error) {
	var nodes []entities.OutlineNode
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order ASC").
		Order("title ASC").
		Find(&nodes).Error
	if err != nil {
		return nil, err
	}

	acts := make([]OutlineAct, 0)
	index := make(map[string]int)
	for _, n := range nodes {
		if n.NodeType == entities.OutlineNodeAct {
			index[n.ID] = len(acts)
			acts = append(acts, OutlineAct{OutlineNode: n, Chapters: []entities.OutlineNode{}})
		}
	}
	for _, n := range nodes {
		if n.NodeType != entities.OutlineNodeChapter || n.ParentID == nil {
			continue
		}
		if i, ok := index[*n.ParentID]; ok {
			acts[i].Chapters = append(acts[i].Chapters, n)
		}
	}
	return acts, nil
}

// CountEntities returns how many rows of each type belong to a project.
func (r *Repository) CountEntities(ctx context.Context, projectID string) (importers.ImportedCounts, error) {
	var counts importers.ImportedCounts
	targets := []struct {
		model any
		dest  *int
	}{
		{&entities.Character{}, &counts.Characters},
		{&entities.PlotThread{}, &counts.PlotThreads},
		{&entities.Chapter{}, &counts.Chapters},
		{&entities.Location{}, &counts.Locations},
		{&entities.WorldElement{}, &counts.WorldElements},
		{&entities.OutlineNode{}, &counts.OutlineNodes},
	}

	db := r.db.WithContext(ctx)
	for _, t := range targets {
		var n int64
		if err := db.Model(t.model).Where("project_id = ?", projectID).Count(&n).Error; err != nil {
			return counts, err
		}
		*t.dest = int(n)
	}
	return counts, nil
}

// Compile-time interface check
var _ importers.EntityStore = (*Repository)(nil)
