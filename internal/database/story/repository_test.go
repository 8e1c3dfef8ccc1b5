package story

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/importers"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Character{},
		&entities.PlotThread{},
		&entities.Chapter{},
		&entities.Location{},
		&entities.WorldElement{},
		&entities.OutlineNode{},
		&entities.LegacyRecord{},
	)
	require.NoError(t, err)
	return db
}

func provenance(id string) entities.Provenance {
	return entities.Provenance{Source: entities.ProvenanceNotionImport, SourceRecordID: id, ImportedAt: time.Now()}
}

func TestRepository_InsertCharacters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	age := 29

	saved, err := repo.InsertCharacters(context.Background(), []entities.Character{
		{ID: "c1", ProjectID: "p1", Name: "Elena", Role: "protagonist", Age: &age, Abilities: []string{"Swordplay"}, Provenance: provenance("src-1")},
		{ID: "c2", ProjectID: "p1", Name: "Tobin", Provenance: provenance("src-2")},
	})
	require.NoError(t, err)
	assert.Len(t, saved, 2)

	var elena entities.Character
	require.NoError(t, db.First(&elena, "id = ?", "c1").Error)
	assert.Equal(t, "protagonist", elena.Role)
	require.NotNil(t, elena.Age)
	assert.Equal(t, 29, *elena.Age)
	assert.Equal(t, []string{"Swordplay"}, elena.Abilities)
	assert.Equal(t, "src-1", elena.Provenance.SourceRecordID)
	assert.Equal(t, entities.ProvenanceNotionImport, elena.Provenance.Source)
}

func TestRepository_InsertBatchIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	repo.batchSize = 1

	_, err := repo.InsertLocations(context.Background(), []entities.Location{
		{ID: "l1", ProjectID: "p1", Name: "Veyra"},
		{ID: "l1", ProjectID: "p1", Name: "Duplicate"},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.Location{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRepository_InsertEmpty(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	saved, err := repo.InsertChapters(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.NoError(t, repo.InsertLegacyRecords(context.Background(), nil))
}

func TestRepository_InsertLegacyRecords(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	err := repo.InsertLegacyRecords(context.Background(), []entities.LegacyRecord{{
		ID:             "r1",
		ProjectID:      "p1",
		UserID:         "u1",
		CollectionName: "Lore",
		Properties:     map[string]any{"Era": float64(2), "Tags": []any{"old"}},
	}})
	require.NoError(t, err)

	var row entities.LegacyRecord
	require.NoError(t, db.First(&row, "id = ?", "r1").Error)
	assert.Equal(t, float64(2), row.Properties["Era"])
	assert.Equal(t, []any{"old"}, row.Properties["Tags"])
}

func TestRepository_GetOutline(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	act1, act2 := "act-1", "act-2"
	_, err := repo.InsertOutlineNodes(ctx, []entities.OutlineNode{
		{ID: act2, ProjectID: "p1", NodeType: entities.OutlineNodeAct, Title: "Book Two", Order: 2},
		{ID: act1, ProjectID: "p1", NodeType: entities.OutlineNodeAct, Title: "Book One", Order: 1},
	})
	require.NoError(t, err)
	_, err = repo.InsertOutlineNodes(ctx, []entities.OutlineNode{
		{ID: "n2", ProjectID: "p1", ParentID: &act1, NodeType: entities.OutlineNodeChapter, Title: "Two", Order: 2},
		{ID: "n1", ProjectID: "p1", ParentID: &act1, NodeType: entities.OutlineNodeChapter, Title: "One", Order: 1},
		{ID: "n3", ProjectID: "p1", ParentID: &act2, NodeType: entities.OutlineNodeChapter, Title: "Three", Order: 1},
		{ID: "x1", ProjectID: "other", NodeType: entities.OutlineNodeAct, Title: "Elsewhere", Order: 1},
	})
	require.NoError(t, err)

	outline, err := repo.GetOutline(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, outline, 2)

	assert.Equal(t, "Book One", outline[0].Title)
	require.Len(t, outline[0].Chapters, 2)
	assert.Equal(t, "One", outline[0].Chapters[0].Title)
	assert.Equal(t, "Two", outline[0].Chapters[1].Title)

	assert.Equal(t, "Book Two", outline[1].Title)
	require.Len(t, outline[1].Chapters, 1)
}

func TestRepository_GetOutline_Empty(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	outline, err := repo.GetOutline(context.Background(), "none")
	require.NoError(t, err)
	assert.NotNil(t, outline)
	assert.Empty(t, outline)
}

func TestRepository_CountEntities(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.InsertCharacters(ctx, []entities.Character{{ID: "c1", ProjectID: "p1", Name: "Elena"}})
	require.NoError(t, err)
	_, err = repo.InsertLocations(ctx, []entities.Location{
		{ID: "l1", ProjectID: "p1", Name: "Veyra"},
		{ID: "l2", ProjectID: "p2", Name: "Elsewhere"},
	})
	require.NoError(t, err)

	counts, err := repo.CountEntities(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, importers.ImportedCounts{Characters: 1, Locations: 1}, counts)
}

// The gorm store must satisfy the full importer pipeline end to end.
func TestRepository_WithPipeline(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&entities.Project{}))
	repo := NewRepository(db)

	pipeline := importers.NewPipeline(projectStore{db}, repo, nil)
	report, err := pipeline.Run(context.Background(), nil, "Empty", "u1")
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.NotEmpty(t, report.ProjectID)
}

type projectStore struct{ db *gorm.DB }

func (s projectStore) CreateProject(ctx context.Context, p *entities.Project) error {
	return s.db.WithContext(ctx).Create(p).Error
}
