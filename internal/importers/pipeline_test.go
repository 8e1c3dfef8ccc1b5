package importers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/notion"
)

func newTestPipeline(projects *fakeProjects, store *fakeStore) *Pipeline {
	p := NewPipeline(projects, store, zap.NewNop())
	p.now = func() time.Time { return testImportedAt }
	return p
}

func TestPipeline_Run_EndToEnd(t *testing.T) {
	projects := &fakeProjects{}
	store := newFakeStore()
	pipeline := newTestPipeline(projects, store)

	characters := collection("Characters", record("elena", map[string]notion.Property{
		"Name": titleProp("Elena"),
		"Role": selectProp("Protagonist"),
		"Age":  textProp("29"),
	}))
	chapters := collection("Chapters", record("ch1", map[string]notion.Property{
		"Title":      titleProp("The Beginning"),
		"Chapter":    numberProp(1),
		"Word Count": numberProp(1200),
		"Books":      multiProp("Draft"),
	}))
	require.Equal(t, TypeCharacter, characters.Type)
	require.Equal(t, TypeChapter, chapters.Type)

	report, err := pipeline.Run(context.Background(), []Collection{characters, chapters}, "Saga", "user-1")
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Empty(t, report.Errors)
	assert.Equal(t, ImportedCounts{Characters: 1, Chapters: 1, OutlineNodes: 2}, report.Imported)

	require.Len(t, projects.created, 1)
	assert.Equal(t, projects.created[0].ID, report.ProjectID)
	assert.Equal(t, "Saga", projects.created[0].Name)
	assert.Equal(t, "user-1", projects.created[0].UserID)

	assert.Equal(t, []string{"1 characters imported with roles, abilities, and detailed descriptions"},
		report.PlanningPageDistribution.CharactersPage)
	assert.Equal(t, []string{"2 outline nodes created across 1 acts"},
		report.PlanningPageDistribution.OutlinePage)

	require.Len(t, store.characters, 1)
	assert.Equal(t, report.ProjectID, store.characters[0].ProjectID)
	assert.Equal(t, testImportedAt, store.characters[0].Provenance.ImportedAt)
	assert.Len(t, store.legacy, 2)
}

func TestPipeline_Run_LinksCharactersAcrossCollections(t *testing.T) {
	store := newFakeStore()
	pipeline := newTestPipeline(&fakeProjects{}, store)

	cols := []Collection{
		collection("Characters", record("elena", map[string]notion.Property{"Name": titleProp("Elena"), "Role": selectProp("Lead")})),
		collection("Plot Threads", record("p1", map[string]notion.Property{
			"Name":       titleProp("The Heist"),
			"Status":     selectProp("Drafting"),
			"Characters": relationProp("elena"),
		})),
		collection("Chapters", record("ch1", map[string]notion.Property{
			"Title":         titleProp("The Beginning"),
			"Chapter":       numberProp(1),
			"POV Character": relationProp("elena"),
		})),
	}
	require.Equal(t, TypePlot, cols[1].Type)
	require.Equal(t, TypeChapter, cols[2].Type)

	report, err := pipeline.Run(context.Background(), cols, "Saga", "user-1")
	require.NoError(t, err)
	assert.Equal(t, ImportedCounts{Characters: 1, PlotThreads: 1, Chapters: 1, OutlineNodes: 2}, report.Imported)

	elenaID := store.characters[0].ID
	require.Len(t, store.plotThreads, 1)
	assert.Equal(t, []string{elenaID}, store.plotThreads[0].CharacterIDs)
	require.Len(t, store.chapters, 1)
	assert.Equal(t, elenaID, store.chapters[0].POVCharacterID)
}

func TestPipeline_Run_PartialFailure(t *testing.T) {
	store := newFakeStore()
	store.fail[entities.EntityTypePlotThread] = true
	pipeline := newTestPipeline(&fakeProjects{}, store)

	cols := []Collection{
		collection("Characters", record("c1", map[string]notion.Property{"Name": titleProp("Elena"), "Role": selectProp("Lead")})),
		collection("Plot Threads", record("p1", map[string]notion.Property{"Name": titleProp("The Heist")})),
		collection("Locations",
			record("l1", map[string]notion.Property{"Name": titleProp("Veyra")}),
			record("l2", map[string]notion.Property{"Name": titleProp("Dunmere")}),
			record("l3", map[string]notion.Property{"Name": titleProp("Kest")}),
		),
	}
	require.Equal(t, TypePlot, cols[1].Type)
	require.Equal(t, TypeLocation, cols[2].Type)

	report, err := pipeline.Run(context.Background(), cols, "Saga", "user-1")
	require.NoError(t, err)

	assert.True(t, report.Success)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "Plot Threads: ")
	assert.Equal(t, 1, report.Imported.Characters)
	assert.Equal(t, 3, report.Imported.Locations)
	assert.Zero(t, report.Imported.PlotThreads)
}

func TestPipeline_Run_AllFailed(t *testing.T) {
	store := newFakeStore()
	store.fail[entities.EntityTypeCharacter] = true
	pipeline := newTestPipeline(&fakeProjects{}, store)

	report, err := pipeline.Run(context.Background(), []Collection{
		collection("Characters", record("c1", map[string]notion.Property{"Name": titleProp("Elena"), "Role": selectProp("Lead")})),
	}, "Saga", "user-1")

	require.NoError(t, err)
	assert.False(t, report.Success)
	assert.Len(t, report.Errors, 1)
	assert.NotEmpty(t, report.ProjectID)
}

func TestPipeline_Run_PreErrorsListedFirst(t *testing.T) {
	pipeline := newTestPipeline(&fakeProjects{}, newFakeStore())

	report, err := pipeline.Run(context.Background(), []Collection{
		collection("Characters", record("c1", map[string]notion.Property{"Name": titleProp("Elena"), "Role": selectProp("Lead")})),
	}, "", "user-1", "bad-ref: unrecognized Notion database reference")

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, []string{"bad-ref: unrecognized Notion database reference"}, report.Errors)
}

func TestPipeline_Run_DefaultProjectName(t *testing.T) {
	projects := &fakeProjects{}
	pipeline := newTestPipeline(projects, newFakeStore())

	_, err := pipeline.Run(context.Background(), nil, "   ", "user-1")
	require.NoError(t, err)
	require.Len(t, projects.created, 1)
	assert.Equal(t, DefaultProjectName, projects.created[0].Name)
}

func TestPipeline_Run_ProjectCreationFatal(t *testing.T) {
	store := newFakeStore()
	pipeline := newTestPipeline(&fakeProjects{err: errStoreDown}, store)

	report, err := pipeline.Run(context.Background(), []Collection{
		collection("Characters", record("c1", map[string]notion.Property{"Name": titleProp("Elena"), "Role": selectProp("Lead")})),
	}, "Saga", "user-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errStoreDown))
	assert.Empty(t, report.ProjectID)
	assert.Empty(t, store.characters)
	assert.Empty(t, store.legacy)
}

func TestPipeline_Run_LegacyFailureNotReported(t *testing.T) {
	store := newFakeStore()
	store.failLegacy = true
	pipeline := newTestPipeline(&fakeProjects{}, store)

	report, err := pipeline.Run(context.Background(), []Collection{
		collection("Characters", record("c1", map[string]notion.Property{"Name": titleProp("Elena"), "Role": selectProp("Lead")})),
	}, "Saga", "user-1")

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Empty(t, report.Errors)
}

func TestReport_JSONShape(t *testing.T) {
	report := NewReport()
	report.Finalize()

	raw, err := json.Marshal(report)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"success": true,
		"imported": {"characters": 0, "plotThreads": 0, "chapters": 0, "locations": 0, "worldElements": 0, "outlineNodes": 0},
		"errors": [],
		"planningPageDistribution": {"charactersPage": [], "plotPage": [], "worldBuildingPage": [], "outlinePage": []}
	}`, string(raw))
}
