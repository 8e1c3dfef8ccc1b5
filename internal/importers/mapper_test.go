package importers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/notion"
)

const testProjectID = "project-1"

var testImportedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestMapper_Character(t *testing.T) {
	m := NewMapper(testProjectID, testImportedAt)
	rec := record("page-elena", map[string]notion.Property{
		"Name":       titleProp("Elena"),
		"Role":       selectProp("Protagonist"),
		"Age":        textProp("34 years old"),
		"Abilities":  multiProp("Swordplay", "Healing"),
		"Species":    selectProp("Half-elf"),
		"Face Claim": textProp("Someone Famous"),
	})
	rec.Content = "Raised in the northern reaches."

	c := m.Character(rec)

	assert.Equal(t, "Elena", c.Name)
	assert.Equal(t, "protagonist", c.Role)
	require.NotNil(t, c.Age)
	assert.Equal(t, 34, *c.Age)
	assert.Equal(t, "Half-elf", c.Race)
	assert.Equal(t, []string{"Swordplay", "Healing"}, c.Abilities)
	assert.Equal(t, "Someone Famous", c.FaceClaim)
	assert.Equal(t, "Raised in the northern reaches.", c.Backstory)
	assert.Equal(t, testProjectID, c.ProjectID)
	assert.Equal(t, EntityID(testProjectID, entities.EntityTypeCharacter, "page-elena"), c.ID)
	assert.Equal(t, entities.Provenance{
		Source:         entities.ProvenanceNotionImport,
		SourceRecordID: "page-elena",
		ImportedAt:     testImportedAt,
	}, c.Provenance)
}

func TestMapper_Character_MissingOptionalFields(t *testing.T) {
	m := NewMapper(testProjectID, testImportedAt)
	c := m.Character(record("p", map[string]notion.Property{"Name": titleProp("")}))

	assert.Equal(t, "Untitled", c.Name)
	assert.Nil(t, c.Age)
	assert.Empty(t, c.Role)
	assert.Nil(t, c.Abilities)
}

func TestMapper_PlotThread_LinksCharacters(t *testing.T) {
	m := NewMapper(testProjectID, testImportedAt)
	p := m.PlotThread(record("plot-1", map[string]notion.Property{
		"Name":       titleProp("The Heist"),
		"Status":     {Type: notion.PropertyStatus, Status: &notion.SelectOption{Name: "In Progress"}},
		"Characters": relationProp("page-elena", "page-tobin"),
	}))

	assert.Equal(t, "The Heist", p.Title)
	assert.Equal(t, "In Progress", p.Status)
	assert.Equal(t, []string{
		EntityID(testProjectID, entities.EntityTypeCharacter, "page-elena"),
		EntityID(testProjectID, entities.EntityTypeCharacter, "page-tobin"),
	}, p.CharacterIDs)
}

func TestMapper_Chapter(t *testing.T) {
	m := NewMapper(testProjectID, testImportedAt)
	ch := m.Chapter(record("ch-1", map[string]notion.Property{
		"Title":      titleProp("The Beginning"),
		"Chapter":    numberProp(1),
		"Word Count": numberProp(1200),
		"Books":      multiProp("Draft", "Book Two"),
		"POV":        relationProp("page-elena"),
	}))

	assert.Equal(t, "The Beginning", ch.Title)
	assert.Equal(t, 1, ch.Number)
	assert.Equal(t, 1200, ch.WordCount)
	assert.Equal(t, "Draft", ch.Book)
	assert.Equal(t, EntityID(testProjectID, entities.EntityTypeCharacter, "page-elena"), ch.POVCharacterID)
}

func TestMapper_Location(t *testing.T) {
	m := NewMapper(testProjectID, testImportedAt)

	t.Run("region as text", func(t *testing.T) {
		loc := m.Location(record("loc-1", map[string]notion.Property{
			"Name":    titleProp("Veyra"),
			"Region":  textProp("The North"),
			"Climate": selectProp("Cold"),
		}))
		assert.Equal(t, "The North", loc.Region)
		assert.Equal(t, "Cold", loc.Climate)
		assert.Empty(t, loc.ParentID)
	})

	t.Run("region as relation", func(t *testing.T) {
		loc := m.Location(record("loc-2", map[string]notion.Property{
			"Name":   titleProp("Old Quarter"),
			"Region": relationProp("loc-1"),
		}))
		assert.Empty(t, loc.Region)
		assert.Equal(t, EntityID(testProjectID, entities.EntityTypeLocation, "loc-1"), loc.ParentID)
	})

	t.Run("region relation falls back to text area", func(t *testing.T) {
		loc := m.Location(record("loc-3", map[string]notion.Property{
			"Name":      titleProp("Harbor Ward"),
			"Region":    relationProp("loc-1"),
			"Continent": textProp("Essar"),
		}))
		assert.Equal(t, "Essar", loc.Region)
		assert.Equal(t, EntityID(testProjectID, entities.EntityTypeLocation, "loc-1"), loc.ParentID)
	})
}

func TestMapper_LegacyRecord(t *testing.T) {
	m := NewMapper(testProjectID, testImportedAt)
	col := Collection{ID: "db-1", Name: "Lore", Type: TypeUnknown}
	rec := record("r1", map[string]notion.Property{
		"Name": titleProp("First Age"),
		"Era":  numberProp(1),
	})

	row := m.LegacyRecord(col, rec, "user-1")

	assert.Equal(t, "Lore", row.CollectionName)
	assert.Equal(t, "unknown", row.CollectionType)
	assert.Equal(t, "user-1", row.UserID)
	assert.Equal(t, "First Age", row.Title)
	assert.Equal(t, map[string]any{"Name": "First Age", "Era": float64(1)}, row.Properties)
}

func TestEntityID_Deterministic(t *testing.T) {
	a := EntityID("p1", entities.EntityTypeCharacter, "src")
	assert.Equal(t, a, EntityID("p1", entities.EntityTypeCharacter, "src"))
	assert.NotEqual(t, a, EntityID("p2", entities.EntityTypeCharacter, "src"))
	assert.NotEqual(t, a, EntityID("p1", entities.EntityTypeLocation, "src"))
	assert.Len(t, a, 36)
}
