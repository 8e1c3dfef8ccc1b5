package importers

import (
	"strings"
	"time"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/notion"
)

// Key spellings observed in real workspaces, in order of preference.
var (
	roleKeys        = []string{"Role", "Role ", "Character Role"}
	ageKeys         = []string{"Age", "Age "}
	raceKeys        = []string{"Race", "Race ", "Species"}
	classKeys       = []string{"Class", "Class "}
	abilityKeys     = []string{"Abilities", "Techniques", "Skills", "Powers"}
	traitKeys       = []string{"Traits", "Personality", "Personality Traits"}
	faceClaimKeys   = []string{"Face Claim", "Face claim", "FC"}
	descriptionKeys = []string{"Description", "Summary", "Bio", "Overview"}
	backstoryKeys   = []string{"Backstory", "Background", "History"}

	plotStatusKeys = []string{"Status", "Progress"}
	threadTypeKeys = []string{"Type", "Thread Type", "Plot Type"}
	plotCastKeys   = []string{"Characters", "Character", "Linked Characters", "Involved Characters"}
	notesKeys      = []string{"Notes", "Note"}

	chapterNumberKeys = []string{"Chapter", "Chapter Number", "Chapter #", "Number", "No.", "Order"}
	wordCountKeys     = []string{"Word Count", "Word count", "Words", "Wordcount"}
	summaryKeys       = []string{"Summary", "Synopsis", "Description"}
	chapterStatusKeys = []string{"Status", "Draft Status"}
	povKeys           = []string{"POV", "POV Character", "Point of View"}

	// Grouping keys for the outline, first match wins.
	bookKeys = []string{"Books", "Book", "Act", "Part"}

	locationTypeKeys = []string{"Type", "Location Type", "Kind"}
	regionKeys       = []string{"Region", "Area", "Continent"}
	climateKeys      = []string{"Climate", "Weather"}
	parentKeys       = []string{"Parent", "Parent Location", "Located In", "Region"}

	elementDescriptionKeys = []string{"Description", "Summary", "Notes", "Details"}
)

// Mapper converts source records into planning entities for one project.
// Every entity it produces shares the same import timestamp.
type Mapper struct {
	projectID  string
	importedAt time.Time
}

func NewMapper(projectID string, importedAt time.Time) *Mapper {
	return &Mapper{projectID: projectID, importedAt: importedAt}
}

func (m *Mapper) ProjectID() string {
	return m.projectID
}

func (m *Mapper) ImportedAt() time.Time {
	return m.importedAt
}

func (m *Mapper) id(entityType entities.EntityType, sourceID string) string {
	return EntityID(m.projectID, entityType, sourceID)
}

func (m *Mapper) provenance(rec notion.Record) entities.Provenance {
	return entities.Provenance{
		Source:         entities.ProvenanceNotionImport,
		SourceRecordID: rec.ID,
		ImportedAt:     m.importedAt,
	}
}

func (m *Mapper) outlineProvenance(sourceID string) entities.Provenance {
	return entities.Provenance{
		Source:         entities.ProvenanceNotionImport,
		SourceRecordID: sourceID,
		ImportedAt:     m.importedAt,
	}
}

func (m *Mapper) relationIDs(entityType entities.EntityType, sourceIDs []string) []string {
	if len(sourceIDs) == 0 {
		return nil
	}
	ids := make([]string, len(sourceIDs))
	for i, sid := range sourceIDs {
		ids[i] = m.id(entityType, sid)
	}
	return ids
}

func (m *Mapper) Character(rec notion.Record) entities.Character {
	c := entities.Character{
		ID:          m.id(entities.EntityTypeCharacter, rec.ID),
		ProjectID:   m.projectID,
		Name:        displayName(rec),
		Role:        strings.ToLower(textField(rec, roleKeys...)),
		Race:        textField(rec, raceKeys...),
		Class:       textField(rec, classKeys...),
		Abilities:   listField(rec, abilityKeys...),
		Traits:      listField(rec, traitKeys...),
		FaceClaim:   textField(rec, faceClaimKeys...),
		Description: textField(rec, descriptionKeys...),
		Backstory:   textField(rec, backstoryKeys...),
		Tags:        extractTags(rec),
		Provenance:  m.provenance(rec),
	}
	if age, ok := intField(rec, ageKeys...); ok {
		c.Age = &age
	}
	if c.Backstory == "" {
		c.Backstory = rec.Content
	}
	return c
}

func (m *Mapper) PlotThread(rec notion.Record) entities.PlotThread {
	p := entities.PlotThread{
		ID:           m.id(entities.EntityTypePlotThread, rec.ID),
		ProjectID:    m.projectID,
		Title:        displayName(rec),
		Description:  textField(rec, descriptionKeys...),
		Status:       textField(rec, plotStatusKeys...),
		ThreadType:   textField(rec, threadTypeKeys...),
		CharacterIDs: m.relationIDs(entities.EntityTypeCharacter, relationValues(rec, plotCastKeys...)),
		Notes:        textField(rec, notesKeys...),
		Tags:         extractTags(rec),
		Provenance:   m.provenance(rec),
	}
	if p.Description == "" {
		p.Description = rec.Content
	}
	return p
}

func (m *Mapper) Chapter(rec notion.Record) entities.Chapter {
	ch := entities.Chapter{
		ID:         m.id(entities.EntityTypeChapter, rec.ID),
		ProjectID:  m.projectID,
		Title:      displayName(rec),
		Summary:    textField(rec, summaryKeys...),
		Status:     textField(rec, chapterStatusKeys...),
		Book:       bookOf(rec),
		Content:    rec.Content,
		Tags:       extractTags(rec),
		Provenance: m.provenance(rec),
	}
	if n, ok := intField(rec, chapterNumberKeys...); ok {
		ch.Number = n
	}
	if wc, ok := intField(rec, wordCountKeys...); ok {
		ch.WordCount = wc
	}
	if pov := m.relationIDs(entities.EntityTypeCharacter, relationValues(rec, povKeys...)); len(pov) > 0 {
		ch.POVCharacterID = pov[0]
	}
	return ch
}

func (m *Mapper) Location(rec notion.Record) entities.Location {
	loc := entities.Location{
		ID:           m.id(entities.EntityTypeLocation, rec.ID),
		ProjectID:    m.projectID,
		Name:         displayName(rec),
		LocationType: textField(rec, locationTypeKeys...),
		Climate:      textField(rec, climateKeys...),
		Description:  textField(rec, descriptionKeys...),
		Tags:         extractTags(rec),
		Provenance:   m.provenance(rec),
	}
	// "Region" is either free text or a relation to the enclosing location.
	if parents := m.relationIDs(entities.EntityTypeLocation, relationValues(rec, parentKeys...)); len(parents) > 0 {
		loc.ParentID = parents[0]
	}
	loc.Region = textField(rec, withoutRelations(rec, regionKeys...)...)
	if loc.Description == "" {
		loc.Description = rec.Content
	}
	return loc
}

// WorldElement maps a record into a world element of the given category.
func (m *Mapper) WorldElement(rec notion.Record, category entities.WorldElementCategory) entities.WorldElement {
	return entities.WorldElement{
		ID:          m.id(entities.EntityTypeWorldElement, rec.ID),
		ProjectID:   m.projectID,
		Name:        displayName(rec),
		Category:    category,
		Description: textField(rec, elementDescriptionKeys...),
		Details:     rec.Content,
		Tags:        extractTags(rec),
		Provenance:  m.provenance(rec),
	}
}

// LocationElement mirrors a location into the world-building store.
func (m *Mapper) LocationElement(loc entities.Location, rec notion.Record) entities.WorldElement {
	el := m.WorldElement(rec, entities.WorldCategoryLocation)
	el.Name = loc.Name
	el.Description = loc.Description
	el.Tags = loc.Tags
	return el
}

// LegacyRecord flattens a record into the pre-schema imported_records table.
func (m *Mapper) LegacyRecord(col Collection, rec notion.Record, userID string) entities.LegacyRecord {
	props := make(map[string]any, len(rec.Properties))
	for k, p := range rec.Properties {
		props[k] = notion.ExtractValue(p)
	}
	return entities.LegacyRecord{
		ID:             m.id(legacyEntityType, col.ID+":"+rec.ID),
		ProjectID:      m.projectID,
		UserID:         userID,
		CollectionName: col.Name,
		CollectionType: string(col.Type),
		SourceRecordID: rec.ID,
		Title:          displayName(rec),
		Properties:     props,
		Content:        rec.Content,
		ImportedAt:     m.importedAt,
	}
}

const legacyEntityType entities.EntityType = "imported_record"

func bookOf(rec notion.Record) string {
	return firstListValue(rec, bookKeys...)
}
