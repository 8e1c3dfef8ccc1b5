package entities

import (
	"time"
)

type EntityType string

const (
	EntityTypeCharacter    EntityType = "character"
	EntityTypePlotThread   EntityType = "plot_thread"
	EntityTypeChapter      EntityType = "chapter"
	EntityTypeLocation     EntityType = "location"
	EntityTypeWorldElement EntityType = "world_element"
	EntityTypeOutlineNode  EntityType = "outline_node"
)

type OutlineNodeType string

const (
	OutlineNodeAct     OutlineNodeType = "act"
	OutlineNodeChapter OutlineNodeType = "chapter"
)

type WorldElementCategory string

const (
	WorldCategoryTechnology WorldElementCategory = "technology"
	WorldCategoryCulture    WorldElementCategory = "culture"
	WorldCategoryEconomy    WorldElementCategory = "economy"
	WorldCategoryHierarchy  WorldElementCategory = "hierarchy"
	WorldCategoryLocation   WorldElementCategory = "location"
)

// ProvenanceNotionImport marks rows created by the Notion importer.
const ProvenanceNotionImport = "notion_import"

// Provenance records where an imported row came from and when.
type Provenance struct {
	Source         string    `gorm:"size:50" json:"source"`
	SourceRecordID string    `gorm:"index;size:64" json:"source_record_id"`
	ImportedAt     time.Time `json:"imported_at"`
}

type Character struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	ProjectID   string     `gorm:"index;size:36" json:"project_id"`
	Name        string     `gorm:"size:256" json:"name"`
	Role        string     `gorm:"size:100" json:"role,omitempty"`
	Age         *int       `json:"age,omitempty"`
	Race        string     `gorm:"size:100" json:"race,omitempty"`
	Class       string     `gorm:"size:100" json:"class,omitempty"`
	Abilities   []string   `gorm:"serializer:json" json:"abilities,omitempty"`
	Traits      []string   `gorm:"serializer:json" json:"traits,omitempty"`
	FaceClaim   string     `gorm:"size:256" json:"face_claim,omitempty"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Backstory   string     `gorm:"type:text" json:"backstory,omitempty"`
	Tags        []string   `gorm:"serializer:json" json:"tags,omitempty"`
	Provenance  Provenance `gorm:"embedded" json:"provenance"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PlotThread struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	ProjectID    string     `gorm:"index;size:36" json:"project_id"`
	Title        string     `gorm:"size:512" json:"title"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	Status       string     `gorm:"size:50" json:"status,omitempty"`
	ThreadType   string     `gorm:"size:50" json:"thread_type,omitempty"`
	CharacterIDs []string   `gorm:"serializer:json" json:"character_ids,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	Tags         []string   `gorm:"serializer:json" json:"tags,omitempty"`
	Provenance   Provenance `gorm:"embedded" json:"provenance"`
	CreatedAt    time.Time  `json:"created_at"`
}

type Chapter struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	ProjectID      string     `gorm:"index;size:36" json:"project_id"`
	Title          string     `gorm:"size:512" json:"title"`
	Number         int        `json:"number"`
	WordCount      int        `json:"word_count"`
	Summary        string     `gorm:"type:text" json:"summary,omitempty"`
	Status         string     `gorm:"size:50" json:"status,omitempty"`
	Book           string     `gorm:"size:256" json:"book,omitempty"`
	POVCharacterID string     `gorm:"size:36" json:"pov_character_id,omitempty"`
	Content        string     `gorm:"type:text" json:"content,omitempty"`
	Tags           []string   `gorm:"serializer:json" json:"tags,omitempty"`
	Provenance     Provenance `gorm:"embedded" json:"provenance"`
	CreatedAt      time.Time  `json:"created_at"`
}

type Location struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	ProjectID    string     `gorm:"index;size:36" json:"project_id"`
	Name         string     `gorm:"size:256" json:"name"`
	LocationType string     `gorm:"size:100" json:"location_type,omitempty"`
	Region       string     `gorm:"size:256" json:"region,omitempty"`
	Climate      string     `gorm:"size:100" json:"climate,omitempty"`
	ParentID     string     `gorm:"size:36" json:"parent_id,omitempty"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	Tags         []string   `gorm:"serializer:json" json:"tags,omitempty"`
	Provenance   Provenance `gorm:"embedded" json:"provenance"`
	CreatedAt    time.Time  `json:"created_at"`
}

type WorldElement struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	ProjectID   string               `gorm:"index;size:36" json:"project_id"`
	Name        string               `gorm:"size:256" json:"name"`
	Category    WorldElementCategory `gorm:"index;size:30" json:"category"`
	Description string               `gorm:"type:text" json:"description,omitempty"`
	Details     string               `gorm:"type:text" json:"details,omitempty"`
	Tags        []string             `gorm:"serializer:json" json:"tags,omitempty"`
	Provenance  Provenance           `gorm:"embedded" json:"provenance"`
	CreatedAt   time.Time            `json:"created_at"`
}

// OutlineNode is one node of the two-level act -> chapter outline tree.
type OutlineNode struct {
	ID         string          `gorm:"primaryKey;size:36" json:"id"`
	ProjectID  string          `gorm:"index;size:36" json:"project_id"`
	ParentID   *string         `gorm:"index;size:36" json:"parent_id,omitempty"`
	NodeType   OutlineNodeType `gorm:"size:20" json:"node_type"`
	Title      string          `gorm:"size:512" json:"title"`
	Order      int             `gorm:"column:sort_order" json:"order"`
	ChapterID  string          `gorm:"size:36" json:"chapter_id,omitempty"`
	Provenance Provenance      `gorm:"embedded" json:"provenance"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (PlotThread) TableName() string {
	return "plot_threads"
}

func (WorldElement) TableName() string {
	return "world_elements"
}

func (OutlineNode) TableName() string {
	return "outline_nodes"
}
