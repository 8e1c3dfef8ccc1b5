package importers

import (
	"fmt"
)

// ImportedCounts holds per-entity totals for a run or a single collection.
type ImportedCounts struct {
	Characters    int `json:"characters"`
	PlotThreads   int `json:"plotThreads"`
	Chapters      int `json:"chapters"`
	Locations     int `json:"locations"`
	WorldElements int `json:"worldElements"`
	OutlineNodes  int `json:"outlineNodes"`
}

func (c ImportedCounts) Total() int {
	return c.Characters + c.PlotThreads + c.Chapters + c.Locations + c.WorldElements + c.OutlineNodes
}

func (c *ImportedCounts) Add(other ImportedCounts) {
	c.Characters += other.Characters
	c.PlotThreads += other.PlotThreads
	c.Chapters += other.Chapters
	c.Locations += other.Locations
	c.WorldElements += other.WorldElements
	c.OutlineNodes += other.OutlineNodes
}

// PageDistribution lists, per planning page, human-readable notes about what
// landed there.
type PageDistribution struct {
	CharactersPage    []string `json:"charactersPage"`
	PlotPage          []string `json:"plotPage"`
	WorldBuildingPage []string `json:"worldBuildingPage"`
	OutlinePage       []string `json:"outlinePage"`
}

func NewPageDistribution() PageDistribution {
	return PageDistribution{
		CharactersPage:    []string{},
		PlotPage:          []string{},
		WorldBuildingPage: []string{},
		OutlinePage:       []string{},
	}
}

func (d *PageDistribution) Add(other PageDistribution) {
	d.CharactersPage = append(d.CharactersPage, other.CharactersPage...)
	d.PlotPage = append(d.PlotPage, other.PlotPage...)
	d.WorldBuildingPage = append(d.WorldBuildingPage, other.WorldBuildingPage...)
	d.OutlinePage = append(d.OutlinePage, other.OutlinePage...)
}

// Outcome is what a single collection import contributed. Importers may
// return a partial Outcome together with an error when a secondary write fails.
type Outcome struct {
	Imported ImportedCounts
	Pages    PageDistribution
}

// Report is the result of an import run as returned to callers.
type Report struct {
	Success                  bool             `json:"success"`
	ProjectID                string           `json:"projectId,omitempty"`
	Imported                 ImportedCounts   `json:"imported"`
	Errors                   []string         `json:"errors"`
	PlanningPageDistribution PageDistribution `json:"planningPageDistribution"`
}

func NewReport() Report {
	return Report{
		Errors:                   []string{},
		PlanningPageDistribution: NewPageDistribution(),
	}
}

// AddError records a collection-scoped failure.
func (r *Report) AddError(collection string, err error) {
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", collection, err))
}

func (r *Report) apply(col Collection, outcome Outcome, err error) {
	r.Imported.Add(outcome.Imported)
	r.PlanningPageDistribution.Add(outcome.Pages)
	if err != nil {
		r.AddError(col.Name, err)
	}
}

// Finalize sets Success: a run succeeds when nothing failed, or when at
// least one entity was imported despite failures.
func (r *Report) Finalize() {
	r.Success = len(r.Errors) == 0 || r.Imported.Total() > 0
}
