package importers

import (
	"context"
	"fmt"
)

// Importer writes one classified collection into its target stores.
//
// Implementations:
//   - CharacterImporter (character.go)
//   - PlotImporter (plot.go)
//   - ChapterImporter (chapter.go) - also builds the outline
//   - LocationImporter (location.go) - also mirrors into world elements
//   - WorldElementImporter (world_element.go) - fallback for unknown collections
type Importer interface {
	Import(ctx context.Context, m *Mapper, col Collection) (Outcome, error)
}

func pluralNote(n int, what string) string {
	return fmt.Sprintf("%d %s", n, what)
}
