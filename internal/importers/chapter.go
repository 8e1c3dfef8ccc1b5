package importers

import (
	"context"
	"fmt"

	"github.com/mrlokans/storyplanner/internal/entities"
)

// ChapterImporter writes chapter collections and derives the outline tree
// from the persisted chapters.
type ChapterImporter struct {
	store   EntityStore
	outline *OutlineBuilder
}

func NewChapterImporter(store EntityStore, outline *OutlineBuilder) *ChapterImporter {
	return &ChapterImporter{store: store, outline: outline}
}

// Import implements Importer interface.
func (i *ChapterImporter) Import(ctx context.Context, m *Mapper, col Collection) (Outcome, error) {
	out := Outcome{Pages: NewPageDistribution()}
	if len(col.Records) == 0 {
		return out, nil
	}

	rows := make([]entities.Chapter, 0, len(col.Records))
	for _, rec := range col.Records {
		rows = append(rows, m.Chapter(rec))
	}

	saved, err := i.store.InsertChapters(ctx, rows)
	if err != nil {
		return out, storeError(entities.EntityTypeChapter, err)
	}

	out.Imported.Chapters = len(saved)
	out.Pages.PlotPage = append(out.Pages.PlotPage,
		pluralNote(len(saved), "chapters imported with word counts and summaries"))

	result := i.outline.Build(ctx, m, saved)
	if nodes := result.Nodes(); nodes > 0 {
		out.Imported.OutlineNodes = nodes
		out.Pages.OutlinePage = append(out.Pages.OutlinePage,
			fmt.Sprintf("%d outline nodes created across %d acts", nodes, result.Acts))
	}
	return out, nil
}

var _ Importer = (*ChapterImporter)(nil)
