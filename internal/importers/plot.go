package importers

import (
	"context"

	"github.com/mrlokans/storyplanner/internal/entities"
)

// PlotImporter writes plot thread collections. Character relations are
// resolved to deterministic character ids even when the characters are
// imported later in the run or not at all.
type PlotImporter struct {
	store EntityStore
}

func NewPlotImporter(store EntityStore) *PlotImporter {
	return &PlotImporter{store: store}
}

// Import implements Importer interface.
func (i *PlotImporter) Import(ctx context.Context, m *Mapper, col Collection) (Outcome, error) {
	out := Outcome{Pages: NewPageDistribution()}
	if len(col.Records) == 0 {
		return out, nil
	}

	rows := make([]entities.PlotThread, 0, len(col.Records))
	for _, rec := range col.Records {
		rows = append(rows, m.PlotThread(rec))
	}

	saved, err := i.store.InsertPlotThreads(ctx, rows)
	if err != nil {
		return out, storeError(entities.EntityTypePlotThread, err)
	}

	out.Imported.PlotThreads = len(saved)
	out.Pages.PlotPage = append(out.Pages.PlotPage,
		pluralNote(len(saved), "plot threads imported with status and linked characters"))
	return out, nil
}

var _ Importer = (*PlotImporter)(nil)
