package importers

import (
	"context"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/notion"
)

// LocationImporter writes location collections to the locations store and
// mirrors every location into world elements so it shows up on the
// world-building page.
type LocationImporter struct {
	store EntityStore
}

func NewLocationImporter(store EntityStore) *LocationImporter {
	return &LocationImporter{store: store}
}

// Import implements Importer interface. A failed mirror write keeps the
// location count and reports the world element error.
func (i *LocationImporter) Import(ctx context.Context, m *Mapper, col Collection) (Outcome, error) {
	out := Outcome{Pages: NewPageDistribution()}
	if len(col.Records) == 0 {
		return out, nil
	}

	rows := make([]entities.Location, 0, len(col.Records))
	sources := make(map[string]notion.Record, len(col.Records))
	for _, rec := range col.Records {
		loc := m.Location(rec)
		rows = append(rows, loc)
		sources[loc.ID] = rec
	}

	saved, err := i.store.InsertLocations(ctx, rows)
	if err != nil {
		return out, storeError(entities.EntityTypeLocation, err)
	}

	out.Imported.Locations = len(saved)
	out.Pages.WorldBuildingPage = append(out.Pages.WorldBuildingPage,
		pluralNote(len(saved), "locations added to world building"))

	elements := make([]entities.WorldElement, 0, len(saved))
	for _, loc := range saved {
		elements = append(elements, m.LocationElement(loc, sources[loc.ID]))
	}

	mirrored, err := i.store.InsertWorldElements(ctx, elements)
	if err != nil {
		return out, storeError(entities.EntityTypeWorldElement, err)
	}
	out.Imported.WorldElements = len(mirrored)
	return out, nil
}

var _ Importer = (*LocationImporter)(nil)
