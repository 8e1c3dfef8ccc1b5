package importers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/notion"
)

// WorldElementImporter is the fallback for collections that match no known
// type. Each record is filed under a world-building category guessed from
// the collection name, the record title and the property keys.
type WorldElementImporter struct {
	store EntityStore
}

func NewWorldElementImporter(store EntityStore) *WorldElementImporter {
	return &WorldElementImporter{store: store}
}

// Import implements Importer interface.
func (i *WorldElementImporter) Import(ctx context.Context, m *Mapper, col Collection) (Outcome, error) {
	out := Outcome{Pages: NewPageDistribution()}
	if len(col.Records) == 0 {
		return out, nil
	}

	rows := make([]entities.WorldElement, 0, len(col.Records))
	for _, rec := range col.Records {
		rows = append(rows, m.WorldElement(rec, Categorize(col, rec)))
	}

	saved, err := i.store.InsertWorldElements(ctx, rows)
	if err != nil {
		return out, storeError(entities.EntityTypeWorldElement, err)
	}

	out.Imported.WorldElements = len(saved)
	out.Pages.WorldBuildingPage = append(out.Pages.WorldBuildingPage,
		fmt.Sprintf("%d world elements imported from %q", len(saved), col.Name))
	return out, nil
}

var categoryRules = []struct {
	category entities.WorldElementCategory
	keywords []string
}{
	{entities.WorldCategoryTechnology, []string{"technology", "tech", "device", "weapon", "artifact", "machine", "invention", "gadget", "vehicle"}},
	{entities.WorldCategoryCulture, []string{"culture", "religion", "tradition", "language", "custom", "faith", "festival", "myth", "lore"}},
	{entities.WorldCategoryEconomy, []string{"economy", "currency", "trade", "market", "resource", "commerce", "money"}},
	{entities.WorldCategoryHierarchy, []string{"hierarchy", "faction", "organization", "organisation", "guild", "rank", "government", "politic", "nobility"}},
}

// Categorize picks a world element category for a record, defaulting to
// location.
func Categorize(col Collection, rec notion.Record) entities.WorldElementCategory {
	parts := []string{col.Name, rec.DisplayName}
	parts = append(parts, col.PropertyKeys...)
	haystack := []string{strings.ToLower(strings.Join(parts, " "))}

	for _, rule := range categoryRules {
		if containsAny(haystack, rule.keywords) {
			return rule.category
		}
	}
	return entities.WorldCategoryLocation
}

var _ Importer = (*WorldElementImporter)(nil)
