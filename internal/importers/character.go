package importers

import (
	"context"

	"github.com/mrlokans/storyplanner/internal/entities"
)

// CharacterImporter writes character collections.
type CharacterImporter struct {
	store EntityStore
}

func NewCharacterImporter(store EntityStore) *CharacterImporter {
	return &CharacterImporter{store: store}
}

// Import implements Importer interface.
func (i *CharacterImporter) Import(ctx context.Context, m *Mapper, col Collection) (Outcome, error) {
	out := Outcome{Pages: NewPageDistribution()}
	if len(col.Records) == 0 {
		return out, nil
	}

	rows := make([]entities.Character, 0, len(col.Records))
	for _, rec := range col.Records {
		rows = append(rows, m.Character(rec))
	}

	saved, err := i.store.InsertCharacters(ctx, rows)
	if err != nil {
		return out, storeError(entities.EntityTypeCharacter, err)
	}

	out.Imported.Characters = len(saved)
	out.Pages.CharactersPage = append(out.Pages.CharactersPage,
		pluralNote(len(saved), "characters imported with roles, abilities, and detailed descriptions"))
	return out, nil
}

// Compile-time interface check
var _ Importer = (*CharacterImporter)(nil)
