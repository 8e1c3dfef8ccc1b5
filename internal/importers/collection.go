package importers

import (
	"strings"

	"github.com/mrlokans/storyplanner/internal/notion"
)

// CollectionType is the planning schema a collection is imported into.
type CollectionType string

const (
	TypeCharacter CollectionType = "character"
	TypePlot      CollectionType = "plot"
	TypeChapter   CollectionType = "chapter"
	TypeLocation  CollectionType = "location"
	TypeUnknown   CollectionType = "unknown"
)

// Collection is a fetched source collection with its inferred type.
type Collection struct {
	ID           string
	Name         string
	Type         CollectionType
	PropertyKeys []string
	Records      []notion.Record
}

// NewCollection classifies a fetched source.
func NewCollection(src *notion.Source) Collection {
	return Collection{
		ID:           src.ID,
		Name:         src.Name,
		Type:         Classify(src.Name, src.PropertyKeys),
		PropertyKeys: src.PropertyKeys,
		Records:      src.Records,
	}
}

// Classify infers a collection's type from its name and property keys.
// Types are checked in a fixed priority order and the first one with a
// matching keyword wins.
func Classify(name string, propertyKeys []string) CollectionType {
	lowerName := strings.ToLower(name)
	haystack := make([]string, 0, len(propertyKeys)+1)
	haystack = append(haystack, lowerName)
	for _, k := range propertyKeys {
		haystack = append(haystack, strings.ToLower(k))
	}

	for _, rule := range classificationRules {
		if containsAny(haystack, rule.keywords) || containsAny([]string{lowerName}, rule.nameKeywords) {
			return rule.collectionType
		}
	}
	return TypeUnknown
}

// nameKeywords only match the collection name. Plot and chapter collections
// link to characters through keys like "Characters" or "POV Character".
var classificationRules = []struct {
	collectionType CollectionType
	keywords       []string
	nameKeywords   []string
}{
	{TypeCharacter, []string{"role", "age", "race", "abilities", "class", "trait", "techniques", "face claim", "species", "personality"}, []string{"character"}},
	{TypePlot, []string{"plot", "arc", "storyline", "subplot", "conflict", "thread", "stakes"}, nil},
	{TypeChapter, []string{"chapter", "scene", "word count", "pov", "manuscript"}, nil},
	{TypeLocation, []string{"location", "place", "setting", "region", "city", "geography", "climate", "terrain"}, nil},
}

func containsAny(haystack, keywords []string) bool {
	for _, h := range haystack {
		for _, kw := range keywords {
			if strings.Contains(h, kw) {
				return true
			}
		}
	}
	return false
}
