package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		coll string
		keys []string
		want CollectionType
	}{
		{"character by name", "Characters", []string{"Name"}, TypeCharacter},
		{"character by keys", "Cast", []string{"Name", "Face Claim"}, TypeCharacter},
		{"plot", "Plot Threads", []string{"Name", "Status"}, TypePlot},
		{"chapter", "Manuscript", []string{"Title", "Word Count"}, TypeChapter},
		{"location", "Places", []string{"Name", "Climate"}, TypeLocation},
		{"case insensitive", "LOCATIONS", nil, TypeLocation},
		{"unknown", "Magic Systems", []string{"Name", "Cost"}, TypeUnknown},
		{"empty", "", nil, TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.coll, tt.keys))
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// Matches both character ("role") and chapter ("chapter"); character wins.
	assert.Equal(t, TypeCharacter, Classify("Chapters", []string{"Role"}))
	// Matches both plot and location; plot wins.
	assert.Equal(t, TypePlot, Classify("Story Arcs", []string{"Setting"}))
	// Matches chapter and location; chapter wins.
	assert.Equal(t, TypeChapter, Classify("Scenes", []string{"Location"}))
}

func TestClassify_CharacterLinksDoNotClaimCollection(t *testing.T) {
	tests := []struct {
		coll string
		keys []string
		want CollectionType
	}{
		{"Plot Threads", []string{"Name", "Status", "Characters"}, TypePlot},
		{"Subplots", []string{"Name", "Linked Characters"}, TypePlot},
		{"Conflicts", []string{"Name", "Involved Characters"}, TypePlot},
		{"Chapters", []string{"Title", "Chapter", "Word Count", "POV Character"}, TypeChapter},
		{"Scenes", []string{"Title", "Character"}, TypeChapter},
		{"Main Characters", []string{"Name"}, TypeCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.coll, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.coll, tt.keys))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	keys := []string{"Name", "Region", "Scene"}
	first := Classify("Notes", keys)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify("Notes", keys))
	}
}
