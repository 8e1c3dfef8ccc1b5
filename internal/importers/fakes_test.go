package importers

import (
	"context"
	"errors"
	"sync"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/notion"
)

var errStoreDown = errors.New("store unavailable")

type fakeProjects struct {
	created []entities.Project
	err     error
}

func (f *fakeProjects) CreateProject(_ context.Context, project *entities.Project) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *project)
	return nil
}

type fakeStore struct {
	mu sync.Mutex

	characters    []entities.Character
	plotThreads   []entities.PlotThread
	chapters      []entities.Chapter
	locations     []entities.Location
	worldElements []entities.WorldElement
	outlineNodes  []entities.OutlineNode
	legacy        []entities.LegacyRecord

	// fail makes the matching Insert call return errStoreDown.
	fail map[entities.EntityType]bool
	// failActs rejects outline batches that contain an act with this title.
	failActs map[string]bool
	// failLegacy rejects the legacy copy.
	failLegacy bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{fail: map[entities.EntityType]bool{}, failActs: map[string]bool{}}
}

func (f *fakeStore) InsertCharacters(_ context.Context, rows []entities.Character) ([]entities.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[entities.EntityTypeCharacter] {
		return nil, errStoreDown
	}
	f.characters = append(f.characters, rows...)
	return rows, nil
}

func (f *fakeStore) InsertPlotThreads(_ context.Context, rows []entities.PlotThread) ([]entities.PlotThread, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[entities.EntityTypePlotThread] {
		return nil, errStoreDown
	}
	f.plotThreads = append(f.plotThreads, rows...)
	return rows, nil
}

func (f *fakeStore) InsertChapters(_ context.Context, rows []entities.Chapter) ([]entities.Chapter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[entities.EntityTypeChapter] {
		return nil, errStoreDown
	}
	f.chapters = append(f.chapters, rows...)
	return rows, nil
}

func (f *fakeStore) InsertLocations(_ context.Context, rows []entities.Location) ([]entities.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[entities.EntityTypeLocation] {
		return nil, errStoreDown
	}
	f.locations = append(f.locations, rows...)
	return rows, nil
}

func (f *fakeStore) InsertWorldElements(_ context.Context, rows []entities.WorldElement) ([]entities.WorldElement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[entities.EntityTypeWorldElement] {
		return nil, errStoreDown
	}
	f.worldElements = append(f.worldElements, rows...)
	return rows, nil
}

func (f *fakeStore) InsertOutlineNodes(_ context.Context, rows []entities.OutlineNode) ([]entities.OutlineNode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[entities.EntityTypeOutlineNode] {
		return nil, errStoreDown
	}
	for _, n := range rows {
		if n.NodeType == entities.OutlineNodeAct && f.failActs[n.Title] {
			return nil, errStoreDown
		}
	}
	f.outlineNodes = append(f.outlineNodes, rows...)
	return rows, nil
}

func (f *fakeStore) InsertLegacyRecords(_ context.Context, rows []entities.LegacyRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLegacy {
		return errStoreDown
	}
	f.legacy = append(f.legacy, rows...)
	return nil
}

func (f *fakeStore) nodesOfType(t entities.OutlineNodeType) []entities.OutlineNode {
	var out []entities.OutlineNode
	for _, n := range f.outlineNodes {
		if n.NodeType == t {
			out = append(out, n)
		}
	}
	return out
}

// Property builders for test records.

func titleProp(s string) notion.Property {
	return notion.Property{Type: notion.PropertyTitle, Title: []notion.RichText{{PlainText: s}}}
}

func textProp(s string) notion.Property {
	return notion.Property{Type: notion.PropertyRichText, RichText: []notion.RichText{{PlainText: s}}}
}

func selectProp(s string) notion.Property {
	return notion.Property{Type: notion.PropertySelect, Select: &notion.SelectOption{Name: s}}
}

func numberProp(f float64) notion.Property {
	return notion.Property{Type: notion.PropertyNumber, Number: &f}
}

func multiProp(values ...string) notion.Property {
	opts := make([]notion.SelectOption, len(values))
	for i, v := range values {
		opts[i] = notion.SelectOption{Name: v}
	}
	return notion.Property{Type: notion.PropertyMultiSelect, MultiSelect: opts}
}

func relationProp(ids ...string) notion.Property {
	refs := make([]notion.PageRef, len(ids))
	for i, id := range ids {
		refs[i] = notion.PageRef{ID: id}
	}
	return notion.Property{Type: notion.PropertyRelation, Relation: refs}
}

// record builds a record whose display name is taken from the title property.
func record(id string, props map[string]notion.Property) notion.Record {
	return notion.NewRecord(notion.Page{ID: id, Properties: props})
}

func collection(name string, records ...notion.Record) Collection {
	keys := map[string]struct{}{}
	for _, r := range records {
		for k := range r.Properties {
			keys[k] = struct{}{}
		}
	}
	src := &notion.Source{ID: name + "-id", Name: name, Records: records}
	for k := range keys {
		src.PropertyKeys = append(src.PropertyKeys, k)
	}
	return NewCollection(src)
}
