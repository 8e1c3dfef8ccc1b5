package importers

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/logging"
)

// DefaultActTitle groups chapters that carry no book, act or part.
const DefaultActTitle = "Main Story"

// OutlineResult counts the nodes an outline build persisted.
type OutlineResult struct {
	Acts     int
	Chapters int
}

func (r OutlineResult) Nodes() int {
	return r.Acts + r.Chapters
}

// OutlineBuilder derives the two-level act → chapter outline from chapters.
type OutlineBuilder struct {
	store  EntityStore
	logger *zap.Logger
}

func NewOutlineBuilder(store EntityStore, logger *zap.Logger) *OutlineBuilder {
	return &OutlineBuilder{store: store, logger: logging.OrNop(logger)}
}

type actGroup struct {
	title    string
	chapters []entities.Chapter
}

// key identifies the act across collections that reuse a book title.
func (g actGroup) key() string {
	return "act:" + g.chapters[0].Provenance.SourceRecordID + ":" + g.title
}

// Build groups chapters by book and writes one act node per group followed
// by that group's chapter nodes. An act is always persisted before its
// children, which point at the id the store returned for it. A group whose
// act cannot be written is skipped.
func (b *OutlineBuilder) Build(ctx context.Context, m *Mapper, chapters []entities.Chapter) OutlineResult {
	var result OutlineResult

	for idx, group := range groupByBook(chapters) {
		act := entities.OutlineNode{
			ID:         m.id(entities.EntityTypeOutlineNode, group.key()),
			ProjectID:  m.ProjectID(),
			NodeType:   entities.OutlineNodeAct,
			Title:      group.title,
			Order:      idx + 1,
			Provenance: m.outlineProvenance(""),
		}

		savedActs, err := b.store.InsertOutlineNodes(ctx, []entities.OutlineNode{act})
		if err != nil || len(savedActs) == 0 {
			b.logger.Warn("skipping outline group, act not saved",
				zap.String("project", m.ProjectID()),
				zap.String("act", group.title),
				zap.Error(err))
			continue
		}
		result.Acts++
		actID := savedActs[0].ID

		nodes := chapterNodes(m, actID, group.chapters)
		savedNodes, err := b.store.InsertOutlineNodes(ctx, nodes)
		if err != nil {
			b.logger.Warn("failed to save chapter nodes",
				zap.String("project", m.ProjectID()),
				zap.String("act", group.title),
				zap.Int("chapters", len(nodes)),
				zap.Error(err))
			continue
		}
		result.Chapters += len(savedNodes)
	}

	return result
}

// groupByBook keeps groups in first-seen order.
func groupByBook(chapters []entities.Chapter) []actGroup {
	var groups []actGroup
	index := make(map[string]int)

	for _, ch := range chapters {
		title := ch.Book
		if title == "" {
			title = DefaultActTitle
		}
		i, ok := index[title]
		if !ok {
			i = len(groups)
			index[title] = i
			groups = append(groups, actGroup{title: title})
		}
		groups[i].chapters = append(groups[i].chapters, ch)
	}
	return groups
}

// chapterNodes orders nodes by chapter number; chapters without one use
// their position in the group.
func chapterNodes(m *Mapper, actID string, chapters []entities.Chapter) []entities.OutlineNode {
	parent := actID
	nodes := make([]entities.OutlineNode, 0, len(chapters))
	for pos, ch := range chapters {
		order := ch.Number
		if order <= 0 {
			order = pos + 1
		}
		nodes = append(nodes, entities.OutlineNode{
			ID:         m.id(entities.EntityTypeOutlineNode, ch.Provenance.SourceRecordID),
			ProjectID:  m.ProjectID(),
			ParentID:   &parent,
			NodeType:   entities.OutlineNodeChapter,
			Title:      ch.Title,
			Order:      order,
			ChapterID:  ch.ID,
			Provenance: m.outlineProvenance(ch.Provenance.SourceRecordID),
		})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Order < nodes[j].Order
	})
	return nodes
}
