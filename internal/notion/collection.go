package notion

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// untitled is used when a page has an empty title property.
const untitled = "Untitled"

// Record is one source row: its raw property bag plus extracted free text.
type Record struct {
	ID          string
	DisplayName string
	Properties  map[string]Property
	Content     string
	URL         string
}

// Source is a fetched database with its rows, before classification.
type Source struct {
	ID           string
	Name         string
	PropertyKeys []string
	Records      []Record
}

// LoadCollection resolves ref, fetches the database and converts its pages
// into records. Page content failures are logged and leave Content empty.
func (c *Client) LoadCollection(ctx context.Context, token, ref string) (*Source, error) {
	id, err := ResolveReference(ref)
	if err != nil {
		return nil, err
	}

	db, pages, err := c.FetchCollection(ctx, token, id)
	if err != nil {
		return nil, err
	}

	src := &Source{
		ID:           id,
		Name:         strings.TrimSpace(PlainText(db.Title)),
		PropertyKeys: propertyKeys(db),
		Records:      make([]Record, 0, len(pages)),
	}
	if src.Name == "" {
		src.Name = untitled
	}

	for _, page := range pages {
		if page.Archived || page.InTrash {
			continue
		}
		rec := NewRecord(page)
		if c.fetchContent {
			content, err := c.PageContent(ctx, token, page.ID)
			if err != nil {
				c.logger.Warn("skipping page content",
					zap.String("database", id),
					zap.String("page", page.ID),
					zap.Error(err))
			}
			rec.Content = content
		}
		src.Records = append(src.Records, rec)
	}

	c.logger.Info("loaded collection",
		zap.String("database", id),
		zap.String("name", src.Name),
		zap.Int("records", len(src.Records)))

	return src, nil
}

// NewRecord builds a record from a page, taking the display name from its
// title property.
func NewRecord(page Page) Record {
	rec := Record{
		ID:          page.ID,
		DisplayName: untitled,
		Properties:  page.Properties,
		URL:         page.URL,
	}
	if rec.Properties == nil {
		rec.Properties = map[string]Property{}
	}
	for _, p := range page.Properties {
		if p.Type != PropertyTitle {
			continue
		}
		if name := strings.TrimSpace(PlainText(p.Title)); name != "" {
			rec.DisplayName = name
		}
		break
	}
	return rec
}

func propertyKeys(db *Database) []string {
	keys := make([]string, 0, len(db.Properties))
	for name := range db.Properties {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
