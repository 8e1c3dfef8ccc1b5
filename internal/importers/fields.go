package importers

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mrlokans/storyplanner/internal/notion"
)

// maxImplicitTagLength bounds the type/role/status values promoted to tags.
const maxImplicitTagLength = 40

var leadingInt = regexp.MustCompile(`-?\d+`)

// firstPresent returns the extracted value of the first candidate key that
// exists on the record with a non-empty value. Candidates are ordered by
// preference and usually include the spelling variants seen in real
// workspaces ("Age", "Age ").
func firstPresent(rec notion.Record, candidates ...string) (any, bool) {
	_, v, ok := lookup(rec, candidates...)
	return v, ok
}

func lookup(rec notion.Record, candidates ...string) (notion.Property, any, bool) {
	for _, key := range candidates {
		prop, ok := rec.Properties[key]
		if !ok {
			continue
		}
		v := notion.ExtractValue(prop)
		if isEmpty(v) {
			continue
		}
		return prop, v, true
	}
	return notion.Property{}, nil, false
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}

func textField(rec notion.Record, candidates ...string) string {
	v, ok := firstPresent(rec, candidates...)
	if !ok {
		return ""
	}
	return toText(v)
}

func intField(rec notion.Record, candidates ...string) (int, bool) {
	v, ok := firstPresent(rec, candidates...)
	if !ok {
		return 0, false
	}
	return toInt(v)
}

func listField(rec notion.Record, candidates ...string) []string {
	v, ok := firstPresent(rec, candidates...)
	if !ok {
		return nil
	}
	return toList(v)
}

// firstListValue returns the first value of a possibly multi-valued property.
func firstListValue(rec notion.Record, candidates ...string) string {
	values := listField(rec, candidates...)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func toText(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ", ")
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

// toInt accepts numbers (truncated) and strings containing a number, so
// "34 years old" yields 34.
func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	case string:
		m := leadingInt.FindString(val)
		if m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		return n, true
	case []string:
		if len(val) > 0 {
			return toInt(val[0])
		}
	}
	return 0, false
}

// toList treats a plain string as a comma separated list.
func toList(v any) []string {
	var raw []string
	switch val := v.(type) {
	case []string:
		raw = val
	case string:
		raw = strings.Split(val, ",")
	case nil:
		return nil
	default:
		raw = []string{toText(val)}
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// relationValues returns the ids of the first candidate that is a relation
// property. Multi-select and text values name pages rather than identify
// them, so they are ignored here.
// withoutRelations drops candidates present on rec as relation properties.
func withoutRelations(rec notion.Record, candidates ...string) []string {
	out := make([]string, 0, len(candidates))
	for _, key := range candidates {
		if prop, ok := rec.Properties[key]; ok && prop.Type == notion.PropertyRelation {
			continue
		}
		out = append(out, key)
	}
	return out
}

func relationValues(rec notion.Record, candidates ...string) []string {
	for _, key := range candidates {
		prop, ok := rec.Properties[key]
		if !ok || prop.Type != notion.PropertyRelation {
			continue
		}
		if ids := toList(notion.ExtractValue(prop)); len(ids) > 0 {
			return ids
		}
	}
	return nil
}

// extractTags collects tags from every "tag" property plus short
// type/role/status values, lower-cased and de-duplicated in key order.
func extractTags(rec notion.Record) []string {
	keys := make([]string, 0, len(rec.Properties))
	for k := range rec.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[string]struct{})
	var tags []string
	add := func(tag string) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, key := range keys {
		lower := strings.ToLower(key)
		v := notion.ExtractValue(rec.Properties[key])

		if strings.Contains(lower, "tag") {
			for _, t := range toList(v) {
				add(t)
			}
			continue
		}

		if isImplicitTagKey(lower) {
			if s, ok := v.(string); ok && len(strings.TrimSpace(s)) <= maxImplicitTagLength {
				add(s)
			}
		}
	}
	return tags
}

func isImplicitTagKey(key string) bool {
	return strings.Contains(key, "type") || strings.Contains(key, "role") || strings.Contains(key, "status")
}

func displayName(rec notion.Record) string {
	if name := strings.TrimSpace(rec.DisplayName); name != "" {
		return name
	}
	return "Untitled"
}
