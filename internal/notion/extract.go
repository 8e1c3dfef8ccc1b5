package notion

import (
	"fmt"
	"strings"
)

// ExtractValue converts a raw property into a plain value: string, float64,
// bool, []string or nil. Values that are not properties, and properties of an
// unknown type, are returned unchanged, so applying ExtractValue to its own
// output is a no-op.
func ExtractValue(v any) any {
	switch p := v.(type) {
	case Property:
		return extractProperty(p)
	case *Property:
		if p == nil {
			return nil
		}
		return extractProperty(*p)
	default:
		return v
	}
}

func extractProperty(p Property) any {
	switch p.Type {
	case PropertyTitle:
		return PlainText(p.Title)
	case PropertyRichText:
		return PlainText(p.RichText)
	case PropertyNumber:
		if p.Number == nil {
			return nil
		}
		return *p.Number
	case PropertySelect:
		return optionName(p.Select)
	case PropertyStatus:
		return optionName(p.Status)
	case PropertyMultiSelect:
		names := make([]string, 0, len(p.MultiSelect))
		for _, o := range p.MultiSelect {
			names = append(names, o.Name)
		}
		return names
	case PropertyDate:
		return dateValue(p.Date)
	case PropertyCheckbox:
		return p.Checkbox
	case PropertyRelation:
		ids := make([]string, 0, len(p.Relation))
		for _, r := range p.Relation {
			ids = append(ids, r.ID)
		}
		return ids
	case PropertyPeople:
		names := make([]string, 0, len(p.People))
		for _, u := range p.People {
			names = append(names, u.Name)
		}
		return names
	case PropertyFiles:
		names := make([]string, 0, len(p.Files))
		for _, f := range p.Files {
			names = append(names, fileName(f))
		}
		return names
	case PropertyFormula:
		return formulaValue(p.Formula)
	case PropertyRollup:
		return rollupValue(p.Rollup)
	case PropertyURL:
		return stringOrNil(p.URL)
	case PropertyEmail:
		return stringOrNil(p.Email)
	case PropertyPhoneNumber:
		return stringOrNil(p.PhoneNumber)
	case PropertyCreatedTime:
		return p.CreatedTime
	case PropertyLastEditedTime:
		return p.LastEditedTime
	case PropertyUniqueID:
		return uniqueIDValue(p.UniqueID)
	default:
		return p
	}
}

// PlainText concatenates the plain text of rich text fragments.
func PlainText(parts []RichText) string {
	var sb strings.Builder
	for _, part := range parts {
		if part.PlainText != "" {
			sb.WriteString(part.PlainText)
		} else if part.Text != nil {
			sb.WriteString(part.Text.Content)
		}
	}
	return sb.String()
}

func optionName(o *SelectOption) any {
	if o == nil {
		return nil
	}
	return o.Name
}

func dateValue(d *DateValue) any {
	if d == nil || d.Start == "" {
		return nil
	}
	return d.Start
}

func fileName(f File) string {
	if f.Name != "" {
		return f.Name
	}
	if f.External != nil {
		return f.External.URL
	}
	if f.File != nil {
		return f.File.URL
	}
	return ""
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func formulaValue(f *Formula) any {
	if f == nil {
		return nil
	}
	switch f.Type {
	case "string":
		return stringOrNil(f.String)
	case "number":
		if f.Number == nil {
			return nil
		}
		return *f.Number
	case "boolean":
		if f.Boolean == nil {
			return nil
		}
		return *f.Boolean
	case "date":
		return dateValue(f.Date)
	default:
		return nil
	}
}

// Array rollups flatten into a list of strings; scalar items are formatted.
func rollupValue(r *Rollup) any {
	if r == nil {
		return nil
	}
	switch r.Type {
	case "number":
		if r.Number == nil {
			return nil
		}
		return *r.Number
	case "date":
		return dateValue(r.Date)
	case "array":
		items := make([]string, 0, len(r.Array))
		for _, p := range r.Array {
			switch v := extractProperty(p).(type) {
			case nil:
			case string:
				if v != "" {
					items = append(items, v)
				}
			case []string:
				items = append(items, v...)
			default:
				items = append(items, fmt.Sprint(v))
			}
		}
		return items
	default:
		return nil
	}
}

func uniqueIDValue(u *UniqueID) any {
	if u == nil || u.Number == nil {
		return nil
	}
	if u.Prefix != nil && *u.Prefix != "" {
		return fmt.Sprintf("%s-%d", *u.Prefix, *u.Number)
	}
	return fmt.Sprintf("%d", *u.Number)
}
