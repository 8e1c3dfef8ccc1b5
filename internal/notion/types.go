package notion

import (
	"encoding/json"
)

// PropertyType is the declared kind of a property value. The set is closed:
// ExtractValue has one branch per known type and passes anything else through.
type PropertyType string

const (
	PropertyTitle          PropertyType = "title"
	PropertyRichText       PropertyType = "rich_text"
	PropertyNumber         PropertyType = "number"
	PropertySelect         PropertyType = "select"
	PropertyStatus         PropertyType = "status"
	PropertyMultiSelect    PropertyType = "multi_select"
	PropertyDate           PropertyType = "date"
	PropertyCheckbox       PropertyType = "checkbox"
	PropertyRelation       PropertyType = "relation"
	PropertyPeople         PropertyType = "people"
	PropertyFiles          PropertyType = "files"
	PropertyFormula        PropertyType = "formula"
	PropertyRollup         PropertyType = "rollup"
	PropertyURL            PropertyType = "url"
	PropertyEmail          PropertyType = "email"
	PropertyPhoneNumber    PropertyType = "phone_number"
	PropertyCreatedTime    PropertyType = "created_time"
	PropertyLastEditedTime PropertyType = "last_edited_time"
	PropertyUniqueID       PropertyType = "unique_id"
)

// Property is one raw property value of a page, as returned by the Notion API.
// Only the field matching Type is populated.
type Property struct {
	ID             string         `json:"id,omitempty"`
	Type           PropertyType   `json:"type"`
	Title          []RichText     `json:"title,omitempty"`
	RichText       []RichText     `json:"rich_text,omitempty"`
	Number         *float64       `json:"number,omitempty"`
	Select         *SelectOption  `json:"select,omitempty"`
	Status         *SelectOption  `json:"status,omitempty"`
	MultiSelect    []SelectOption `json:"multi_select,omitempty"`
	Date           *DateValue     `json:"date,omitempty"`
	Checkbox       bool           `json:"checkbox,omitempty"`
	Relation       []PageRef      `json:"relation,omitempty"`
	People         []User         `json:"people,omitempty"`
	Files          []File         `json:"files,omitempty"`
	Formula        *Formula       `json:"formula,omitempty"`
	Rollup         *Rollup        `json:"rollup,omitempty"`
	URL            *string        `json:"url,omitempty"`
	Email          *string        `json:"email,omitempty"`
	PhoneNumber    *string        `json:"phone_number,omitempty"`
	CreatedTime    string         `json:"created_time,omitempty"`
	LastEditedTime string         `json:"last_edited_time,omitempty"`
	UniqueID       *UniqueID      `json:"unique_id,omitempty"`
}

type RichText struct {
	Type      string     `json:"type,omitempty"`
	PlainText string     `json:"plain_text"`
	Text      *TextValue `json:"text,omitempty"`
	Href      *string    `json:"href,omitempty"`
}

type TextValue struct {
	Content string `json:"content"`
}

type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type DateValue struct {
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

type PageRef struct {
	ID string `json:"id"`
}

type User struct {
	Object string `json:"object,omitempty"`
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
}

type File struct {
	Name     string    `json:"name"`
	Type     string    `json:"type,omitempty"`
	File     *FileLink `json:"file,omitempty"`
	External *FileLink `json:"external,omitempty"`
}

type FileLink struct {
	URL string `json:"url"`
}

type Formula struct {
	Type    string     `json:"type"`
	String  *string    `json:"string,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
}

type Rollup struct {
	Type   string     `json:"type"`
	Number *float64   `json:"number,omitempty"`
	Date   *DateValue `json:"date,omitempty"`
	Array  []Property `json:"array,omitempty"`
}

type UniqueID struct {
	Prefix *string `json:"prefix,omitempty"`
	Number *int    `json:"number,omitempty"`
}

// Database is the metadata of a Notion database (a source collection).
type Database struct {
	ID         string                    `json:"id"`
	Title      []RichText                `json:"title"`
	URL        string                    `json:"url,omitempty"`
	Properties map[string]PropertySchema `json:"properties"`
}

type PropertySchema struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type PropertyType `json:"type"`
}

// Page is one row of a database.
type Page struct {
	ID         string              `json:"id"`
	URL        string              `json:"url,omitempty"`
	Archived   bool                `json:"archived,omitempty"`
	InTrash    bool                `json:"in_trash,omitempty"`
	Properties map[string]Property `json:"properties"`
}

type queryRequest struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// QueryResponse is one page of database query results.
type QueryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// Block is a content block of a page. Text-bearing block types keep their
// rich text under a key named after the block type.
type Block struct {
	ID          string
	Type        string
	HasChildren bool
	RichText    []RichText
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var head struct {
		ID          string `json:"id"`
		Type        string `json:"type"`
		HasChildren bool   `json:"has_children"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	b.ID = head.ID
	b.Type = head.Type
	b.HasChildren = head.HasChildren

	body, ok := raw[head.Type]
	if !ok {
		return nil
	}
	var content struct {
		RichText []RichText `json:"rich_text"`
	}
	// Non-text blocks (images, dividers, ...) have bodies without rich_text.
	if err := json.Unmarshal(body, &content); err == nil {
		b.RichText = content.RichText
	}
	return nil
}

type blockChildrenResponse struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type apiErrorBody struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
