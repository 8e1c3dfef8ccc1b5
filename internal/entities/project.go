package entities

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionNone     SubscriptionStatus = "none"
)

// Project is the container every imported entity belongs to.
type Project struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:64" json:"user_id"`
	Name      string    `gorm:"size:256" json:"name"`
	Source    string    `gorm:"size:50" json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile holds the billing state used to decide whether a user may import.
type Profile struct {
	UserID             string             `gorm:"primaryKey;size:64" json:"user_id"`
	SubscriptionStatus SubscriptionStatus `gorm:"size:30" json:"subscription_status"`
	TrialEndsAt        *time.Time         `json:"trial_ends_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// LegacyRecord is a flat copy of one source record, kept for older readers
// that predate the typed planning tables.
type LegacyRecord struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	ProjectID      string         `gorm:"index;size:36" json:"project_id"`
	UserID         string         `gorm:"index;size:64" json:"user_id"`
	CollectionName string         `gorm:"size:256" json:"collection_name"`
	CollectionType string         `gorm:"size:30" json:"collection_type"`
	SourceRecordID string         `gorm:"size:64" json:"source_record_id"`
	Title          string         `gorm:"size:512" json:"title"`
	Properties     map[string]any `gorm:"serializer:json" json:"properties"`
	Content        string         `gorm:"type:text" json:"content,omitempty"`
	ImportedAt     time.Time      `json:"imported_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (Profile) TableName() string {
	return "profiles"
}

func (LegacyRecord) TableName() string {
	return "imported_records"
}
