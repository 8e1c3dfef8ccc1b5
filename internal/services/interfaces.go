package services

import (
	"context"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/importers"
	"github.com/mrlokans/storyplanner/internal/notion"
)

// ProfileReader provides read-only access to billing profiles.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*entities.Profile, error)
}

// CollectionLoader fetches collections from the remote workspace.
// Implemented by *notion.Client.
type CollectionLoader interface {
	ValidateToken(ctx context.Context, token string) bool
	LoadCollection(ctx context.Context, token, ref string) (*notion.Source, error)
}

// ImportRunner imports classified collections into a new project.
// Implemented by *importers.Pipeline.
type ImportRunner interface {
	Run(ctx context.Context, collections []importers.Collection, projectName, userID string, preErrors ...string) (importers.Report, error)
}

// EligibilityChecker decides whether a user may start an import.
type EligibilityChecker interface {
	CanImport(ctx context.Context, userID string) bool
}

// ImportAuditor records the outcome of import runs.
type ImportAuditor interface {
	LogImport(userID string, report importers.Report, err error)
}

// Compile-time interface checks
var (
	_ CollectionLoader   = (*notion.Client)(nil)
	_ ImportRunner       = (*importers.Pipeline)(nil)
	_ EligibilityChecker = (*EligibilityGate)(nil)
)
