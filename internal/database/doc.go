// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── projects/        # Import projects
//	├── story/           # Planning entities written by the importer
//	├── profiles/        # Subscription and trial state
//	└── audit/           # Audit trail of import runs
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./storyplanner.db", logger)
//
//	// Create domain-specific repositories
//	projectsRepo := projects.NewRepository(db.DB)
//	storyRepo := story.NewRepository(db.DB)
//
//	// Use repositories
//	outline, err := storyRepo.GetOutline(ctx, projectID)
//
// # Interface Implementations
//
//   - projects.Repository: implements importers.ProjectStore
//   - story.Repository: implements importers.EntityStore
//   - profiles.Repository: implements services.ProfileReader
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register the model in database.Models
//  5. Add compile-time interface check: var _ SomeInterface = (*Repository)(nil)
package database
