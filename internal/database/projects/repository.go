// Package projects provides database operations for import projects.
//
// # Usage
//
//	repo := projects.NewRepository(db)
//	err := repo.CreateProject(ctx, &entities.Project{ID: id, UserID: userID, Name: "Saga"})
package projects

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/importers"
)

// Repository handles all project database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new projects repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateProject inserts a new project.
func (r *Repository) CreateProject(ctx context.Context, project *entities.Project) error {
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(project).Error
}

// GetProjectByID retrieves a project by its ID.
func (r *Repository) GetProjectByID(ctx context.Context, id string) (*entities.Project, error) {
	var project entities.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjectsForUser returns a user's projects, newest first.
func (r *Repository) ListProjectsForUser(ctx context.Context, userID string) ([]entities.Project, error) {
	var projects []entities.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// Compile-time interface check
var _ importers.ProjectStore = (*Repository)(nil)
