package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mrlokans/storyplanner/internal/auth"
	"github.com/mrlokans/storyplanner/internal/entities"
)

type ProjectsController struct {
	projects ProjectReader
	outlines OutlineReader
	logger   *zap.Logger
}

func NewProjectsController(projects ProjectReader, outlines OutlineReader, logger *zap.Logger) *ProjectsController {
	return &ProjectsController{projects: projects, outlines: outlines, logger: logger}
}

// ListProjects handles GET /api/projects
func (pc *ProjectsController) ListProjects(c *gin.Context) {
	projects, err := pc.projects.ListProjectsForUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		respondInternalError(c, pc.logger, err, "list projects")
		return
	}
	if projects == nil {
		projects = []entities.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject handles GET /api/projects/:id
// Returns the project with per-type entity counts.
func (pc *ProjectsController) GetProject(c *gin.Context) {
	project, ok := pc.ownedProject(c)
	if !ok {
		return
	}

	counts, err := pc.outlines.CountEntities(c.Request.Context(), project.ID)
	if err != nil {
		respondInternalError(c, pc.logger, err, "count entities")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": project,
		"counts":  counts,
	})
}

// GetOutline handles GET /api/projects/:id/outline
func (pc *ProjectsController) GetOutline(c *gin.Context) {
	project, ok := pc.ownedProject(c)
	if !ok {
		return
	}

	acts, err := pc.outlines.GetOutline(c.Request.Context(), project.ID)
	if err != nil {
		respondInternalError(c, pc.logger, err, "get outline")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project_id": project.ID,
		"acts":       acts,
	})
}

// ownedProject loads the :id project and hides projects of other users.
func (pc *ProjectsController) ownedProject(c *gin.Context) (*entities.Project, bool) {
	project, err := pc.projects.GetProjectByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && project.UserID != auth.GetUserID(c)) {
		respondNotFound(c, "project")
		return nil, false
	}
	if err != nil {
		respondInternalError(c, pc.logger, err, "get project")
		return nil, false
	}
	return project, true
}
