package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/auth"
	"github.com/mrlokans/storyplanner/internal/notion"
	"github.com/mrlokans/storyplanner/internal/services"
)

// NotionImportRequest is the body of POST /api/import/notion.
type NotionImportRequest struct {
	References  []string `json:"references"`
	Token       string   `json:"token"`
	ProjectName string   `json:"project_name"`
}

// ValidateTokenRequest is the body of POST /api/import/notion/validate.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

type NotionImportController struct {
	importer  NotionImporter
	validator TokenValidator
	gate      EligibilityChecker
	logger    *zap.Logger
}

func NewNotionImportController(importer NotionImporter, validator TokenValidator, gate EligibilityChecker, logger *zap.Logger) *NotionImportController {
	return &NotionImportController{
		importer:  importer,
		validator: validator,
		gate:      gate,
		logger:    logger,
	}
}

// Import handles POST /api/import/notion
func (nc *NotionImportController) Import(c *gin.Context) {
	var req NotionImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		respondBadRequest(c, "token is required")
		return
	}

	report, err := nc.importer.Run(c.Request.Context(), services.ImportRequest{
		References:  compactReferences(req.References),
		Token:       strings.TrimSpace(req.Token),
		ProjectName: req.ProjectName,
		UserID:      auth.GetUserID(c),
	})

	switch {
	case err == nil:
		c.JSON(http.StatusOK, report)
	case errors.Is(err, services.ErrNoReferences):
		respondError(c, http.StatusBadRequest, "no_references", err.Error())
	case errors.Is(err, notion.ErrAuthentication):
		respondError(c, http.StatusUnauthorized, "invalid_token", "the Notion token is invalid or has been revoked")
	case errors.Is(err, services.ErrNotEligible):
		respondError(c, http.StatusForbidden, "not_eligible", err.Error())
	default:
		respondInternalError(c, nc.logger, err, "notion import")
	}
}

// ValidateToken handles POST /api/import/notion/validate
func (nc *NotionImportController) ValidateToken(c *gin.Context) {
	var req ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": nc.validator.ValidateToken(c.Request.Context(), strings.TrimSpace(req.Token)),
	})
}

// Eligibility handles GET /api/import/eligibility
func (nc *NotionImportController) Eligibility(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"eligible": nc.gate.CanImport(c.Request.Context(), auth.GetUserID(c)),
	})
}

// compactReferences drops blank entries so that a form with an empty row
// does not produce a per-reference error.
func compactReferences(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
