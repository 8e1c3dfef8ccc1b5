package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/auth"
)

type AuditController struct {
	events AuditEventReader
	logger *zap.Logger
}

func NewAuditController(events AuditEventReader, logger *zap.Logger) *AuditController {
	return &AuditController{events: events, logger: logger}
}

// GetAuditEvents returns the caller's audit events, newest first.
// GET /api/audit
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	limit, offset := parsePagination(c, 25, 100)

	events, total, err := ac.events.GetEvents(c.Request.Context(), auth.GetUserID(c), limit, offset)
	if err != nil {
		respondInternalError(c, ac.logger, err, "audit events")
		return
	}

	c.JSON(http.StatusOK, newPaginatedResponse(events, total, limit, offset))
}
