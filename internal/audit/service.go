package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/database/audit"
	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/importers"
	"github.com/mrlokans/storyplanner/internal/logging"
)

const maxMessageLength = 500

// Service provides high-level audit logging functionality.
type Service struct {
	repo   *audit.Repository
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logging.OrNop(logger).Named("audit")}
}

// Log records a generic audit event.
func (s *Service) Log(ctx context.Context, event *entities.AuditEvent) error {
	return s.repo.LogEvent(ctx, event)
}

// LogAsync records an audit event in the background (non-blocking).
// The write is detached from any request context.
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.repo.LogEvent(context.Background(), event); err != nil {
			s.logger.Error("failed to log audit event",
				zap.String("action", event.Action),
				zap.Error(err))
		}
	}()
}

// Wait blocks until all pending asynchronous writes have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// LogImport records the outcome of a Notion import run. err is the fatal
// error that stopped the run, if any.
func (s *Service) LogImport(userID string, report importers.Report, err error) {
	event := &entities.AuditEvent{
		UserID:      userID,
		EventType:   entities.AuditEventImport,
		Action:      "notion_import",
		Description: fmt.Sprintf("Imported %d entities from Notion", report.Imported.Total()),
		ProjectID:   report.ProjectID,
		Status:      importStatus(report, err),
	}

	metadata := map[string]any{
		"imported":     report.Imported,
		"errors_count": len(report.Errors),
	}
	if mdBytes, e := json.Marshal(metadata); e == nil {
		event.Metadata = string(mdBytes)
	}

	switch {
	case err != nil:
		event.Description = "Notion import failed"
		event.ErrorMsg = truncate(err.Error(), maxMessageLength)
	case len(report.Errors) > 0:
		event.ErrorMsg = truncate(report.Errors[0], maxMessageLength)
	}

	s.LogAsync(event)
}

// LogMaintenance records a background maintenance run.
func (s *Service) LogMaintenance(action, description string, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventMaintenance,
		Action:      action,
		Description: description,
		Status:      entities.AuditStatusSuccess,
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), maxMessageLength)
	}

	s.LogAsync(event)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(ctx context.Context, userID string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(ctx, userID, limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

func importStatus(report importers.Report, err error) entities.AuditStatus {
	switch {
	case err != nil || !report.Success:
		return entities.AuditStatusFailed
	case len(report.Errors) > 0:
		return entities.AuditStatusPartial
	default:
		return entities.AuditStatusSuccess
	}
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
