package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/importers"
	"github.com/mrlokans/storyplanner/internal/logging"
	"github.com/mrlokans/storyplanner/internal/notion"
)

// ErrNotEligible indicates the user has neither an active subscription nor
// a running trial.
var ErrNotEligible = errors.New("an active subscription or trial is required to import")

// ErrNoReferences indicates an import request without any collection.
var ErrNoReferences = errors.New("at least one collection reference is required")

// ImportRequest is the inbound contract of a Notion import. The token is
// used for the duration of the run and never stored.
type ImportRequest struct {
	References  []string
	Token       string
	ProjectName string
	UserID      string
}

// ImportService is the entry point for Notion imports. It checks
// eligibility and the token before fetching anything, then hands the
// fetched collections to the import pipeline.
type ImportService struct {
	gate    EligibilityChecker
	loader  CollectionLoader
	runner  ImportRunner
	auditor ImportAuditor
	logger  *zap.Logger
}

// NewImportService creates a new ImportService. auditor may be nil.
func NewImportService(gate EligibilityChecker, loader CollectionLoader, runner ImportRunner, auditor ImportAuditor, logger *zap.Logger) *ImportService {
	return &ImportService{
		gate:    gate,
		loader:  loader,
		runner:  runner,
		auditor: auditor,
		logger:  logging.OrNop(logger).Named("import"),
	}
}

// Run performs a full import. Fatal conditions (no references, ineligible
// user, bad token, project creation failure) are returned as errors;
// per-collection failures are listed in the report.
func (s *ImportService) Run(ctx context.Context, req ImportRequest) (report importers.Report, err error) {
	report = importers.NewReport()
	defer func() {
		if s.auditor != nil && !errors.Is(err, ErrNoReferences) {
			s.auditor.LogImport(req.UserID, report, err)
		}
	}()

	if len(req.References) == 0 {
		return report, ErrNoReferences
	}
	if !s.gate.CanImport(ctx, req.UserID) {
		return report, ErrNotEligible
	}
	if !s.loader.ValidateToken(ctx, req.Token) {
		return report, notion.ErrAuthentication
	}

	collections, loadErrors, err := s.load(ctx, req)
	if err != nil {
		return report, err
	}

	if len(collections) == 0 {
		report.Errors = append(report.Errors, loadErrors...)
		report.Finalize()
		s.logger.Warn("no collection could be loaded",
			zap.String("user", req.UserID),
			zap.Int("references", len(req.References)))
		return report, nil
	}

	report, err = s.runner.Run(ctx, collections, req.ProjectName, req.UserID, loadErrors...)
	if err != nil {
		return report, err
	}

	s.logger.Info("import finished",
		zap.String("user", req.UserID),
		zap.String("project", report.ProjectID),
		zap.Bool("success", report.Success),
		zap.Int("entities", report.Imported.Total()),
		zap.Int("errors", len(report.Errors)))
	return report, nil
}

// load fetches every reference in order. Failures are scoped to their
// reference, except an authentication failure which ends the run.
func (s *ImportService) load(ctx context.Context, req ImportRequest) ([]importers.Collection, []string, error) {
	var collections []importers.Collection
	var loadErrors []string

	for _, ref := range req.References {
		src, err := s.loader.LoadCollection(ctx, req.Token, ref)
		if err != nil {
			if errors.Is(err, notion.ErrAuthentication) {
				return nil, nil, err
			}
			s.logger.Warn("failed to load collection",
				zap.String("reference", ref),
				zap.Error(err))
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", ref, err))
			continue
		}

		col := importers.NewCollection(src)
		s.logger.Debug("collection classified",
			zap.String("collection", col.Name),
			zap.String("type", string(col.Type)),
			zap.Int("records", len(col.Records)))
		collections = append(collections, col)
	}

	return collections, loadErrors, nil
}
