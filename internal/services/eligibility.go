package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/logging"
)

// EligibilityGate allows imports for users with an active subscription or
// an unexpired trial. Any lookup failure denies the import.
type EligibilityGate struct {
	profiles ProfileReader
	logger   *zap.Logger
	now      func() time.Time
}

// NewEligibilityGate creates a gate backed by the given profile store.
func NewEligibilityGate(profiles ProfileReader, logger *zap.Logger) *EligibilityGate {
	return &EligibilityGate{
		profiles: profiles,
		logger:   logging.OrNop(logger).Named("eligibility"),
		now:      time.Now,
	}
}

func (g *EligibilityGate) CanImport(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}

	profile, err := g.profiles.GetProfile(ctx, userID)
	if err != nil || profile == nil {
		g.logger.Warn("eligibility lookup failed, denying import",
			zap.String("user", userID),
			zap.Error(err))
		return false
	}

	if profile.SubscriptionStatus == entities.SubscriptionActive {
		return true
	}
	return profile.TrialEndsAt != nil && profile.TrialEndsAt.After(g.now())
}
