package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/storyplanner/internal/entities"
)

type fakeProfiles struct {
	profiles map[string]*entities.Profile
	err      error
}

func (f *fakeProfiles) GetProfile(_ context.Context, userID string) (*entities.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func timePtr(t time.Time) *time.Time { return &t }

func TestEligibilityGate_CanImport(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	profiles := &fakeProfiles{profiles: map[string]*entities.Profile{
		"active":        {UserID: "active", SubscriptionStatus: entities.SubscriptionActive},
		"expired-trial": {UserID: "expired-trial", SubscriptionStatus: entities.SubscriptionCanceled, TrialEndsAt: timePtr(now.Add(-time.Hour))},
		"future-trial":  {UserID: "future-trial", SubscriptionStatus: entities.SubscriptionNone, TrialEndsAt: timePtr(now.Add(time.Hour))},
		"no-trial":      {UserID: "no-trial", SubscriptionStatus: entities.SubscriptionPastDue},
	}}

	gate := NewEligibilityGate(profiles, nil)
	gate.now = func() time.Time { return now }

	tests := []struct {
		userID string
		want   bool
	}{
		{"active", true},
		{"expired-trial", false},
		{"future-trial", true},
		{"no-trial", false},
		{"unknown", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.userID, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.CanImport(context.Background(), tt.userID))
		})
	}
}

func TestEligibilityGate_FailsClosed(t *testing.T) {
	gate := NewEligibilityGate(&fakeProfiles{err: errors.New("database is locked")}, nil)
	assert.False(t, gate.CanImport(context.Background(), "active"))
}
