package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/storyplanner/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.Profile{}))
	return db
}

func TestRepository_GetProfile_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_UpsertProfile(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	trialEnd := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	require.NoError(t, repo.UpsertProfile(ctx, &entities.Profile{
		UserID:             "u1",
		SubscriptionStatus: entities.SubscriptionNone,
		TrialEndsAt:        &trialEnd,
	}))

	profile, err := repo.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, entities.SubscriptionNone, profile.SubscriptionStatus)
	require.NotNil(t, profile.TrialEndsAt)
	assert.True(t, trialEnd.Equal(*profile.TrialEndsAt))

	require.NoError(t, repo.UpsertProfile(ctx, &entities.Profile{
		UserID:             "u1",
		SubscriptionStatus: entities.SubscriptionActive,
	}))

	profile, err = repo.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, entities.SubscriptionActive, profile.SubscriptionStatus)
	assert.Nil(t, profile.TrialEndsAt)
}
