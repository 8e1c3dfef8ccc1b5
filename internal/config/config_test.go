package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, DefaultNotionAPIURL, cfg.Notion.BaseURL)
	assert.Equal(t, DefaultNotionVersion, cfg.Notion.Version)
	assert.Equal(t, 100, cfg.Notion.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Notion.Timeout)
	assert.True(t, cfg.Notion.FetchPageContent)
	assert.Equal(t, 30, cfg.Audit.RetentionDays)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NOTION_PAGE_SIZE", "25")
	t.Setenv("NOTION_FETCH_PAGE_CONTENT", "false")
	t.Setenv("DATABASE_PATH", "/tmp/planner.db")

	cfg := NewConfig()

	assert.Equal(t, 25, cfg.Notion.PageSize)
	assert.False(t, cfg.Notion.FetchPageContent)
	assert.Equal(t, "/tmp/planner.db", cfg.Database.Path)
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, 100, clampPageSize(0))
	assert.Equal(t, 100, clampPageSize(500))
	assert.Equal(t, 10, clampPageSize(10))
}
