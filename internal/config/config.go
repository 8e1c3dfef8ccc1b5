package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Notion
		Logging
		Audit
		Tasks
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Notion struct {
		BaseURL          string
		Version          string        // Sent as the Notion-Version header on every call
		PageSize         int           // Records requested per query page (max 100)
		Timeout          time.Duration // Per-request HTTP timeout
		FetchPageContent bool          // Pull block children of every record as free text
	}
	Logging struct {
		Level       string
		Development bool // Human-readable console output instead of JSON
	}
	Audit struct {
		RetentionDays   int
		CleanupSchedule string // Cron format: "30 3 * * *" = daily at 03:30
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("notion_api_url", DefaultNotionAPIURL)
	v.SetDefault("notion_version", DefaultNotionVersion)
	v.SetDefault("notion_page_size", 100)
	v.SetDefault("notion_timeout", "30s")
	v.SetDefault("notion_fetch_page_content", true)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_development", false)

	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("audit_cleanup_schedule", "30 3 * * *")

	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Notion: Notion{
			BaseURL:          v.GetString("NOTION_API_URL"),
			Version:          v.GetString("NOTION_VERSION"),
			PageSize:         clampPageSize(v.GetInt("NOTION_PAGE_SIZE")),
			Timeout:          v.GetDuration("NOTION_TIMEOUT"),
			FetchPageContent: v.GetBool("NOTION_FETCH_PAGE_CONTENT"),
		},
		Logging: Logging{
			Level:       v.GetString("LOG_LEVEL"),
			Development: v.GetBool("LOG_DEVELOPMENT"),
		},
		Audit: Audit{
			RetentionDays:   v.GetInt("AUDIT_RETENTION_DAYS"),
			CleanupSchedule: v.GetString("AUDIT_CLEANUP_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}

// Notion rejects page sizes above 100.
func clampPageSize(size int) int {
	if size <= 0 || size > MaxNotionPageSize {
		return MaxNotionPageSize
	}
	return size
}
