package config

const (
	// DefaultDatabasePath is the default path for the planner database
	DefaultDatabasePath = "./storyplanner.db"

	DefaultNotionAPIURL  = "https://api.notion.com/v1"
	DefaultNotionVersion = "2022-06-28"
	MaxNotionPageSize    = 100
)
