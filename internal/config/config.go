// Package config loads taskbot configuration from a JSONC file, with env
// templating and a dotenv loader for the surrounding process environment.
package config

// Config is the root configuration for taskbot.
type Config struct {
	Storage StorageConfig `json:"storage"`
	History HistoryConfig `json:"history"`
	UI      UIConfig      `json:"ui"`
}

// StorageConfig holds task persistence settings.
type StorageConfig struct {
	DBPath string `json:"db_path"` // SQLite file (default: $TASKBOT_HOME/tasks.db)
}

// HistoryConfig holds the command history log settings.
type HistoryConfig struct {
	Disabled bool   `json:"disabled"`
	Path     string `json:"path"` // JSONL file (default: $TASKBOT_HOME/history.jsonl)
}

// UIConfig holds presentation settings.
type UIConfig struct {
	NoColor bool   `json:"no_color"`
	Name    string `json:"name"` // name used in the greeting (default: "taskbot")
}
