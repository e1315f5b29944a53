package config

import (
	"os"
	"path/filepath"
)

// TaskbotPath returns the root directory for taskbot data.
// It uses $TASKBOT_HOME if set, otherwise defaults to ~/.taskbot.
func TaskbotPath() string {
	if v := os.Getenv("TASKBOT_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".taskbot")
	}
	return filepath.Join(home, ".taskbot")
}

// ConfigPath returns the path to the taskbot config file.
func ConfigPath() string {
	return filepath.Join(TaskbotPath(), "config.jsonc")
}

// DotenvPath returns the path to the taskbot .env file.
func DotenvPath() string {
	return filepath.Join(TaskbotPath(), ".env")
}
