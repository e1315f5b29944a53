package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mkwee/taskbot/internal/config"
	"github.com/mkwee/taskbot/internal/session"
	"github.com/mkwee/taskbot/internal/storage"
	"github.com/mkwee/taskbot/internal/task"
)

// loadConfig reads the config file named by the root --config flag.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openTasks opens the task store and loads the saved list. A load failure
// degrades to an empty list; the first run has nothing saved yet.
func openTasks(ctx context.Context, cfg *config.Config) (*storage.Store, *task.List, error) {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open task store: %w", err)
	}

	list, err := store.Load(ctx)
	if err != nil {
		slog.Warn("failed to load saved tasks, starting empty", "error", err)
		list = task.NewList()
	}
	return store, list, nil
}

// historyRecorder returns the command history log, or nil when disabled.
func historyRecorder(cfg *config.Config) session.Recorder {
	if cfg.History.Disabled {
		return nil
	}
	return storage.NewHistory(cfg.History.Path)
}
