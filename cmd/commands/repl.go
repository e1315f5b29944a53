package commands

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mkwee/taskbot/internal/session"
	"github.com/mkwee/taskbot/internal/ui"
)

// NewReplCommand returns the repl subcommand.
func NewReplCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "Run the interactive task session",
		Action: runRepl,
	}
}

func runRepl(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, list, err := openTasks(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	sess := &session.Session{
		Name:    cfg.UI.Name,
		List:    list,
		Out:     ui.NewConsole(os.Stdout, !cfg.UI.NoColor),
		Store:   store,
		History: historyRecorder(cfg),
	}
	return sess.Run(ctx, os.Stdin)
}
