// Package commands wires the taskbot CLI tree.
package commands

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mkwee/taskbot/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "taskbot",
		Usage: "Your personal task-tracking assistant",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			NewReplCommand(),
			NewExecCommand(),
			NewTasksCommand(),
			NewHistoryCommand(),
			NewTUICommand(),
		},
		DefaultCommand: "repl",
	}
}
