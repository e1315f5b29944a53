package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mkwee/taskbot/internal/executor"
	"github.com/mkwee/taskbot/internal/parser"
	"github.com/mkwee/taskbot/internal/ui"
)

// NewExecCommand returns the exec subcommand.
func NewExecCommand() *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Parse and execute a single command line against the stored list",
		ArgsUsage: "\"<command line>\"",
		Action:    runExec,
	}
}

func runExec(ctx context.Context, cmd *cli.Command) error {
	line := cmd.Args().First()
	if line == "" {
		return fmt.Errorf("usage: taskbot exec \"todo read book\"")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, list, err := openTasks(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	out := ui.NewConsole(os.Stdout, !cfg.UI.NoColor)

	parsed, err := parser.Parse(line)
	if err != nil {
		// Parse failures are user-facing chat responses, not CLI errors.
		out.Print(err.Error())
		return nil
	}

	if rec := historyRecorder(cfg); rec != nil {
		if err := rec.Append(line); err != nil {
			return fmt.Errorf("record history: %w", err)
		}
	}

	executor.Execute(parsed, list, out)
	return store.Save(ctx, list)
}
