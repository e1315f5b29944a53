package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/mkwee/taskbot/internal/task"
)

// NewTasksCommand returns the tasks subcommand.
func NewTasksCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "Inspect the stored task list",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all stored tasks",
				Action: runTasksList,
			},
			{
				Name:   "export",
				Usage:  "Export the stored tasks as YAML",
				Action: runTasksExport,
			},
		},
		DefaultCommand: "list",
	}
}

func runTasksList(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, list, err := openTasks(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if list.Len() == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKIND\tDONE\tDESCRIPTION\tWHEN")
	for i, t := range list.Tasks() {
		done := " "
		if t.Done {
			done = "x"
		}
		when := "-"
		switch t.Kind {
		case task.KindDeadline:
			when = "by " + t.By
		case task.KindEvent:
			when = fmt.Sprintf("from %s to %s", t.From, t.To)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, t.Kind, done, t.Description, when)
	}
	return w.Flush()
}

// exportedTask is the YAML shape of one task.
type exportedTask struct {
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
	Done        bool   `yaml:"done"`
	By          string `yaml:"by,omitempty"`
	From        string `yaml:"from,omitempty"`
	To          string `yaml:"to,omitempty"`
}

func runTasksExport(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, list, err := openTasks(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	exported := make([]exportedTask, 0, list.Len())
	for _, t := range list.Tasks() {
		exported = append(exported, exportedTask{
			Kind:        string(t.Kind),
			Description: t.Description,
			Done:        t.Done,
			By:          t.By,
			From:        t.From,
			To:          t.To,
		})
	}

	data, err := yaml.Marshal(exported)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
