// Package session runs the interactive read-eval loop: one command per input
// line, parsed and executed to completion before the next line is read.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mkwee/taskbot/internal/executor"
	"github.com/mkwee/taskbot/internal/parser"
	"github.com/mkwee/taskbot/internal/task"
	"github.com/mkwee/taskbot/internal/ui"
)

// Persister saves the task list at shutdown.
type Persister interface {
	Save(ctx context.Context, list *task.List) error
}

// Recorder appends accepted input lines to the command history.
type Recorder interface {
	Append(input string) error
}

// Session owns the task list for the duration of one interactive run.
// Store and History may be nil, in which case the session is purely
// in-memory.
type Session struct {
	Name    string
	List    *task.List
	Out     ui.Output
	Store   Persister
	History Recorder
}

// Run reads command lines from in until a bye command or end of input, then
// saves the task list. Parse failures and bounds failures are reported
// through the output sink and never end the session.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.Out.Print(ui.Divider)
	s.Out.Print(fmt.Sprintf("Hello! I'm %s", s.Name))
	s.Out.Print("What can I do for you?")
	s.Out.Print(ui.Divider)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		cmd, err := parser.Parse(line)
		if err != nil {
			s.Out.Print(err.Error())
			continue
		}

		if s.History != nil {
			if err := s.History.Append(line); err != nil {
				slog.Warn("failed to record history", "error", err)
			}
		}

		if executor.Execute(cmd, s.List, s.Out).Quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if s.Store != nil {
		if err := s.Store.Save(ctx, s.List); err != nil {
			return fmt.Errorf("save tasks: %w", err)
		}
	}
	return nil
}
