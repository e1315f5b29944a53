// Package executor applies parsed commands to a task list and reports the
// outcome through an output sink.
package executor

import (
	"fmt"

	"github.com/mkwee/taskbot/internal/command"
	"github.com/mkwee/taskbot/internal/task"
	"github.com/mkwee/taskbot/internal/ui"
)

// Outcome describes what a command execution asked of the enclosing loop.
type Outcome struct {
	Quit bool
}

// Execute applies cmd to list, reporting through out. Out-of-bounds indices
// are reported and recovered here; parse errors never reach this function.
func Execute(cmd command.Command, list *task.List, out ui.Output) Outcome {
	switch c := cmd.(type) {
	case command.Bye:
		framed(out, "Bye. Hope to see you again soon!")
		return Outcome{Quit: true}
	case command.List:
		printList(out, "Here are the tasks in your list:", list.Tasks())
	case command.Find:
		printList(out, "Here are the matching tasks in your list:", list.Find(c.Keyword))
	case command.Mark:
		t, err := list.Mark(c.Index - 1)
		if err != nil {
			out.Print("index out of bounds")
			return Outcome{}
		}
		framed(out, "Nice! I've marked this task as done:", t.String())
	case command.Unmark:
		t, err := list.Unmark(c.Index - 1)
		if err != nil {
			out.Print("index out of bounds")
			return Outcome{}
		}
		framed(out, "OK, I've marked this task as not done yet:", t.String())
	case command.Delete:
		t, err := list.Remove(c.Index - 1)
		if err != nil {
			out.Print("index out of bounds")
			return Outcome{}
		}
		framed(out, "Noted. I've removed this task:", t.String(), countLine(list))
	case command.AddTodo:
		addTask(out, list, c.Task)
	case command.AddDeadline:
		addTask(out, list, c.Task)
	case command.AddEvent:
		addTask(out, list, c.Task)
	}
	return Outcome{}
}

func addTask(out ui.Output, list *task.List, t task.Task) {
	list.Add(t)
	framed(out, "Got it. I've added this task:", t.String(), countLine(list))
}

func countLine(list *task.List) string {
	return fmt.Sprintf("Now you have %d tasks in the list.", list.Len())
}

// framed prints the given lines between two divider lines.
func framed(out ui.Output, lines ...string) {
	out.Print(ui.Divider)
	for _, line := range lines {
		out.Print(line)
	}
	out.Print(ui.Divider)
}

// printList prints a framed, 1-based numbered listing of tasks.
func printList(out ui.Output, header string, tasks []task.Task) {
	out.Print(ui.Divider)
	out.Print(header)
	for i, t := range tasks {
		out.Print(fmt.Sprintf("%d.%s", i+1, t))
	}
	out.Print(ui.Divider)
}
