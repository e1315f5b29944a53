// Package task defines the task variants tracked by taskbot and the ordered
// list they live in.
package task

import "fmt"

// Kind discriminates the closed set of task variants.
type Kind string

const (
	KindTodo     Kind = "todo"
	KindDeadline Kind = "deadline"
	KindEvent    Kind = "event"
)

// Task is one tracked unit of work. By is set only for deadlines; From and To
// only for events. All time fields are free text, not calendar values.
type Task struct {
	Kind        Kind   `json:"kind"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	By          string `json:"by,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
}

// NewTodo creates a plain todo task.
func NewTodo(description string) Task {
	return Task{Kind: KindTodo, Description: description}
}

// NewDeadline creates a deadline task due by the given free-text marker.
func NewDeadline(description, by string) Task {
	return Task{Kind: KindDeadline, Description: description, By: by}
}

// NewEvent creates an event task spanning the given free-text interval.
func NewEvent(description, from, to string) Task {
	return Task{Kind: KindEvent, Description: description, From: from, To: to}
}

// typeMarker returns the single-letter marker used in the string form.
func (t Task) typeMarker() string {
	switch t.Kind {
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "T"
	}
}

// statusIcon returns "X" for done tasks and a space otherwise.
func (t Task) statusIcon() string {
	if t.Done {
		return "X"
	}
	return " "
}

// String renders the task in its user-facing form, e.g.
// "[D][ ] return book (by: Sunday)".
func (t Task) String() string {
	s := fmt.Sprintf("[%s][%s] %s", t.typeMarker(), t.statusIcon(), t.Description)
	switch t.Kind {
	case KindDeadline:
		s += fmt.Sprintf(" (by: %s)", t.By)
	case KindEvent:
		s += fmt.Sprintf(" (from: %s to: %s)", t.From, t.To)
	}
	return s
}
