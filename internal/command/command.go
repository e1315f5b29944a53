// Package command defines the closed set of instructions the parser produces
// and the executor consumes. A Command is immutable and fully resolved: no
// further parsing happens during execution.
package command

import "github.com/mkwee/taskbot/internal/task"

// Command is one validated instruction derived from a single input line.
// The set of implementations is closed; the executor dispatches over it with
// an exhaustive type switch.
type Command interface {
	isCommand()
}

// Bye ends the session. It never mutates the task list.
type Bye struct{}

// List reports every task in order.
type List struct{}

// Find reports the tasks whose description contains Keyword.
type Find struct {
	Keyword string
}

// Mark flags the task at the 1-based Index as done.
type Mark struct {
	Index int
}

// Unmark flags the task at the 1-based Index as not done.
type Unmark struct {
	Index int
}

// Delete removes the task at the 1-based Index.
type Delete struct {
	Index int
}

// AddTodo appends a plain todo task.
type AddTodo struct {
	Task task.Task
}

// AddDeadline appends a deadline task.
type AddDeadline struct {
	Task task.Task
}

// AddEvent appends an event task.
type AddEvent struct {
	Task task.Task
}

func (Bye) isCommand()         {}
func (List) isCommand()        {}
func (Find) isCommand()        {}
func (Mark) isCommand()        {}
func (Unmark) isCommand()      {}
func (Delete) isCommand()      {}
func (AddTodo) isCommand()     {}
func (AddDeadline) isCommand() {}
func (AddEvent) isCommand()    {}
