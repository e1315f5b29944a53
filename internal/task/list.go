package task

import (
	"errors"
	"strings"
)

// ErrOutOfBounds is returned when an index resolves to no existing task.
var ErrOutOfBounds = errors.New("index out of bounds")

// List is an ordered, insertion-order-preserving collection of tasks.
// Indices are 0-based; callers presenting tasks to users number from 1.
type List struct {
	tasks []Task
}

// NewList creates a List seeded with the given tasks.
func NewList(tasks ...Task) *List {
	return &List{tasks: append([]Task(nil), tasks...)}
}

// Add appends a task to the end of the list.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// Len returns the number of tasks in the list.
func (l *List) Len() int {
	return len(l.tasks)
}

// Get returns the task at index i.
func (l *List) Get(i int) (Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, ErrOutOfBounds
	}
	return l.tasks[i], nil
}

// Mark sets the task at index i as done and returns the updated task.
func (l *List) Mark(i int) (Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, ErrOutOfBounds
	}
	l.tasks[i].Done = true
	return l.tasks[i], nil
}

// Unmark sets the task at index i as not done and returns the updated task.
func (l *List) Unmark(i int) (Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, ErrOutOfBounds
	}
	l.tasks[i].Done = false
	return l.tasks[i], nil
}

// Remove deletes the task at index i, compacting the list, and returns the
// removed task.
func (l *List) Remove(i int) (Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, ErrOutOfBounds
	}
	t := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return t, nil
}

// Find returns the tasks whose description contains keyword as a
// case-sensitive substring, preserving list order.
func (l *List) Find(keyword string) []Task {
	var matches []Task
	for _, t := range l.tasks {
		if strings.Contains(t.Description, keyword) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Tasks returns a copy of the underlying task slice in list order.
func (l *List) Tasks() []Task {
	return append([]Task(nil), l.tasks...)
}
