package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mkwee/taskbot/internal/command"
)

func TestParse_Bye(t *testing.T) {
	cmd, err := Parse("bye")
	if err != nil {
		t.Fatalf("Parse(bye) error = %v", err)
	}
	if _, ok := cmd.(command.Bye); !ok {
		t.Fatalf("Parse(bye) = %T, want command.Bye", cmd)
	}
}

func TestParse_ListExact(t *testing.T) {
	cmd, err := Parse("list")
	if err != nil {
		t.Fatalf("Parse(list) error = %v", err)
	}
	if _, ok := cmd.(command.List); !ok {
		t.Fatalf("Parse(list) = %T, want command.List", cmd)
	}

	// Anything but the exact text is not a list command.
	if _, err := Parse("list all"); err == nil {
		t.Error("Parse(list all) expected an error")
	}
}

func TestParse_IndexedAcceptsFullRange(t *testing.T) {
	for n := 1; n <= 100; n++ {
		for _, verb := range []string{"mark", "unmark", "delete"} {
			cmd, err := Parse(fmt.Sprintf("%s %d", verb, n))
			if err != nil {
				t.Fatalf("Parse(%s %d) error = %v", verb, n, err)
			}
			got := -1
			switch c := cmd.(type) {
			case command.Mark:
				got = c.Index
			case command.Unmark:
				got = c.Index
			case command.Delete:
				got = c.Index
			default:
				t.Fatalf("Parse(%s %d) = %T", verb, n, cmd)
			}
			if got != n {
				t.Fatalf("Parse(%s %d) index = %d", verb, n, got)
			}
		}
	}
}

func TestParse_IndexedRejectsBadNumbers(t *testing.T) {
	bad := []string{
		"mark 0",
		"mark 101",
		"mark 007",
		"mark abc",
		"mark",
		"mark 5 now",
		"mark  5",
		"unmark 0",
		"delete 1000",
	}
	for _, raw := range bad {
		_, err := Parse(raw)
		if err == nil {
			t.Errorf("Parse(%q) expected an error", raw)
			continue
		}
		var unrec *UnrecognizedError
		if !errors.As(err, &unrec) {
			t.Errorf("Parse(%q) error = %v, want UnrecognizedError", raw, err)
		}
	}
}

func TestParse_Todo(t *testing.T) {
	cmd, err := Parse("todo read book")
	if err != nil {
		t.Fatalf("Parse(todo read book) error = %v", err)
	}
	add, ok := cmd.(command.AddTodo)
	if !ok {
		t.Fatalf("Parse(todo read book) = %T, want command.AddTodo", cmd)
	}
	if add.Task.Description != "read book" {
		t.Errorf("description = %q, want %q", add.Task.Description, "read book")
	}
	if add.Task.Done {
		t.Error("new task should not be done")
	}
}

func TestParse_TodoMissingDescription(t *testing.T) {
	_, err := Parse("todo")
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("Parse(todo) error = %v, want InvalidInputError", err)
	}
	if invalid.Error() != "Invalid input for todo!" {
		t.Errorf("message = %q", invalid.Error())
	}
}

func TestParse_Deadline(t *testing.T) {
	cmd, err := Parse("deadline return book /by Sunday")
	if err != nil {
		t.Fatalf("Parse(deadline...) error = %v", err)
	}
	add, ok := cmd.(command.AddDeadline)
	if !ok {
		t.Fatalf("Parse(deadline...) = %T, want command.AddDeadline", cmd)
	}
	if add.Task.Description != "return book" {
		t.Errorf("description = %q, want %q", add.Task.Description, "return book")
	}
	if add.Task.By != "Sunday" {
		t.Errorf("by = %q, want %q", add.Task.By, "Sunday")
	}
}

func TestParse_DeadlineMissingMarker(t *testing.T) {
	for _, raw := range []string{"deadline return book", "deadline return book /by"} {
		_, err := Parse(raw)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("Parse(%q) error = %v, want InvalidInputError", raw, err)
			continue
		}
		if invalid.Command != "deadline" {
			t.Errorf("Parse(%q) command = %q", raw, invalid.Command)
		}
	}
}

func TestParse_Event(t *testing.T) {
	cmd, err := Parse("event project meeting /from Mon 2pm /to 4pm")
	if err != nil {
		t.Fatalf("Parse(event...) error = %v", err)
	}
	add, ok := cmd.(command.AddEvent)
	if !ok {
		t.Fatalf("Parse(event...) = %T, want command.AddEvent", cmd)
	}
	if add.Task.Description != "project meeting" {
		t.Errorf("description = %q, want %q", add.Task.Description, "project meeting")
	}
	if add.Task.From != "Mon 2pm" {
		t.Errorf("from = %q, want %q", add.Task.From, "Mon 2pm")
	}
	if add.Task.To != "4pm" {
		t.Errorf("to = %q, want %q", add.Task.To, "4pm")
	}
}

func TestParse_EventMarkersOutOfOrder(t *testing.T) {
	bad := []string{
		"event meeting",
		"event meeting /from Mon",
		"event meeting /to 4pm",
		"event meeting /to 4pm /from Mon",
	}
	for _, raw := range bad {
		_, err := Parse(raw)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("Parse(%q) error = %v, want InvalidInputError", raw, err)
		}
	}
}

func TestParse_Find(t *testing.T) {
	cmd, err := Parse("find book")
	if err != nil {
		t.Fatalf("Parse(find book) error = %v", err)
	}
	find, ok := cmd.(command.Find)
	if !ok {
		t.Fatalf("Parse(find book) = %T, want command.Find", cmd)
	}
	if find.Keyword != "book" {
		t.Errorf("keyword = %q, want %q", find.Keyword, "book")
	}
}

func TestParse_FindExtraTokensIgnored(t *testing.T) {
	cmd, err := Parse("find read book")
	if err != nil {
		t.Fatalf("Parse(find read book) error = %v", err)
	}
	if kw := cmd.(command.Find).Keyword; kw != "read" {
		t.Errorf("keyword = %q, want %q", kw, "read")
	}
}

func TestParse_FindMissingKeyword(t *testing.T) {
	for _, raw := range []string{"find", "find "} {
		_, err := Parse(raw)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("Parse(%q) error = %v, want InvalidInputError", raw, err)
		}
	}
}

func TestParse_Unrecognized(t *testing.T) {
	_, err := Parse("blah")
	var unrec *UnrecognizedError
	if !errors.As(err, &unrec) {
		t.Fatalf("Parse(blah) error = %v, want UnrecognizedError", err)
	}
	if unrec.Error() != "blah doesn't exist as a command" {
		t.Errorf("message = %q", unrec.Error())
	}
}

func TestParse_LeadingSpaceFailsClassification(t *testing.T) {
	_, err := Parse(" todo read book")
	var unrec *UnrecognizedError
	if !errors.As(err, &unrec) {
		t.Fatalf("Parse with leading space error = %v, want UnrecognizedError", err)
	}
}

// The extraction offsets are literal: exactly one character is skipped after
// each marker, so a marker not followed by a space eats into the next field.
func TestParse_LiteralOffsetBehavior(t *testing.T) {
	cmd, err := Parse("deadline x /bySunday")
	if err != nil {
		t.Fatalf("Parse(deadline x /bySunday) error = %v", err)
	}
	if by := cmd.(command.AddDeadline).Task.By; by != "unday" {
		t.Errorf("by = %q, want %q", by, "unday")
	}
}
