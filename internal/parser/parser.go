// Package parser classifies raw input lines and turns them into command
// values, validating and extracting arguments along the way.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mkwee/taskbot/internal/command"
	"github.com/mkwee/taskbot/internal/task"
)

// Indexed commands accept 1-100 with no leading zero; the whole line must
// match, so trailing garbage falls through to "unrecognized".
var (
	markRe   = regexp.MustCompile(`^mark (100|[1-9]|[1-9][0-9])$`)
	unmarkRe = regexp.MustCompile(`^unmark (100|[1-9]|[1-9][0-9])$`)
	deleteRe = regexp.MustCompile(`^delete (100|[1-9]|[1-9][0-9])$`)
)

// Parse converts one line of input into a Command. It returns
// *InvalidInputError when a recognized command carries bad arguments and
// *UnrecognizedError when the line matches no command shape. Classification
// precedence is fixed: a line is tried against each shape in this order and
// the first match wins.
func Parse(raw string) (command.Command, error) {
	switch {
	case raw == "bye":
		return command.Bye{}, nil
	case markRe.MatchString(raw):
		return parseMark(raw)
	case raw == "list":
		return command.List{}, nil
	case deleteRe.MatchString(raw):
		return parseDelete(raw)
	case firstToken(raw) == "find":
		return parseFind(raw)
	case unmarkRe.MatchString(raw):
		return parseUnmark(raw)
	case firstToken(raw) == "todo":
		return parseTodo(raw)
	case firstToken(raw) == "deadline":
		return parseDeadline(raw)
	case firstToken(raw) == "event":
		return parseEvent(raw)
	default:
		return nil, &UnrecognizedError{Input: raw}
	}
}

func parseMark(raw string) (command.Command, error) {
	n, ok := secondTokenInt(raw)
	if !ok {
		return nil, &InvalidInputError{Command: "mark"}
	}
	return command.Mark{Index: n}, nil
}

func parseUnmark(raw string) (command.Command, error) {
	n, ok := secondTokenInt(raw)
	if !ok {
		return nil, &InvalidInputError{Command: "unmark"}
	}
	return command.Unmark{Index: n}, nil
}

func parseDelete(raw string) (command.Command, error) {
	n, ok := secondTokenInt(raw)
	if !ok {
		return nil, &InvalidInputError{Command: "delete"}
	}
	return command.Delete{Index: n}, nil
}

func parseFind(raw string) (command.Command, error) {
	parts := splitTokens(raw)
	if len(parts) < 2 {
		return nil, &InvalidInputError{Command: "find"}
	}
	return command.Find{Keyword: parts[1]}, nil
}

func parseTodo(raw string) (command.Command, error) {
	// Description starts at the fixed offset past "todo ".
	if len(raw) < len("todo ") {
		return nil, &InvalidInputError{Command: "todo"}
	}
	return command.AddTodo{Task: task.NewTodo(raw[len("todo "):])}, nil
}

func parseDeadline(raw string) (command.Command, error) {
	description, ok := between(raw, "deadline", "/by")
	if !ok {
		return nil, &InvalidInputError{Command: "deadline"}
	}
	by, ok := after(raw, "/by")
	if !ok {
		return nil, &InvalidInputError{Command: "deadline"}
	}
	return command.AddDeadline{Task: task.NewDeadline(description, by)}, nil
}

func parseEvent(raw string) (command.Command, error) {
	description, ok := between(raw, "event", "/from")
	if !ok {
		return nil, &InvalidInputError{Command: "event"}
	}
	from, ok := between(raw, "/from", "/to")
	if !ok {
		return nil, &InvalidInputError{Command: "event"}
	}
	to, ok := after(raw, "/to")
	if !ok {
		return nil, &InvalidInputError{Command: "event"}
	}
	return command.AddEvent{Task: task.NewEvent(description, from, to)}, nil
}

// firstToken returns the text before the first space.
func firstToken(raw string) string {
	return strings.Split(raw, " ")[0]
}

// splitTokens splits on single spaces, dropping empty trailing tokens so that
// a line ending in a separator has no phantom argument.
func splitTokens(raw string) []string {
	parts := strings.Split(raw, " ")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// secondTokenInt parses the second whitespace-delimited token as an integer.
func secondTokenInt(raw string) (int, bool) {
	parts := splitTokens(raw)
	if len(parts) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// between extracts the text strictly between the first occurrence of prefix
// and the first occurrence of marker, skipping exactly one separator
// character after the prefix and at most one before the marker. A missing or
// out-of-order marker fails the extraction rather than being reported as a
// distinct condition.
func between(raw, prefix, marker string) (string, bool) {
	p := strings.Index(raw, prefix)
	if p == -1 {
		return "", false
	}
	start := p + len(prefix) + 1
	end := strings.Index(raw, marker)
	if end == -1 || start > end {
		return "", false
	}
	return strings.TrimSuffix(raw[start:end], " "), true
}

// after extracts the text from one character past the first occurrence of
// prefix to the end of the line.
func after(raw, prefix string) (string, bool) {
	p := strings.Index(raw, prefix)
	if p == -1 {
		return "", false
	}
	start := p + len(prefix) + 1
	if start > len(raw) {
		return "", false
	}
	return raw[start:], true
}
