package ui

import (
	"strings"
	"testing"
)

func TestConsolePlainPassthrough(t *testing.T) {
	var sb strings.Builder
	c := NewConsole(&sb, false)

	c.Print(Divider)
	c.Print("Got it. I've added this task:")

	want := Divider + "\nGot it. I've added this task:\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestCaptureRecordsInOrder(t *testing.T) {
	c := &Capture{}
	c.Print("a")
	c.Print("b")

	if len(c.Lines) != 2 || c.Lines[0] != "a" || c.Lines[1] != "b" {
		t.Errorf("Lines = %q", c.Lines)
	}
}

func TestIsTaskLine(t *testing.T) {
	for _, line := range []string{
		"[T][ ] read book",
		"[D][X] return book (by: Sun)",
		"12.[E][ ] meeting (from: a to: b)",
	} {
		if !isTaskLine(line) {
			t.Errorf("isTaskLine(%q) = false, want true", line)
		}
	}
	for _, line := range []string{
		"Here are the tasks in your list:",
		"index out of bounds",
	} {
		if isTaskLine(line) {
			t.Errorf("isTaskLine(%q) = true, want false", line)
		}
	}
}
