package task

import (
	"errors"
	"testing"
)

func TestListAddAndLen(t *testing.T) {
	l := NewList()
	if l.Len() != 0 {
		t.Fatalf("empty list Len() = %d", l.Len())
	}
	l.Add(NewTodo("read book"))
	l.Add(NewTodo("return laptop"))
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
}

func TestMarkUnmarkRoundTrip(t *testing.T) {
	l := NewList(NewDeadline("return book", "Sunday"))

	marked, err := l.Mark(0)
	if err != nil {
		t.Fatalf("Mark(0) error = %v", err)
	}
	if !marked.Done {
		t.Error("Mark(0) task not done")
	}

	unmarked, err := l.Unmark(0)
	if err != nil {
		t.Fatalf("Unmark(0) error = %v", err)
	}
	if unmarked.Done {
		t.Error("Unmark(0) task still done")
	}
	if unmarked.Description != "return book" || unmarked.By != "Sunday" {
		t.Errorf("round trip changed fields: %+v", unmarked)
	}
}

func TestOutOfBounds(t *testing.T) {
	l := NewList(NewTodo("a"))
	for _, i := range []int{-1, 1, 5} {
		if _, err := l.Get(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d) error = %v, want ErrOutOfBounds", i, err)
		}
		if _, err := l.Mark(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Mark(%d) error = %v, want ErrOutOfBounds", i, err)
		}
		if _, err := l.Remove(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Remove(%d) error = %v, want ErrOutOfBounds", i, err)
		}
	}
	if l.Len() != 1 {
		t.Errorf("failed operations mutated the list: Len() = %d", l.Len())
	}
}

func TestRemoveCompacts(t *testing.T) {
	l := NewList(NewTodo("a"), NewTodo("b"), NewTodo("c"))

	removed, err := l.Remove(1)
	if err != nil {
		t.Fatalf("Remove(1) error = %v", err)
	}
	if removed.Description != "b" {
		t.Errorf("removed = %q, want %q", removed.Description, "b")
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	// No gaps: "c" slid down to index 1.
	got, err := l.Get(1)
	if err != nil {
		t.Fatalf("Get(1) error = %v", err)
	}
	if got.Description != "c" {
		t.Errorf("Get(1) = %q, want %q", got.Description, "c")
	}
}

func TestFind(t *testing.T) {
	l := NewList(NewTodo("read book"), NewTodo("return laptop"))

	matches := l.Find("book")
	if len(matches) != 1 {
		t.Fatalf("Find(book) = %d matches, want 1", len(matches))
	}
	if matches[0].Description != "read book" {
		t.Errorf("match = %q, want %q", matches[0].Description, "read book")
	}
}

func TestFindIsCaseSensitiveAndOrdered(t *testing.T) {
	l := NewList(NewTodo("Book club"), NewTodo("read book"), NewTodo("buy bookmark"))

	matches := l.Find("book")
	if len(matches) != 2 {
		t.Fatalf("Find(book) = %d matches, want 2", len(matches))
	}
	if matches[0].Description != "read book" || matches[1].Description != "buy bookmark" {
		t.Errorf("matches out of order: %v", matches)
	}

	if got := l.Find("nothing here"); len(got) != 0 {
		t.Errorf("Find(nothing here) = %d matches, want 0", len(got))
	}
}
