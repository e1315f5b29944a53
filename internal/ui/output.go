// Package ui provides the output sink the executor and session report
// through, plus the lipgloss styles shared with the TUI client.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Divider is the fixed-width frame line around command responses.
var Divider = strings.Repeat("_", 60)

// Output accepts ordered, pre-formatted lines of plain text.
type Output interface {
	Print(line string)
}

// Console writes lines to w, optionally styled for a terminal.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	styles Styles
	color  bool
}

// NewConsole creates a Console. With color disabled, lines pass through
// verbatim, which is what tests and pipes want.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, styles: DefaultStyles(), color: color}
}

// Print writes one line followed by a newline.
func (c *Console) Print(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.color {
		line = c.styles.Render(line)
	}
	fmt.Fprintln(c.w, line)
}

// Capture is an Output that records every line, for tests and for clients
// that render the transcript themselves.
type Capture struct {
	Lines []string
}

// Print records the line.
func (c *Capture) Print(line string) {
	c.Lines = append(c.Lines, line)
}
