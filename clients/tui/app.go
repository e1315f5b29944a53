// Package tui is a full-screen bubbletea client for the task session. It
// drives the same parse-and-execute pipeline as the line REPL and renders
// the transcript in a scrolling viewport.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkwee/taskbot/internal/executor"
	"github.com/mkwee/taskbot/internal/parser"
	"github.com/mkwee/taskbot/internal/task"
	"github.com/mkwee/taskbot/internal/ui"
)

// Recorder appends accepted input lines to the command history.
type Recorder interface {
	Append(input string) error
}

// Model is the root bubbletea model for the taskbot TUI.
type Model struct {
	name    string
	list    *task.List
	history Recorder

	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	styles     ui.Styles

	ready  bool
	width  int
	height int
}

// NewModel creates the root model. history may be nil.
func NewModel(name string, list *task.List, history Recorder) Model {
	input := textinput.New()
	input.Placeholder = "todo read book"
	input.Prompt = "> "
	input.Focus()

	m := Model{
		name:    name,
		list:    list,
		history: history,
		input:   input,
		styles:  ui.DefaultStyles(),
	}
	m.appendLines(
		ui.Divider,
		fmt.Sprintf("Hello! I'm %s", name),
		"What can I do for you?",
		ui.Divider,
	)
	return m
}

// Init starts the input cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key and resize events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var inputCmd, vpCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, vpCmd)
}

// submit parses and executes the current input line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	if line == "" {
		return m, nil
	}
	m.input.Reset()
	m.appendLines("> " + line)

	cmd, err := parser.Parse(line)
	if err != nil {
		m.appendLines(err.Error())
		m.refresh()
		return m, nil
	}

	if m.history != nil {
		if err := m.history.Append(line); err != nil {
			slog.Warn("failed to record history", "error", err)
		}
	}

	capture := &ui.Capture{}
	outcome := executor.Execute(cmd, m.list, capture)
	m.appendLines(capture.Lines...)
	m.refresh()

	if outcome.Quit {
		return m, tea.Quit
	}
	return m, nil
}

// appendLines adds styled lines to the transcript.
func (m *Model) appendLines(lines ...string) {
	for _, line := range lines {
		m.transcript = append(m.transcript, m.styles.Render(line))
	}
}

// refresh pushes the transcript into the viewport, pinned to the bottom.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// View renders the transcript above the input line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.input.View()
}
