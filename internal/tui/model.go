// Package tui is the interactive front end: a small menu that builds a tree
// from a file on request and shows the result, until the user quits.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Handler builds a tree from the file at path and returns the rendered
// result or error text.
type Handler func(path string) string

type menuItem struct {
	label string
	quit  bool
}

var menuItems = []menuItem{
	{label: "Make a tree from a file"},
	{label: "Quit", quit: true},
}

const prompt = "What is the input file?"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	resultStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// resultMsg carries a finished build back into the update loop.
type resultMsg struct {
	path   string
	output string
}

// Model is the Bubble Tea model for the interactive loop.
type Model struct {
	handle    Handler
	cursor    int
	prompting bool
	busy      bool
	input     textinput.Model
	lastPath  string
	result    string
	quitting  bool
}

// New creates a menu model that calls handle for every requested build.
func New(handle Handler) Model {
	ti := textinput.New()
	ti.Placeholder = "nodes.json"
	ti.CharLimit = 4096
	ti.Width = 50

	return Model{
		handle: handle,
		input:  ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.busy = false
		m.lastPath = msg.path
		m.result = msg.output
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.prompting {
			return m.handlePromptKeypress(msg)
		}
		if m.busy {
			return m, nil
		}

		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(menuItems) - 1
			}

		case "down", "j":
			m.cursor++
			if m.cursor >= len(menuItems) {
				m.cursor = 0
			}

		case "enter", " ":
			if menuItems[m.cursor].quit {
				m.quitting = true
				return m, tea.Quit
			}
			m.prompting = true
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}

	return m, nil
}

func (m Model) handlePromptKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompting = false
		m.input.Blur()
		return m, nil

	case "enter":
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			return m, nil
		}
		m.prompting = false
		m.busy = true
		m.input.Blur()
		handle := m.handle
		return m, func() tea.Msg {
			return resultMsg{path: path, output: handle(path)}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Node tree builder"))
	b.WriteString("\n\n")

	if m.prompting {
		b.WriteString(prompt)
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("enter to build, esc to cancel"))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(selectedStyle.Render(item.label))
		} else {
			b.WriteString("  ")
			b.WriteString(item.label)
		}
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Building..."))
		b.WriteString("\n")
	} else if m.result != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.lastPath))
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("j/k navigate  enter select  q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive loop on in and out and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, handle Handler, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(handle),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}
