// Package tui holds the terminal viewer for ledger .dat files.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// ViewerModel displays one ledger file in a scrollable viewport.
type ViewerModel struct {
	filename string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewViewer creates a viewer for a file's text content.
func NewViewer(filename, content string) ViewerModel {
	return ViewerModel{filename: filename, content: content}
}

func (m ViewerModel) Init() tea.Cmd {
	return nil
}

func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		height := msg.Height - headerHeight - footerHeight
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ViewerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return strings.Join([]string{m.headerView(), m.viewport.View(), m.footerView()}, "\n")
}

func (m ViewerModel) headerView() string {
	return titleStyle.Render(m.filename)
}

func (m ViewerModel) footerView() string {
	return helpStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll | q quit", m.viewport.ScrollPercent()*100))
}

// Run starts the viewer program and blocks until the user quits.
func Run(filename, content string) error {
	p := tea.NewProgram(NewViewer(filename, content), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
