// Package ui implements the live watch mode: the same report the login
// banner prints, refreshed on a timer inside an alt-screen viewport.
package ui

import (
	"bytes"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sumant1122/motdyn/internal/report"
	"github.com/sumant1122/motdyn/internal/theme"
)

type tickMsg time.Time

type refreshMsg struct {
	content string
}

const (
	refreshInterval = 5 * time.Second
	fixedRows       = 3
)

type Model struct {
	rep        *report.Report
	verbose    bool
	viewport   viewport.Model
	content    string
	statusLine string
	themeIndex int
	width      int
	height     int
	styles     theme.Styles
}

func NewModel(rep *report.Report, verbose bool) Model {
	vp := viewport.New(0, 0)
	vp.SetContent("Loading...")

	return Model{
		rep:      rep,
		verbose:  verbose,
		viewport: vp,
		styles:   theme.BuildStyles(0),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuitKey(msg) {
			return m, tea.Quit
		}
		if msg.String() == "t" {
			m.themeIndex = (m.themeIndex + 1) % len(theme.Themes)
			m.styles = theme.BuildStyles(m.themeIndex)
			m.rep.Styles = m.styles
			return m, m.refreshCmd()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = clampMin(msg.Width, 0)
		m.viewport.Height = clampMin(msg.Height-fixedRows, 0)
		m.viewport.SetContent(m.content)
	case tickMsg:
		return m, tea.Batch(m.refreshCmd(), tick())
	case refreshMsg:
		m.content = msg.content
		m.viewport.SetContent(m.content)
		m.statusLine = fmt.Sprintf("updated %s", time.Now().Format("15:04:05"))
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := m.styles.Title.Render(" motdyn watch ")
	footer := m.renderFooter()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.viewport.View(),
		footer,
	)
}

func (m Model) renderFooter() string {
	help := "q:quit  up/down/pgup/pgdn:scroll  t:theme"
	if m.statusLine != "" {
		help = m.statusLine + "  |  " + help
	}
	return m.styles.Muted.Render(help)
}

func (m Model) refreshCmd() tea.Cmd {
	rep := m.rep
	verbose := m.verbose
	return func() tea.Msg {
		var buf bytes.Buffer
		rep.Render(&buf, verbose)
		return refreshMsg{content: buf.String()}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func isQuitKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC {
		return true
	}
	switch msg.String() {
	case "q", "Q", "esc", "ctrl+c":
		return true
	}
	return false
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
