package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Accent  string
	Primary string
	Success string
	Notice  string
	Ink     string
	Muted   string
}

var Themes = []Theme{
	{
		Name:    "Classic",
		Accent:  "#22D3EE",
		Primary: "#FDE047",
		Success: "#4ADE80",
		Notice:  "#E879F9",
		Ink:     "#E6EDF3",
		Muted:   "#8AA1A8",
	},
	{
		Name:    "Sand",
		Accent:  "#D7A86E",
		Primary: "#F2E8D5",
		Success: "#A3BE8C",
		Notice:  "#B48EAD",
		Ink:     "#F2E8D5",
		Muted:   "#B8A387",
	},
	{
		Name:    "Day",
		Accent:  "#3B82F6",
		Primary: "#B45309",
		Success: "#15803D",
		Notice:  "#7C3AED",
		Ink:     "#0B1220",
		Muted:   "#506072",
	},
}

type Styles struct {
	// Title styles the "Welcome!" header and the farewell line.
	Title lipgloss.Style
	// Label styles the aligned key column.
	Label lipgloss.Style
	// Primary styles time, uptime, OS, hostname and mount points.
	Primary lipgloss.Style
	// Success styles the kernel version.
	Success lipgloss.Style
	// Notice styles the CPU description.
	Notice lipgloss.Style
	// Info styles the user identity and login count.
	Info lipgloss.Style
	// Muted styles watch-mode chrome.
	Muted lipgloss.Style

	Accent lipgloss.Color
	Ink    lipgloss.Color
}

func BuildStyles(index int) Styles {
	if index < 0 || index >= len(Themes) {
		index = 0
	}
	t := Themes[index]

	s := Styles{}
	s.Accent = lipgloss.Color(t.Accent)
	s.Ink = lipgloss.Color(t.Ink)

	s.Title = lipgloss.NewStyle().Foreground(s.Accent).Bold(true)
	s.Label = lipgloss.NewStyle().Foreground(s.Ink).Bold(true)
	s.Primary = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))
	s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
	s.Notice = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Notice))
	s.Info = lipgloss.NewStyle().Foreground(s.Accent)
	s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))

	return s
}
