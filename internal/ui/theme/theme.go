package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — warm, stage-light tones
var (
	Primary   = lipgloss.Color("#D97706") // Amber
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Tables
var (
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	TableCell = lipgloss.NewStyle().
			Foreground(Text)
)

// States
var (
	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Highlight = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// GradeStyle maps a letter grade to its display style. Passing grades
// render green, middling ones amber, failing ones rose.
func GradeStyle(grade string) lipgloss.Style {
	switch grade {
	case "S+", "S", "A":
		return Good
	case "F":
		return Bad
	default:
		return Highlight
	}
}
