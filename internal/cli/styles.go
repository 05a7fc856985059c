// Package cli provides input parsing and styled terminal output for the
// gauge commands.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	// PrimaryColor marks headings and table headers (steel blue).
	PrimaryColor = lipgloss.Color("#5B8DEF")
	// MutedColor marks footers, timestamps and members that do not apply.
	MutedColor = lipgloss.Color("#666666")

	borderColor = lipgloss.Color("#3A4A63")
)

// Text styles shared by the commands.
var (
	BoldStyle  = lipgloss.NewStyle().Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(MutedColor)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2)
)

// Table cells. Rows of gauge members that do not apply use mutedCell.
var (
	headerCell = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).Padding(0, 1)
	bodyCell   = lipgloss.NewStyle().Padding(0, 1)
	mutedCell  = bodyCell.Foreground(MutedColor)
)

// GaugeIcon prefixes result and table titles.
const GaugeIcon = "📏"

// Level classifies a status message.
type Level int

// Status levels.
const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

var levelMarks = [...]struct {
	icon  string
	color lipgloss.Color
}{
	LevelInfo:    {icon: "ℹ", color: "#95E1D3"},
	LevelSuccess: {icon: "✓", color: "#4ECDC4"},
	LevelWarning: {icon: "!", color: "#FFE66D"},
	LevelError:   {icon: "✗", color: "#FF6B6B"},
}

// Status renders text with the icon and color of level. Unknown levels
// render as info.
func Status(level Level, text string) string {
	if level < 0 || int(level) >= len(levelMarks) {
		level = LevelInfo
	}
	mark := levelMarks[level]
	return lipgloss.NewStyle().Foreground(mark.color).Render(mark.icon + " " + text)
}

// Title renders a section heading followed by a blank line.
func Title(text string) string {
	return headingStyle.MarginBottom(1).Render(GaugeIcon + " " + text)
}

// Box frames content in a rounded border under heading.
func Box(heading, content string) string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, headingStyle.Render(heading), content))
}
