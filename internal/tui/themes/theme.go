// Package themes defines the color schemes of the interactive form.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Placeholder   lipgloss.Style
	Selected      lipgloss.Style
	Unselected    lipgloss.Style
	Panel         lipgloss.Style
	PanelInactive lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Footer        lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
	Info          lipgloss.Color
}

// palette holds the colors a theme is derived from.
type palette struct {
	primary, muted, border, foreground, subtle string
	info, errorColor, warning, success         string
}

func newTheme(p palette) Theme {
	primary := lipgloss.Color(p.primary)
	muted := lipgloss.Color(p.muted)
	border := lipgloss.Color(p.border)
	fg := lipgloss.Color(p.foreground)

	return Theme{
		Primary:    primary,
		Muted:      muted,
		Border:     border,
		Foreground: fg,
		Error:      lipgloss.Color(p.errorColor),
		Warning:    lipgloss.Color(p.warning),
		Success:    lipgloss.Color(p.success),
		Info:       lipgloss.Color(p.info),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)).
			Width(16),
		Value: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),
		Placeholder: lipgloss.NewStyle().
			Foreground(muted),
		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#1a1a1a")).
			Bold(true).
			Padding(0, 1),
		Unselected: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		PanelInactive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorColor)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#7c3aed",
	muted:      "#737373",
	border:     "#404040",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	info:       "#3b82f6",
	errorColor: "#ef4444",
	warning:    "#f59e0b",
	success:    "#10b981",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#cba6f7",
	muted:      "#6c7086",
	border:     "#45475a",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	info:       "#89dceb",
	errorColor: "#f38ba8",
	warning:    "#f9e2af",
	success:    "#a6e3a1",
})

// Names lists the themes accepted by GetTheme.
var Names = []string{"default", "catppuccin-mocha"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
