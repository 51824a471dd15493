package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a set of styles for one palette.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	ID       lipgloss.Style
	Cursor   lipgloss.Style
	Checked  lipgloss.Style
	Search   lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Toast    lipgloss.Style
	Key      lipgloss.Style
}

type palette struct {
	text, muted, accent, surface, border, success, errColor lipgloss.Color
}

var (
	darkPalette = palette{
		text:     lipgloss.Color("#cdd6f4"),
		muted:    lipgloss.Color("#7f849c"),
		accent:   lipgloss.Color("#89b4fa"),
		surface:  lipgloss.Color("#313244"),
		border:   lipgloss.Color("#585b70"),
		success:  lipgloss.Color("#a6e3a1"),
		errColor: lipgloss.Color("#f38ba8"),
	}
	lightPalette = palette{
		text:     lipgloss.Color("#4c4f69"),
		muted:    lipgloss.Color("#8c8fa1"),
		accent:   lipgloss.Color("#1e66f5"),
		surface:  lipgloss.Color("#e6e9ef"),
		border:   lipgloss.Color("#acb0be"),
		success:  lipgloss.Color("#40a02b"),
		errColor: lipgloss.Color("#d20f39"),
	}
)

// ThemeByName returns the "light" theme for "light" and the dark theme for
// anything else.
func ThemeByName(name string) Theme {
	if name == "light" {
		return newTheme("light", lightPalette)
	}
	return newTheme("dark", darkPalette)
}

func newTheme(name string, p palette) Theme {
	return Theme{
		Name:     name,
		Title:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Tab:      lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		TabOn:    lipgloss.NewStyle().Foreground(p.accent).Background(p.surface).Bold(true).Padding(0, 1),
		Text:     lipgloss.NewStyle().Foreground(p.text),
		Muted:    lipgloss.NewStyle().Foreground(p.muted),
		ID:       lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		Cursor:   lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Checked:  lipgloss.NewStyle().Foreground(p.success),
		Search:   lipgloss.NewStyle().Foreground(p.text).Background(p.surface).Padding(0, 1),
		Button:   lipgloss.NewStyle().Foreground(p.surface).Background(p.accent).Bold(true).Padding(0, 1),
		Disabled: lipgloss.NewStyle().Foreground(p.muted).Background(p.surface).Padding(0, 1),
		Success:  lipgloss.NewStyle().Foreground(p.success).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(p.errColor).Bold(true),
		Toast:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		Key:      lipgloss.NewStyle().Foreground(p.accent),
	}
}
