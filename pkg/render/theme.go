package render

import "github.com/charmbracelet/lipgloss"

// Theme styles the human-facing text around the grid, such as the version
// banner. The grid itself is never styled through a theme.
type Theme struct {
	Name  string
	Title lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true), // blue
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),           // gray
		Bold:  lipgloss.NewStyle().Bold(true),
	}
}

// MonoTheme returns a monochrome theme (no colors, no attributes).
func MonoTheme() Theme {
	return Theme{
		Name:  "mono",
		Title: lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
		Bold:  lipgloss.NewStyle(),
	}
}

// ThemeFor picks the theme for the given no-color setting.
func ThemeFor(noColor bool) Theme {
	if noColor {
		return MonoTheme()
	}
	return DefaultTheme()
}

// Banner formats the one-line version banner.
func Banner(t Theme, name, version, commit, date string) string {
	return t.Title.Render(name) + " " + t.Bold.Render(version) + " " +
		t.Muted.Render("("+commit+", "+date+")")
}
