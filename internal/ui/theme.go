package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the colors used across all tabs.
type Theme struct {
	Name      string
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Highlight lipgloss.Color
	Error     lipgloss.Color
	Chrome    lipgloss.Color
}

var themes = []Theme{
	{
		Name:      "Harbor",
		Accent:    lipgloss.Color("39"),
		Muted:     lipgloss.Color("245"),
		Text:      lipgloss.Color("252"),
		Highlight: lipgloss.Color("214"),
		Error:     lipgloss.Color("203"),
		Chrome:    lipgloss.Color("238"),
	},
	{
		Name:      "Night",
		Accent:    lipgloss.Color("135"),
		Muted:     lipgloss.Color("243"),
		Text:      lipgloss.Color("255"),
		Highlight: lipgloss.Color("84"),
		Error:     lipgloss.Color("197"),
		Chrome:    lipgloss.Color("236"),
	},
}

// ThemeByName returns the named theme, defaulting to the first theme when
// the name is unknown.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme cycles to the theme after the named one.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// styles derives the concrete lipgloss styles for a theme.
type styles struct {
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	title       lipgloss.Style
	subtle      lipgloss.Style
	selected    lipgloss.Style
	normal      lipgloss.Style
	errorLine   lipgloss.Style
	badge       lipgloss.Style
	statusBar   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		tabActive: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), false, false, true, false).
			BorderForeground(t.Accent),
		tabInactive: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),
		title: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		subtle: lipgloss.NewStyle().
			Foreground(t.Muted),
		selected: lipgloss.NewStyle().
			Foreground(t.Highlight).
			Bold(true),
		normal: lipgloss.NewStyle().
			Foreground(t.Text),
		errorLine: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),
		badge: lipgloss.NewStyle().
			Foreground(t.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Chrome).
			Padding(0, 1),
		statusBar: lipgloss.NewStyle().
			Foreground(t.Muted).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(t.Chrome),
	}
}
