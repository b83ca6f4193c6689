package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the whole screen.
func (m Model) View() string {
	if m.width == 0 {
		return "starting tripdeck..."
	}

	var body string
	switch {
	case m.editing:
		body = m.renderEditor()
	case m.tab == TabItinerary:
		body = m.renderItinerary()
	case m.tab == TabFlights:
		body = m.renderFlights()
	case m.tab == TabSpots:
		body = m.renderSpots()
	case m.tab == TabFood:
		body = m.renderFood()
	case m.tab == TabInfo:
		body = m.renderInfo()
	}

	sections := []string{m.renderTabs(), body, m.renderStatus()}
	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	var cells []string
	for i, label := range tabLabels {
		text := fmt.Sprintf("%d %s", i+1, label)
		if Tab(i) == m.tab && !m.editing {
			cells = append(cells, m.st.tabActive.Render(text))
		} else {
			cells = append(cells, m.st.tabInactive.Render(text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
}

func (m Model) renderStatus() string {
	var parts []string
	switch {
	case m.snapshot.Loading:
		parts = append(parts, "loading sheet…")
	case m.snapshot.LoadError != "":
		parts = append(parts, m.st.errorLine.Render(m.snapshot.LoadError))
	}
	if m.saving {
		parts = append(parts, "saving…")
	} else if m.snapshot.SaveError != "" {
		parts = append(parts, m.st.errorLine.Render("save failed: "+m.snapshot.SaveError))
	}
	if len(parts) == 0 {
		if m.editing {
			parts = append(parts, "J/K move · d delete · a add · s save · D delete day · esc back")
		} else {
			parts = append(parts, "tab/1-5 switch · enter expand · e edit · r reload · ? help · q quit")
		}
	}
	return m.st.statusBar.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderHelp() string {
	lines := []string{
		m.st.title.Render("Keys"),
		"  tab / shift+tab   next / previous tab",
		"  1..5              jump to tab",
		"  ↑/↓ (j/k)         move between days",
		"  enter             expand or collapse day",
		"  e                 edit selected day",
		"  r                 reload everything from the sheet",
		"  t                 cycle color theme",
		"  q                 quit",
		"",
		m.st.title.Render("Editing"),
		"  J / K             move item down / up",
		"  d                 delete item",
		"  a                 add item (enter to confirm)",
		"  s                 save the day to the sheet",
		"  D                 delete the whole day",
		"  esc               discard changes",
	}
	return strings.Join(lines, "\n")
}
