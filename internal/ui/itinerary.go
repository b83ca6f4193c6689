package ui

import (
	"fmt"
	"strings"

	"github.com/jyang/tripdeck/internal/trip"
)

func (m Model) renderItinerary() string {
	if m.snapshot.Loading {
		return m.st.subtle.Render("行程載入中…")
	}
	if m.snapshot.LoadError != "" {
		return m.st.errorLine.Render(m.snapshot.LoadError)
	}
	if len(m.snapshot.Itinerary) == 0 {
		return m.st.subtle.Render("尚無行程。")
	}

	var b strings.Builder
	for i, day := range m.snapshot.Itinerary {
		marker := "  "
		header := fmt.Sprintf("Day %d", day.Day)
		if day.Date != "" {
			header += " · " + day.Date
		}
		if day.Title != "" {
			header += " · " + day.Title
		}
		header += fmt.Sprintf("  (%d)", len(day.Items))

		if i == m.dayCursor {
			marker = "➤ "
			b.WriteString(marker + m.st.selected.Render(header))
		} else {
			b.WriteString(marker + m.st.title.Render(header))
		}
		b.WriteString("\n")

		if m.collapsed[day.Day] {
			continue
		}
		for _, item := range day.Items {
			b.WriteString(m.renderItemLine(item, false))
		}
	}
	return b.String()
}

func (m Model) renderItemLine(item trip.ScheduleItem, selected bool) string {
	timeCol := item.Time
	if timeCol == "" {
		timeCol = "--:--"
	}
	line := fmt.Sprintf("    %s %s  %s", itemGlyph(item.Type), padTime(timeCol), item.Title)
	if item.Description != "" {
		line += m.st.subtle.Render("  " + truncate(item.Description, 48))
	}
	if item.OnMap() {
		line += m.st.subtle.Render("  " + trip.MapLink(item.NaverPlaceID, item.Coords))
	}
	if selected {
		return m.st.selected.Render(line) + "\n"
	}
	return m.st.normal.Render(line) + "\n"
}

func (m Model) renderEditor() string {
	day := m.editor.draft
	var b strings.Builder

	header := fmt.Sprintf("編輯 Day %d", day.Day)
	if day.Title != "" {
		header += " · " + day.Title
	}
	b.WriteString(m.st.title.Render(header))
	if m.editor.dirty {
		b.WriteString(m.st.badge.Render("未儲存"))
	}
	b.WriteString("\n\n")

	if len(day.Items) == 0 {
		b.WriteString(m.st.subtle.Render("  （沒有項目）\n"))
	}
	for i, item := range day.Items {
		prefix := "  "
		if i == m.editor.cursor && !m.editor.adding {
			prefix = "➤ "
		}
		b.WriteString(prefix)
		b.WriteString(m.renderItemLine(item, i == m.editor.cursor && !m.editor.adding))
	}

	if m.editor.adding {
		b.WriteString("\n  ")
		b.WriteString(m.editor.input.View())
		b.WriteString("\n")
	}
	return b.String()
}
