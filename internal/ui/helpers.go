package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jyang/tripdeck/internal/trip"
)

func itemGlyph(t trip.ItemType) string {
	switch t {
	case trip.TypeFlight:
		return "✈"
	case trip.TypeSpot:
		return "⛰"
	case trip.TypeFood:
		return "🍜"
	case trip.TypeTransport:
		return "🚇"
	case trip.TypeHotel:
		return "🏨"
	default:
		return "·"
	}
}

// padTime right-pads a time column so item titles line up.
func padTime(t string) string {
	for len(t) < 5 {
		t += " "
	}
	return t
}

// truncate shortens a string to at most width display cells, appending an
// ellipsis when anything was cut. Widths are measured with lipgloss so
// double-width CJK text is counted correctly.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
