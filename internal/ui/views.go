package ui

import (
	"fmt"
	"strings"

	"github.com/jyang/tripdeck/internal/trip"
)

func (m Model) renderFlights() string {
	var b strings.Builder
	for _, f := range trip.Flights {
		label := "去程"
		if f.Kind == "return" {
			label = "回程"
		}
		b.WriteString(m.st.title.Render(fmt.Sprintf("%s  %s %s", label, f.Airline, f.FlightNumber)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s → %s\n", f.DepartureAirport, f.ArrivalAirport))
		b.WriteString(fmt.Sprintf("  %s → %s  (%s)\n", f.DepartureTime, f.ArrivalTime, f.Duration))
		b.WriteString(m.st.subtle.Render(fmt.Sprintf("  %s · %s", f.Aircraft, f.Cabin)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.st.title.Render("成員"))
	b.WriteString("\n")
	for _, mem := range trip.Members {
		b.WriteString(fmt.Sprintf("  %s %s", mem.Avatar, mem.Name))
		b.WriteString(m.st.subtle.Render("  " + mem.Role))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSpots() string {
	if m.snapshot.Loading {
		return m.st.subtle.Render("景點載入中…")
	}
	if len(m.snapshot.Spots) == 0 {
		return m.st.subtle.Render("尚無景點。")
	}
	var b strings.Builder
	for _, s := range m.snapshot.Spots {
		b.WriteString(m.st.title.Render(s.Name))
		if len(s.Tags) > 0 {
			b.WriteString(m.st.subtle.Render("  " + strings.Join(s.Tags, " · ")))
		}
		b.WriteString("\n")
		if s.Description != "" {
			b.WriteString("  " + truncate(s.Description, 64) + "\n")
		}
		b.WriteString(m.st.subtle.Render("  " + refLink(s.NaverPlaceID, s.Lat, s.Lng)))
		b.WriteString("\n\n")
	}
	return b.String()
}

func refLink(placeID string, lat, lng float64) string {
	if placeID == "" && lat == 0 && lng == 0 {
		return trip.MapLink("", nil)
	}
	return trip.MapLink(placeID, &trip.Coords{Lat: lat, Lng: lng})
}

var foodCategoryLabels = map[string]string{
	"bbq":     "烤肉",
	"gukbap":  "豬肉湯飯",
	"seafood": "海鮮",
	"market":  "市場小吃",
	"cafe":    "咖啡",
	"bread":   "麵包甜點",
	"other":   "其他",
}

func (m Model) renderFood() string {
	if m.snapshot.Loading {
		return m.st.subtle.Render("美食載入中…")
	}
	if len(m.snapshot.Food) == 0 {
		return m.st.subtle.Render("尚無美食推薦。")
	}
	var b strings.Builder
	for _, r := range m.snapshot.Food {
		label := foodCategoryLabels[r.Category]
		if label == "" {
			label = r.Category
		}
		b.WriteString(m.st.title.Render(r.Name))
		b.WriteString(m.st.badge.Render(label))
		b.WriteString("\n")
		if r.Description != "" {
			b.WriteString("  " + truncate(r.Description, 64) + "\n")
		}
		b.WriteString(m.st.subtle.Render("  " + refLink(r.NaverPlaceID, r.Lat, r.Lng)))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m Model) renderInfo() string {
	var b strings.Builder
	for _, card := range trip.InfoCards {
		b.WriteString(m.st.title.Render(card.Title))
		b.WriteString("\n")
		for _, item := range card.Items {
			b.WriteString("  • " + item + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
