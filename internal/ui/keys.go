package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding
	Reload     key.Binding

	// Tab selection
	TabItinerary key.Binding
	TabFlights   key.Binding
	TabSpots     key.Binding
	TabFood      key.Binding
	TabInfo      key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding

	// Itinerary actions
	ToggleDay key.Binding
	Edit      key.Binding

	// Editor actions
	MoveUp     key.Binding
	MoveDown   key.Binding
	DeleteItem key.Binding
	AddItem    key.Binding
	Save       key.Binding
	DeleteDay  key.Binding
	Confirm    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload sheet"),
		),
		TabItinerary: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "Itinerary")),
		TabFlights:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "Flights")),
		TabSpots:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "Spots")),
		TabFood:      key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "Food")),
		TabInfo:      key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "Info")),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		ToggleDay: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Expand/collapse day"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit day"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "Move item up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "Move item down"),
		),
		DeleteItem: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete item"),
		),
		AddItem: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add item"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Save day"),
		),
		DeleteDay: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Delete whole day"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}
