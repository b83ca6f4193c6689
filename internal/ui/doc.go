// Package ui provides the terminal user interface for tripdeck.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. A single root Model holds everything:
// the active tab, the latest state.Store snapshot, itinerary browsing
// state, and the day editor. All sheet IO runs inside tea.Cmd functions so
// the update loop never blocks.
//
// # Package Structure
//
//   - app.go: the root Model, Options, tab handling, and the main Run function
//   - editor.go: the per-day draft editor (reorder, delete, add, save)
//   - view.go: top-level View composition, tab bar, status bar, help overlay
//   - itinerary.go: the day list and the editor rendering
//   - views.go: the flights, spots, food, and info tabs
//   - theme.go: color themes and derived lipgloss styles
//   - keys.go: key bindings
//
// # View Types
//
// Five tabs are available:
//
//   - Itinerary: day-by-day schedule with expand/collapse and editing
//   - Flights: the booked flight legs and the traveler list
//   - Spots: sightseeing reference loaded from the sheet
//   - Food: restaurant recommendations loaded from the sheet
//   - Info: static travel tips
//
// # Event Flow
//
//  1. Run() builds the Model and starts the program in the alt screen
//  2. Init dispatches the initial sheet load; loadDoneMsg refreshes the snapshot
//  3. Editing a day copies it into editorState; the draft never touches the store
//  4. Save hands the draft to state.Store.SaveDay inside a tea.Cmd;
//     saveDoneMsg closes the editor only when the save succeeded
//  5. Quit persists the theme and tab via the prefs package
//
// Only one save or day deletion may be in flight at a time; the save and
// reload keys are inert while one runs.
//
// # Key Bindings
//
//   - tab / 1..5: switch tabs
//   - ↑/↓ (j/k): move between days or items
//   - enter: expand or collapse the selected day
//   - e: edit the selected day
//   - J/K, d, a, s, D: reorder, delete, add, save, delete day (editor)
//   - esc: discard the draft
//   - r: reload from the sheet
//   - t: cycle theme, ?: help, q: quit
package ui
