package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jyang/tripdeck/internal/prefs"
	"github.com/jyang/tripdeck/internal/state"
	"github.com/jyang/tripdeck/internal/trip"
)

// Tab identifies one of the top-level tabs.
type Tab int

const (
	TabItinerary Tab = iota
	TabFlights
	TabSpots
	TabFood
	TabInfo
)

var tabKeys = []string{"itinerary", "flights", "spots", "food", "info"}
var tabLabels = []string{"行程", "航班", "景點", "美食", "資訊"}

// TabByKey maps a stored preference back to a tab, defaulting to the
// itinerary.
func TabByKey(name string) Tab {
	for i, k := range tabKeys {
		if k == name {
			return Tab(i)
		}
	}
	return TabItinerary
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	ThemeName string
	StartTab  string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	keys      keyMap
	theme     Theme
	st        styles
	prefsPath string

	tab    Tab
	width  int
	height int

	snapshot state.Snapshot

	// Itinerary browsing state
	dayCursor int
	collapsed map[int]bool

	// Editing state
	editing bool
	editor  editorState
	saving  bool

	showHelp bool
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	theme := ThemeByName(opts.ThemeName)
	return Model{
		ctx:       ctx,
		store:     opts.Store,
		keys:      DefaultKeyMap(),
		theme:     theme,
		st:        newStyles(theme),
		prefsPath: opts.PrefsPath,
		tab:       TabByKey(opts.StartTab),
		collapsed: make(map[int]bool),
		snapshot:  opts.Store.Snapshot(),
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// loadDoneMsg signals that the initial (or a manual) load finished.
type loadDoneMsg struct{}

// saveDoneMsg signals that a save or day deletion finished.
type saveDoneMsg struct{ err error }

// Init kicks off the initial sheet load.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		_ = store.Load(ctx)
		return loadDoneMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadDoneMsg:
		m.snapshot = m.store.Snapshot()
		m.clampDayCursor()
		return m, nil

	case saveDoneMsg:
		m.saving = false
		m.snapshot = m.store.Snapshot()
		if msg.err == nil {
			m.editing = false
			m.clampDayCursor()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text entry inside the editor captures everything except escape.
	if m.editing && m.editor.adding {
		return m.handleEditorInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = NextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
		return m, nil
	}

	if m.editing {
		return m.handleEditorKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		m.tab = Tab((int(m.tab) + 1) % len(tabKeys))
	case key.Matches(msg, m.keys.ShiftTab):
		m.tab = Tab((int(m.tab) + len(tabKeys) - 1) % len(tabKeys))
	case key.Matches(msg, m.keys.TabItinerary):
		m.tab = TabItinerary
	case key.Matches(msg, m.keys.TabFlights):
		m.tab = TabFlights
	case key.Matches(msg, m.keys.TabSpots):
		m.tab = TabSpots
	case key.Matches(msg, m.keys.TabFood):
		m.tab = TabFood
	case key.Matches(msg, m.keys.TabInfo):
		m.tab = TabInfo

	case key.Matches(msg, m.keys.Reload):
		if !m.saving {
			return m, m.loadCmd()
		}

	case key.Matches(msg, m.keys.Up):
		if m.tab == TabItinerary && m.dayCursor > 0 {
			m.dayCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.tab == TabItinerary && m.dayCursor < len(m.snapshot.Itinerary)-1 {
			m.dayCursor++
		}

	case key.Matches(msg, m.keys.ToggleDay):
		if day := m.selectedDay(); day != nil {
			m.collapsed[day.Day] = !m.collapsed[day.Day]
		}

	case key.Matches(msg, m.keys.Edit):
		if day := m.selectedDay(); day != nil && !m.saving {
			m.editing = true
			m.editor = newEditor(*day)
		}
	}
	return m, nil
}

func (m *Model) selectedDay() *trip.DaySchedule {
	if m.tab != TabItinerary {
		return nil
	}
	if m.dayCursor < 0 || m.dayCursor >= len(m.snapshot.Itinerary) {
		return nil
	}
	day := m.snapshot.Itinerary[m.dayCursor]
	return &day
}

func (m *Model) clampDayCursor() {
	if m.dayCursor >= len(m.snapshot.Itinerary) {
		m.dayCursor = len(m.snapshot.Itinerary) - 1
	}
	if m.dayCursor < 0 {
		m.dayCursor = 0
	}
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Tab: tabKeys[m.tab]}
	_ = prefs.Save(m.prefsPath, p)
}
