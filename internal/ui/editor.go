package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jyang/tripdeck/internal/trip"
)

// editorState holds the working draft while a day is being edited. Nothing
// here touches the store; the draft is only handed over when the user
// saves, and discarded on escape.
type editorState struct {
	draft  trip.DaySchedule
	cursor int
	dirty  bool

	adding bool
	input  textinput.Model
}

func newEditor(day trip.DaySchedule) editorState {
	// The draft owns its own item slice so discarding the edit leaves the
	// snapshot untouched.
	day.Items = append([]trip.ScheduleItem(nil), day.Items...)
	input := textinput.New()
	input.Placeholder = "新行程標題"
	input.CharLimit = 120
	return editorState{draft: day, input: input}
}

func (e *editorState) moveItem(delta int) {
	target := e.cursor + delta
	if e.cursor < 0 || e.cursor >= len(e.draft.Items) || target < 0 || target >= len(e.draft.Items) {
		return
	}
	items := e.draft.Items
	items[e.cursor], items[target] = items[target], items[e.cursor]
	e.cursor = target
	e.dirty = true
}

func (e *editorState) deleteItem() {
	if e.cursor < 0 || e.cursor >= len(e.draft.Items) {
		return
	}
	e.draft.Items = append(e.draft.Items[:e.cursor], e.draft.Items[e.cursor+1:]...)
	if e.cursor >= len(e.draft.Items) && e.cursor > 0 {
		e.cursor--
	}
	e.dirty = true
}

func (e *editorState) commitAdd() {
	title := strings.TrimSpace(e.input.Value())
	if title != "" {
		e.draft.Items = append(e.draft.Items, trip.ScheduleItem{
			Title: title,
			Type:  trip.TypeOther,
		})
		e.cursor = len(e.draft.Items) - 1
		e.dirty = true
	}
	e.input.SetValue("")
	e.input.Blur()
	e.adding = false
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.editing = false

	case key.Matches(msg, m.keys.Up):
		if m.editor.cursor > 0 {
			m.editor.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.editor.cursor < len(m.editor.draft.Items)-1 {
			m.editor.cursor++
		}

	case key.Matches(msg, m.keys.MoveUp):
		m.editor.moveItem(-1)
	case key.Matches(msg, m.keys.MoveDown):
		m.editor.moveItem(1)

	case key.Matches(msg, m.keys.DeleteItem):
		m.editor.deleteItem()

	case key.Matches(msg, m.keys.AddItem):
		m.editor.adding = true
		m.editor.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Save):
		// Only one save may be in flight; the key is inert while saving.
		if m.saving || !m.editor.dirty {
			return m, nil
		}
		m.saving = true
		return m, m.saveCmd(m.editor.draft)

	case key.Matches(msg, m.keys.DeleteDay):
		if m.saving {
			return m, nil
		}
		m.saving = true
		return m, m.deleteDayCmd(m.editor.draft.Day)
	}
	return m, nil
}

func (m Model) handleEditorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.editor.input.SetValue("")
		m.editor.input.Blur()
		m.editor.adding = false
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.editor.commitAdd()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor.input, cmd = m.editor.input.Update(msg)
	return m, cmd
}

func (m Model) saveCmd(draft trip.DaySchedule) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return saveDoneMsg{err: store.SaveDay(ctx, draft)}
	}
}

func (m Model) deleteDayCmd(day int) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return saveDoneMsg{err: store.DeleteDay(ctx, day)}
	}
}
