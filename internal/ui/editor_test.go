package ui

import (
	"testing"

	"github.com/jyang/tripdeck/internal/trip"
)

func testDay() trip.DaySchedule {
	return trip.DaySchedule{
		Day:   2,
		Title: "東釜山歡樂行",
		Items: []trip.ScheduleItem{
			{ID: "day2-item1", Order: 1, Title: "樂天世界"},
			{ID: "day2-item2", Order: 2, Title: "海東龍宮寺"},
			{ID: "day2-item3", Order: 3, Title: "機張市場"},
		},
	}
}

func TestEditorMoveItem(t *testing.T) {
	e := newEditor(testDay())
	e.cursor = 1
	e.moveItem(-1)
	if e.draft.Items[0].Title != "海東龍宮寺" {
		t.Fatalf("move up: first item = %q", e.draft.Items[0].Title)
	}
	if e.cursor != 0 {
		t.Fatalf("cursor followed item to %d, want 0", e.cursor)
	}
	if !e.dirty {
		t.Fatal("move should mark the draft dirty")
	}

	// Moving past either end is a no-op.
	e.moveItem(-1)
	if e.draft.Items[0].Title != "海東龍宮寺" {
		t.Fatal("move past top should not change order")
	}
}

func TestEditorDeleteItem(t *testing.T) {
	e := newEditor(testDay())
	e.cursor = 2
	e.deleteItem()
	if len(e.draft.Items) != 2 {
		t.Fatalf("len = %d after delete, want 2", len(e.draft.Items))
	}
	if e.cursor != 1 {
		t.Fatalf("cursor = %d after deleting last item, want 1", e.cursor)
	}
	if !e.dirty {
		t.Fatal("delete should mark the draft dirty")
	}
}

func TestEditorCommitAdd(t *testing.T) {
	e := newEditor(testDay())
	e.adding = true
	e.input.SetValue("  廣安里海水浴場  ")
	e.commitAdd()
	if len(e.draft.Items) != 4 {
		t.Fatalf("len = %d after add, want 4", len(e.draft.Items))
	}
	added := e.draft.Items[3]
	if added.Title != "廣安里海水浴場" {
		t.Fatalf("added title = %q, want trimmed", added.Title)
	}
	if added.ID != "" || added.Order != 0 {
		t.Fatalf("new item should have no id or order yet, got %q/%d", added.ID, added.Order)
	}
	if added.Type != trip.TypeOther {
		t.Fatalf("added type = %q, want other", added.Type)
	}
	if e.adding {
		t.Fatal("commit should leave input mode")
	}
	if e.cursor != 3 {
		t.Fatalf("cursor = %d, want the new item", e.cursor)
	}
}

func TestEditorCommitAddBlank(t *testing.T) {
	e := newEditor(testDay())
	e.adding = true
	e.input.SetValue("   ")
	e.commitAdd()
	if len(e.draft.Items) != 3 {
		t.Fatalf("blank add changed the draft, len = %d", len(e.draft.Items))
	}
	if e.dirty {
		t.Fatal("blank add should not mark the draft dirty")
	}
}

func TestEditorDraftIsolation(t *testing.T) {
	day := testDay()
	e := newEditor(day)
	e.cursor = 0
	e.deleteItem()
	if len(day.Items) != 3 || day.Items[0].Title != "樂天世界" {
		t.Fatalf("editing the draft mutated the source day: %+v", day.Items)
	}
}
