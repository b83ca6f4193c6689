package state

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jyang/tripdeck/internal/sheet"
	"github.com/jyang/tripdeck/internal/trip"
)

// fakeSheet is an in-memory RowStore that records mutations and can be
// told to fail a specific call.
type fakeSheet struct {
	rows    []sheet.Row
	listErr error

	deletes []string
	appends []sheet.Row

	failOnAppend string // row id
	failOnDelete string // row id
	failErr      error
}

func (f *fakeSheet) List(ctx context.Context) ([]sheet.Row, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeSheet) Append(ctx context.Context, row sheet.Row) error {
	f.appends = append(f.appends, row)
	if f.failOnAppend != "" && row.ID.String() == f.failOnAppend {
		return f.failErr
	}
	return nil
}

func (f *fakeSheet) Delete(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	if f.failOnDelete != "" && id == f.failOnDelete {
		return f.failErr
	}
	return nil
}

func (f *fakeSheet) mutationCount() int {
	return len(f.deletes) + len(f.appends)
}

func loadedStore(t *testing.T, rows []sheet.Row) (*Store, *fakeSheet) {
	t.Helper()
	fake := &fakeSheet{rows: rows}
	store := New(fake)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return store, fake
}

func TestStore_LoadPopulatesSnapshot(t *testing.T) {
	store, _ := loadedStore(t, []sheet.Row{
		{ID: "day1-item1", Day: "1", Order: "1", Title: "Check-in", Type: "hotel"},
		{ID: "luge", Type: "spot", Title: "Skyline Luge"},
		{ID: "83hatch", Type: "food", Title: "83海池"},
	})

	snap := store.Snapshot()
	if snap.Loading || snap.LoadError != "" {
		t.Fatalf("snapshot flags = %+v, want loaded without error", snap)
	}
	if len(snap.Itinerary) != 1 || snap.Itinerary[0].Items[0].Title != "Check-in" {
		t.Fatalf("itinerary = %+v, want one day with Check-in", snap.Itinerary)
	}
	if len(snap.Spots) != 1 || len(snap.Food) != 1 {
		t.Fatalf("references = %d spots, %d food; want 1 each", len(snap.Spots), len(snap.Food))
	}
}

func TestStore_LoadFailureKeepsNothing(t *testing.T) {
	fake := &fakeSheet{listErr: errors.New("connection refused")}
	store := New(fake)

	snap := store.Snapshot()
	if !snap.Loading {
		t.Fatal("fresh store should report Loading")
	}

	if err := store.Load(context.Background()); err == nil {
		t.Fatal("Load returned nil error, want failure")
	}
	snap = store.Snapshot()
	if snap.Loading {
		t.Fatal("Loading still set after failed load")
	}
	if snap.LoadError == "" {
		t.Fatal("LoadError empty after failed load")
	}
	if len(snap.Itinerary) != 0 || len(snap.Spots) != 0 {
		t.Fatalf("partial data after failed load: %+v", snap)
	}
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	store, _ := loadedStore(t, []sheet.Row{
		{ID: "day1-item1", Day: "1", Order: "1", Title: "walk", Lat: "35.1", Lng: "129.1"},
	})

	snap := store.Snapshot()
	snap.Itinerary[0].Items[0].Title = "mutated"
	snap.Itinerary[0].Items[0].Coords.Lat = 99

	again := store.Snapshot()
	if again.Itinerary[0].Items[0].Title != "walk" {
		t.Fatalf("cache mutated through snapshot: %+v", again.Itinerary[0].Items[0])
	}
	if again.Itinerary[0].Items[0].Coords.Lat != 35.1 {
		t.Fatalf("coords mutated through snapshot: %+v", again.Itinerary[0].Items[0].Coords)
	}
}

func TestStore_SaveDayAssignsAndCaches(t *testing.T) {
	store, fake := loadedStore(t, nil)

	draft := trip.DaySchedule{Day: 2, Date: "2/27 (四)", Title: "東釜山歡樂行", Items: []trip.ScheduleItem{
		{Title: "Skyline Luge", Type: trip.TypeSpot},
		{Title: "午餐", Type: trip.TypeFood},
	}}
	if err := store.SaveDay(context.Background(), draft); err != nil {
		t.Fatalf("SaveDay returned error: %v", err)
	}

	snap := store.Snapshot()
	if snap.Saving || snap.SaveError != "" {
		t.Fatalf("snapshot flags = %+v, want saved without error", snap)
	}
	if len(snap.Itinerary) != 1 {
		t.Fatalf("itinerary = %+v, want the new day cached", snap.Itinerary)
	}
	day := snap.Itinerary[0]
	wantIDs := []string{"day2-item1", "day2-item2"}
	gotIDs := []string{day.Items[0].ID, day.Items[1].ID}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Fatalf("cached ids = %v, want %v", gotIDs, wantIDs)
	}
	if day.Items[0].Order != 1 || day.Items[1].Order != 2 {
		t.Fatalf("cached orders = %d,%d; want 1,2", day.Items[0].Order, day.Items[1].Order)
	}
	if len(fake.appends) != 2 || len(fake.deletes) != 0 {
		t.Fatalf("mutations = %d appends %d deletes, want 2/0", len(fake.appends), len(fake.deletes))
	}
}

func TestStore_SaveDayKeepsAscendingOrder(t *testing.T) {
	store, _ := loadedStore(t, []sheet.Row{
		{ID: "day1-item1", Day: "1", Order: "1", Title: "a"},
		{ID: "day3-item1", Day: "3", Order: "1", Title: "c"},
	})

	draft := trip.DaySchedule{Day: 2, Items: []trip.ScheduleItem{{Title: "b"}}}
	if err := store.SaveDay(context.Background(), draft); err != nil {
		t.Fatalf("SaveDay returned error: %v", err)
	}

	snap := store.Snapshot()
	var days []int
	for _, d := range snap.Itinerary {
		days = append(days, d.Day)
	}
	if !reflect.DeepEqual(days, []int{1, 2, 3}) {
		t.Fatalf("day order = %v, want ascending", days)
	}
}

func TestStore_SecondIdenticalSaveIssuesNoCalls(t *testing.T) {
	store, fake := loadedStore(t, nil)

	draft := trip.DaySchedule{Day: 1, Date: "2/26 (三)", Title: "抵達與入住", Items: []trip.ScheduleItem{
		{Title: "搭機", Type: trip.TypeFlight, Time: "17:40"},
	}}
	if err := store.SaveDay(context.Background(), draft); err != nil {
		t.Fatalf("first SaveDay returned error: %v", err)
	}
	afterFirst := fake.mutationCount()

	saved := store.Day(1)
	if saved == nil {
		t.Fatal("Day(1) = nil after save")
	}
	if err := store.SaveDay(context.Background(), *saved); err != nil {
		t.Fatalf("second SaveDay returned error: %v", err)
	}
	if fake.mutationCount() != afterFirst {
		t.Fatalf("second identical save issued %d calls, want 0",
			fake.mutationCount()-afterFirst)
	}
}

func TestStore_SaveFailureLeavesCacheUntouched(t *testing.T) {
	store, fake := loadedStore(t, []sheet.Row{
		{ID: "day1-item1", Day: "1", Order: "1", Title: "old title"},
	})
	fake.failOnAppend = "day1-item1"
	fake.failErr = errors.New("sheet quota exceeded")

	before := store.Snapshot()

	draft := *store.Day(1)
	draft.Items[0].Title = "new title"
	err := store.SaveDay(context.Background(), draft)
	if err == nil {
		t.Fatal("SaveDay returned nil error, want failure")
	}

	// The delete went through before the insert failed; the remote row is
	// gone but the cache must still show the pre-save state.
	if len(fake.deletes) != 1 || fake.deletes[0] != "day1-item1" {
		t.Fatalf("deletes = %v, want the stale row removed first", fake.deletes)
	}
	snap := store.Snapshot()
	if snap.SaveError == "" {
		t.Fatal("SaveError empty after failed save")
	}
	if !reflect.DeepEqual(snap.Itinerary, before.Itinerary) {
		t.Fatalf("cache changed on failed save:\n got %+v\nwant %+v", snap.Itinerary, before.Itinerary)
	}
}

func TestStore_DeleteDay(t *testing.T) {
	store, fake := loadedStore(t, []sheet.Row{
		{ID: "day1-item1", Day: "1", Order: "1", Title: "a"},
		{ID: "day1-item2", Day: "1", Order: "2", Title: "b"},
		{ID: "day2-item1", Day: "2", Order: "1", Title: "c"},
	})

	if err := store.DeleteDay(context.Background(), 1); err != nil {
		t.Fatalf("DeleteDay returned error: %v", err)
	}
	if !reflect.DeepEqual(fake.deletes, []string{"day1-item1", "day1-item2"}) {
		t.Fatalf("deletes = %v, want both day 1 rows", fake.deletes)
	}
	snap := store.Snapshot()
	if len(snap.Itinerary) != 1 || snap.Itinerary[0].Day != 2 {
		t.Fatalf("itinerary = %+v, want only day 2 left", snap.Itinerary)
	}
}

func TestStore_DeleteDayFailureKeepsCache(t *testing.T) {
	store, fake := loadedStore(t, []sheet.Row{
		{ID: "day1-item1", Day: "1", Order: "1", Title: "a"},
		{ID: "day1-item2", Day: "1", Order: "2", Title: "b"},
	})
	fake.failOnDelete = "day1-item2"
	fake.failErr = errors.New("boom")

	if err := store.DeleteDay(context.Background(), 1); err == nil {
		t.Fatal("DeleteDay returned nil error, want failure")
	}
	snap := store.Snapshot()
	if len(snap.Itinerary) != 1 {
		t.Fatalf("itinerary = %+v, want day kept on failure", snap.Itinerary)
	}
	if snap.SaveError == "" {
		t.Fatal("SaveError empty after failed delete")
	}
}

func TestStore_DeleteUnknownDayIsNoop(t *testing.T) {
	store, fake := loadedStore(t, nil)
	if err := store.DeleteDay(context.Background(), 9); err != nil {
		t.Fatalf("DeleteDay returned error: %v", err)
	}
	if fake.mutationCount() != 0 {
		t.Fatalf("mutations = %d, want none for unknown day", fake.mutationCount())
	}
}
