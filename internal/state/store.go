package state

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/jyang/tripdeck/internal/reconcile"
	"github.com/jyang/tripdeck/internal/sheet"
	"github.com/jyang/tripdeck/internal/trip"
)

// Snapshot is the latest data available to the UI.
type Snapshot struct {
	Itinerary []trip.DaySchedule
	Spots     []trip.Spot
	Food      []trip.Restaurant
	Loading   bool
	LoadError string
	Saving    bool
	SaveError string
}

// Store holds the client-side cache of the sheet and runs save and delete
// operations against it. The sheet remains the source of truth; the cached
// itinerary is only valid until the next Load or until a save replaces one
// of its days.
type Store struct {
	mu   sync.RWMutex
	rows sheet.RowStore

	itinerary []trip.DaySchedule
	spots     []trip.Spot
	food      []trip.Restaurant
	loading   bool
	loadError string
	saving    bool
	saveError string
}

// New builds a Store backed by the given row store. The store starts in the
// loading state until the first Load completes.
func New(rows sheet.RowStore) *Store {
	return &Store{rows: rows, loading: true}
}

// Snapshot returns an independent copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Itinerary: cloneItinerary(s.itinerary),
		Spots:     append([]trip.Spot(nil), s.spots...),
		Food:      append([]trip.Restaurant(nil), s.food...),
		Loading:   s.loading,
		LoadError: s.loadError,
		Saving:    s.saving,
		SaveError: s.saveError,
	}
}

// Load fetches every row once and replaces the whole cache. On failure no
// partial data is kept and the load error is set for display.
func (s *Store) Load(ctx context.Context) error {
	rows, err := s.rows.List(ctx)
	if err != nil {
		log.Printf("sheet load failed: %v", err)
		s.mu.Lock()
		s.loading = false
		s.loadError = "Failed to load sheet data."
		s.mu.Unlock()
		return err
	}
	data := trip.FromRows(rows)

	s.mu.Lock()
	s.itinerary = data.Itinerary
	s.spots = data.Spots
	s.food = data.Food
	s.loading = false
	s.loadError = ""
	s.mu.Unlock()
	return nil
}

// SaveDay reconciles an edited day against the sheet. Identifiers and order
// values are assigned to the draft first; the cached day is replaced only
// after every remote operation succeeded. On failure the cache keeps its
// pre-save value and the save error is set for display, even though the
// sheet may have been partially mutated.
func (s *Store) SaveDay(ctx context.Context, draft trip.DaySchedule) error {
	s.mu.Lock()
	s.saving = true
	s.saveError = ""
	previous := s.dayLocked(draft.Day)
	s.mu.Unlock()

	prepared := reconcile.Prepare(previous, draft)
	ops := reconcile.Plan(previous, prepared)
	err := reconcile.Execute(ctx, s.rows, ops)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		log.Printf("save day %d failed: %v", draft.Day, err)
		s.saveError = err.Error()
		return err
	}

	replaced := s.itinerary[:0:0]
	for _, d := range s.itinerary {
		if d.Day != prepared.Day {
			replaced = append(replaced, d)
		}
	}
	replaced = append(replaced, prepared)
	sort.Slice(replaced, func(i, j int) bool { return replaced[i].Day < replaced[j].Day })
	s.itinerary = replaced
	return nil
}

// DeleteDay removes every persisted item of a day from the sheet, then
// drops the day from the cache. A mid-sequence failure leaves the cache
// unchanged; rows already deleted remotely stay deleted.
func (s *Store) DeleteDay(ctx context.Context, dayNumber int) error {
	s.mu.Lock()
	s.saving = true
	s.saveError = ""
	current := s.dayLocked(dayNumber)
	s.mu.Unlock()

	var err error
	if current != nil {
		err = reconcile.Execute(ctx, s.rows, reconcile.RemoveDay(*current))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		log.Printf("delete day %d failed: %v", dayNumber, err)
		s.saveError = "Failed to delete day."
		return err
	}

	kept := s.itinerary[:0:0]
	for _, d := range s.itinerary {
		if d.Day != dayNumber {
			kept = append(kept, d)
		}
	}
	s.itinerary = kept
	return nil
}

// Day returns a copy of the cached day, or nil when unknown.
func (s *Store) Day(dayNumber int) *trip.DaySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dayLocked(dayNumber)
}

// dayLocked returns an independent copy of the cached day. Callers hold mu.
func (s *Store) dayLocked(dayNumber int) *trip.DaySchedule {
	for _, d := range s.itinerary {
		if d.Day == dayNumber {
			clone := cloneDay(d)
			return &clone
		}
	}
	return nil
}

func cloneItinerary(days []trip.DaySchedule) []trip.DaySchedule {
	if len(days) == 0 {
		return nil
	}
	dup := make([]trip.DaySchedule, len(days))
	for i, d := range days {
		dup[i] = cloneDay(d)
	}
	return dup
}

func cloneDay(d trip.DaySchedule) trip.DaySchedule {
	clone := d
	if len(d.Items) > 0 {
		clone.Items = make([]trip.ScheduleItem, len(d.Items))
		copy(clone.Items, d.Items)
		for i := range clone.Items {
			if c := clone.Items[i].Coords; c != nil {
				dup := *c
				clone.Items[i].Coords = &dup
			}
		}
	}
	return clone
}
