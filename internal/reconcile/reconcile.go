package reconcile

import (
	"context"
	"fmt"

	"github.com/jyang/tripdeck/internal/sheet"
	"github.com/jyang/tripdeck/internal/trip"
)

// OpKind distinguishes the two mutations the row store supports.
type OpKind int

const (
	OpDelete OpKind = iota
	OpInsert
)

// Op is one remote mutation. Deletes carry an ID; inserts carry the full
// row payload.
type Op struct {
	Kind OpKind
	ID   string
	Row  sheet.Row
}

// Prepare returns a copy of draft where every item has an identifier of the
// form day<N>-item<K> (lowest unused K, scanning the previously synced
// items to avoid collision) and an order equal to its 1-based position.
// previous is nil when the day has never been synced.
func Prepare(previous *trip.DaySchedule, draft trip.DaySchedule) trip.DaySchedule {
	used := make(map[string]bool)
	if previous != nil {
		for _, item := range previous.Items {
			if item.ID != "" {
				used[item.ID] = true
			}
		}
	}
	for _, item := range draft.Items {
		if item.ID != "" {
			used[item.ID] = true
		}
	}

	items := make([]trip.ScheduleItem, len(draft.Items))
	copy(items, draft.Items)

	next := 1
	for i := range items {
		if items[i].ID == "" {
			for {
				id := fmt.Sprintf("day%d-item%d", draft.Day, next)
				next++
				if !used[id] {
					items[i].ID = id
					used[id] = true
					break
				}
			}
		}
		items[i].Order = i + 1
	}

	prepared := draft
	prepared.Items = items
	return prepared
}

// Plan computes the ordered mutations that bring the remote rows for one
// day in line with draft. draft must already be prepared (see Prepare).
// Deletions of removed items come first, then changed or new items as
// delete-then-insert pairs; untouched items produce no operations.
//
// The store cannot update a row in place, so a pure reorder still forces a
// delete+insert for every item whose position changed. Order-change
// detection compares identifier sequences only when their lengths match;
// when items were added or removed in the same save, field and order
// diffing alone drives re-insertion.
func Plan(previous *trip.DaySchedule, draft trip.DaySchedule) []Op {
	var prevItems []trip.ScheduleItem
	if previous != nil {
		prevItems = previous.Items
	}

	prevByID := make(map[string]trip.ScheduleItem)
	prevIDs := make([]string, 0, len(prevItems))
	for _, item := range prevItems {
		if item.ID == "" {
			continue
		}
		prevByID[item.ID] = item
		prevIDs = append(prevIDs, item.ID)
	}

	draftByID := make(map[string]trip.ScheduleItem)
	draftIDs := make([]string, 0, len(draft.Items))
	for _, item := range draft.Items {
		if item.ID == "" {
			continue
		}
		draftByID[item.ID] = item
		draftIDs = append(draftIDs, item.ID)
	}

	orderChanged := false
	if len(prevIDs) == len(draftIDs) {
		for i, id := range prevIDs {
			if id != draftIDs[i] {
				orderChanged = true
				break
			}
		}
	}

	metaChanged := true
	if previous != nil {
		metaChanged = previous.Date != draft.Date || previous.Title != draft.Title
	}

	var ops []Op

	// Removed items first.
	for _, id := range prevIDs {
		if _, ok := draftByID[id]; !ok {
			ops = append(ops, Op{Kind: OpDelete, ID: id})
		}
	}

	for _, item := range draft.Items {
		if item.ID == "" {
			continue
		}
		prev, existed := prevByID[item.ID]
		shifted := orderChanged && existed && prev.Order != item.Order
		if existed && sameItem(prev, item) && !metaChanged && !shifted {
			continue
		}
		if existed {
			ops = append(ops, Op{Kind: OpDelete, ID: item.ID})
		}
		ops = append(ops, Op{Kind: OpInsert, ID: item.ID, Row: trip.RowForItem(draft, item)})
	}
	return ops
}

func sameItem(a, b trip.ScheduleItem) bool {
	return a.Order == b.Order &&
		a.Time == b.Time &&
		a.Title == b.Title &&
		a.Description == b.Description &&
		a.Type == b.Type &&
		a.NaverPlaceID == b.NaverPlaceID &&
		sameCoords(a.Coords, b.Coords)
}

func sameCoords(a, b *trip.Coords) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// RemoveDay plans the deletion of every known item of a day.
func RemoveDay(day trip.DaySchedule) []Op {
	var ops []Op
	for _, item := range day.Items {
		if item.ID == "" {
			continue
		}
		ops = append(ops, Op{Kind: OpDelete, ID: item.ID})
	}
	return ops
}

// Execute applies ops against the store one at a time, in order. The first
// failure aborts the remainder; rows already mutated stay mutated, which is
// the accepted risk of the transactionless backing store.
func Execute(ctx context.Context, store sheet.RowStore, ops []Op) error {
	for _, op := range ops {
		switch op.Kind {
		case OpDelete:
			if err := store.Delete(ctx, op.ID); err != nil {
				return fmt.Errorf("delete %s: %w", op.ID, err)
			}
		case OpInsert:
			if err := store.Append(ctx, op.Row); err != nil {
				return fmt.Errorf("insert %s: %w", op.ID, err)
			}
		}
	}
	return nil
}
