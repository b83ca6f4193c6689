// Package state provides the thread-safe view-state holder for tripdeck.
//
// # Overview
//
// The Store is the single cache of everything the sheet holds: the
// itinerary, the read-only spot and restaurant lists, and the load/save
// flags the UI renders. It is also where the reconcile pipeline gets
// executed: SaveDay and DeleteDay take the user's edits, run the pure
// planner from internal/reconcile, apply the resulting operations against
// the injected sheet.RowStore, and only then touch the cache.
//
// # Update semantics
//
//	Load: replaces the whole cache on success; on failure keeps nothing
//	      and records a load error (no partial data is ever shown).
//	SaveDay: on success replaces exactly one cached day with the prepared
//	      draft, preserving ascending day order; on failure the cache is
//	      left at its pre-save value, even though the sheet may have been
//	      partially mutated.
//	DeleteDay: on success drops the day; on failure keeps it.
//
// All errors are converted to display strings at this boundary; nothing
// above the Store has to handle a raw network error.
//
// # Concurrency
//
// A RWMutex guards the cache; Snapshot returns defensive copies so the UI
// can never mutate or observe in-progress state. Remote IO runs outside
// the lock. Saves of the same day must not overlap; the UI enforces that
// by disabling save controls while the Saving flag is set.
package state
