// Package reconcile turns an edited day schedule into the minimal sequence
// of row-store mutations.
//
// # Why planning exists
//
// The backing store (internal/sheet) only supports appending a row and
// deleting a row by id. There is no in-place update, no transaction, and no
// server-side ordering. Bringing the remote rows in line with a locally
// edited day therefore means deciding, per item, whether to leave it alone,
// delete it, or delete-and-reinsert it, with as few network calls as
// possible, because every call is a chance to fail halfway.
//
// # Pipeline
//
// A save runs in three stages, split so the decision logic stays pure and
// unit-testable without any network mocking:
//
//	prepared := reconcile.Prepare(previous, draft)  // assign ids + order
//	ops := reconcile.Plan(previous, prepared)       // pure diff
//	err := reconcile.Execute(ctx, store, ops)       // sequential IO
//
// Prepare and Plan never touch the network; Execute never makes decisions.
// The caller (internal/state) owns cache semantics: it replaces its cached
// day with the prepared draft only after Execute returns nil.
//
// # Ordering of operations
//
// Plan emits deletes for removed items first, then walks the draft in
// order, emitting delete-then-insert for each changed, shifted, or new
// item. Executing in plan order avoids re-inserting a row before its stale
// duplicate is gone.
//
// # Reorder detection
//
// Because order is a persisted field, permuting items without editing any
// text still has to rewrite every shifted row. Plan detects this by
// comparing the previous and draft identifier sequences; the comparison
// only applies when both sequences have the same length, so a save that
// adds or removes items relies on per-field order diffing alone. That can
// under-sync a combined add/remove/reorder in theory, but order is also a
// compared field, so any item whose assigned position changed is still
// re-inserted.
package reconcile
