// Package trip holds the domain model for the itinerary and the pure
// mapping between sheet rows and that model.
//
// # Model
//
// The itinerary is an ordered list of DaySchedule values, each holding an
// ordered list of ScheduleItem values. Spots and restaurants are read-only
// reference lists; flights, members, and info cards are static content
// compiled into the binary.
//
// # Mapping
//
// FromRows is the load direction: rows carrying a day number group into
// DaySchedules (sorted by day, then by explicit order when any item has
// one), rows typed spot/food without a day feed the reference lists, and
// everything else is ignored. RowForItem is the save direction, producing
// one wire row per item.
//
// Cell handling is deliberately lenient. Text cells are stored with a
// leading apostrophe so the sheet keeps them verbatim; CleanCell strips it
// on the way in and RowForItem restores it on the way out. Time cells that
// the sheet coerced into full timestamps are reduced to HH:MM. Numbers that
// fail to parse degrade (unset order, zero coordinates) instead of failing
// the load, so one bad row never hides the rest of the trip.
//
// Everything in this package is side-effect free; networking lives in
// internal/sheet and sync policy in internal/reconcile and internal/state.
package trip
