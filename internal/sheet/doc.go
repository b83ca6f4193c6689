// Package sheet provides the HTTP client for the spreadsheet macro endpoint
// that persists the trip data.
//
// # Overview
//
// The remote store is a Google Apps Script web app in front of a single
// sheet. It exposes exactly three operations:
//
//   - GET <endpoint>: returns {"data": [Row, ...]} with every row
//   - POST <endpoint> with a full row object: appends the row
//   - POST <endpoint> with {"action": "delete", "id": ...}: removes a row
//
// There is no update-in-place, no ordering guarantee, and no transaction.
// Higher layers (internal/reconcile, internal/state) are written around
// those constraints; this package only does the wire work.
//
// # RowStore
//
// Callers depend on the RowStore interface rather than *Client, so tests
// and alternative backings (a local file, an in-memory fake) can stand in
// for the sheet without touching the sync logic.
//
// # Cells
//
// Apps Script serializes cells as whatever type the sheet inferred, so a
// "2" in the day column may arrive as the number 2 or the string "2". The
// Cell type absorbs both and offers lenient Int/Float accessors that report
// failure instead of guessing; the mapper in internal/trip decides what a
// failed parse degrades to.
//
// # Errors
//
// Non-2xx responses surface the response body text as the error message
// (the macro writes human-readable failures there), falling back to
// "HTTP <code>" when the body is empty. Network and decode failures are
// wrapped with fmt.Errorf("...: %w", err). No retries are attempted at
// this layer.
package sheet
