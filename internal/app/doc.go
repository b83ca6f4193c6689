// Package app provides the orchestration layer for tripdeck.
//
// # Overview
//
// This package wires together configuration, the sheet client, the state
// store, and the UI. It is the composition root: every dependency is
// created here and handed to the layer below.
//
// # Architecture
//
// Run follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/tripdeck/config.toml
//  2. Load user preferences (theme, last tab); failures fall back to defaults
//  3. Initialize the HTTP client for the sheet endpoint
//  4. Create the shared state.Store around the client
//  5. Start the TUI and block until the user exits or the context cancels
//
// There is no background refresh loop. The sheet is loaded once when the
// UI starts and again only when the user asks for a reload, so a flaky
// connection never disturbs an open editing session.
//
// # Error Handling
//
// Configuration and client initialization failures are fatal and returned
// from Run. Everything after startup is recoverable: load and save
// failures surface as messages in the UI status bar while the cached data
// stays on screen.
package app
