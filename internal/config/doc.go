// Package config handles loading the tripdeck configuration file.
//
// The config lives at ~/.config/tripdeck/config.toml and names the sheet
// macro endpoint plus the per-request timeout:
//
//	sheet_url = "https://script.google.com/macros/s/.../exec"
//	timeout_seconds = 15
//
// Both fields are optional; a missing file is not an error and falls back
// to the built-in trip sheet. Tilde paths are expanded, empty values use
// defaults, and only genuinely broken input (unreadable file, invalid
// TOML) fails the load.
package config
