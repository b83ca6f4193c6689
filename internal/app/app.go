package app

import (
	"context"
	"fmt"

	"github.com/jyang/tripdeck/internal/config"
	"github.com/jyang/tripdeck/internal/prefs"
	"github.com/jyang/tripdeck/internal/sheet"
	"github.com/jyang/tripdeck/internal/state"
	"github.com/jyang/tripdeck/internal/ui"
)

// Options configure the tripdeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tripdeck/prefs.toml
}

// Run boots the tripdeck TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := sheet.NewClient(cfg.SheetURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init sheet client: %w", err)
	}

	store := state.New(client)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		ThemeName: userPrefs.Theme,
		StartTab:  userPrefs.Tab,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
