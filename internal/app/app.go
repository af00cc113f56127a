package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bayaz-archive/bayaz/internal/browser"
	"github.com/bayaz-archive/bayaz/internal/catalog"
	"github.com/bayaz-archive/bayaz/internal/prefs"
	"github.com/bayaz-archive/bayaz/internal/state"
	"github.com/bayaz-archive/bayaz/internal/ui"
)

// Run boots the bayaz TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	userPrefs := prefs.Load(opts.PrefsPath)
	b := browser.New(env.Catalog, env.Loader(), env.Logger.Named("browser"))
	b.SetQuery(userPrefs.LastQuery)

	store := &state.Store{}
	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}
	if env.Client != nil {
		StartPoller(ctx, store, env.Client, interval, env.Logger.Named("poller"))
	}

	var reloads <-chan *catalog.Catalog
	if env.Config.Watch && !env.Config.Remote() {
		w, err := WatchCatalog(ctx, env.Config.CatalogPath, env.Logger.Named("watcher"))
		if err != nil {
			// Browsing still works without live reloads.
			env.Logger.Warn("catalog watch disabled", zap.Error(err))
		} else {
			defer func() { _ = w.Close() }()
			reloads = w.Reloads()
		}
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Browser:   b,
		Store:     store,
		Config:    &env.Config,
		Reloads:   reloads,
		PollTick:  time.Second,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Remote:    env.Client != nil,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
