package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bayaz-archive/bayaz/internal/browser"
	"github.com/bayaz-archive/bayaz/internal/panel"
	"github.com/bayaz-archive/bayaz/internal/remote"
)

// ErrOffline is returned by operations that need the catalog service when no
// api_url is configured.
var ErrOffline = errors.New("no catalog service configured (set api_url)")

// Search returns the rendered list items matching query.
func (e *Env) Search(query string) []browser.Item {
	b := browser.New(e.Catalog, nil, e.Logger.Named("browser"))
	b.SetQuery(query)
	return b.Items()
}

// Show loads the lyrics of the song named title and returns the open panel.
func (e *Env) Show(ctx context.Context, title string) (panel.Snapshot, error) {
	idx, ok := e.Catalog.FindByName(title)
	if !ok {
		return panel.Snapshot{}, fmt.Errorf("%w: %q", browser.ErrNoSuchSong, title)
	}
	loader := e.Loader()
	b := browser.New(e.Catalog, loader, e.Logger.Named("browser"))
	ticket, song, err := b.Select(idx)
	if err != nil {
		return panel.Snapshot{}, err
	}
	res := loader.Load(ctx, ticket, song)
	if res.Err != nil {
		return panel.Snapshot{}, res.Err
	}
	b.Apply(res)
	return b.Panel(), nil
}

// Trending fetches the current top songs and writers.
func (e *Env) Trending(ctx context.Context) (remote.Trending, error) {
	if e.Client == nil {
		return remote.Trending{}, ErrOffline
	}
	return e.Client.FetchTrending(ctx)
}
