package browser

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/bayaz-archive/bayaz/internal/catalog"
	"github.com/bayaz-archive/bayaz/internal/lyrics"
	"github.com/bayaz-archive/bayaz/internal/panel"
)

// ErrNoSuchSong is returned when a selection does not name a catalog song.
var ErrNoSuchSong = errors.New("no such song")

// Browser owns the catalog, the current query, the rendered list, and the
// lyrics panel. It is not safe for concurrent use; callers drive it from a
// single event loop and run Loader.Load elsewhere.
type Browser struct {
	catalog *catalog.Catalog
	loader  *lyrics.Loader
	panel   *panel.Controller
	logger  *zap.Logger

	query   string
	items   []Item
	cursor  int
	notice  string
	pending lyrics.Ticket
}

// New builds a Browser showing the whole catalog.
func New(cat *catalog.Catalog, loader *lyrics.Loader, logger *zap.Logger) *Browser {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loader == nil {
		loader = lyrics.NewLoader(nil, logger)
	}
	b := &Browser{
		catalog: cat,
		loader:  loader,
		panel:   panel.New(),
		logger:  logger,
	}
	b.refilter()
	return b
}

// SetQuery re-filters and re-renders the list.
func (b *Browser) SetQuery(query string) {
	b.query = query
	b.refilter()
}

// Query returns the active query.
func (b *Browser) Query() string {
	return b.query
}

// Items returns the rendered list.
func (b *Browser) Items() []Item {
	return slices.Clone(b.items)
}

// MoveCursor moves the list cursor by delta, clamped to the list.
func (b *Browser) MoveCursor(delta int) {
	b.cursor = clamp(b.cursor+delta, len(b.items))
}

// SetCursor places the list cursor, clamped to the list.
func (b *Browser) SetCursor(pos int) {
	b.cursor = clamp(pos, len(b.items))
}

// Cursor returns the list cursor.
func (b *Browser) Cursor() int {
	return b.cursor
}

// Selected returns the item under the cursor.
func (b *Browser) Selected() (Item, bool) {
	if len(b.items) == 0 {
		return Item{}, false
	}
	return b.items[b.cursor], true
}

// Select starts a lyrics load for the song at catalog index. The returned
// ticket must accompany the load result passed to Apply.
func (b *Browser) Select(index int) (lyrics.Ticket, catalog.SongSummary, error) {
	song, ok := b.catalog.At(index)
	if !ok {
		return 0, catalog.SongSummary{}, fmt.Errorf("%w: index %d", ErrNoSuchSong, index)
	}
	b.pending = b.loader.Begin()
	return b.pending, song, nil
}

// SelectCursor starts a load for the item under the cursor.
func (b *Browser) SelectCursor() (lyrics.Ticket, catalog.SongSummary, error) {
	item, ok := b.Selected()
	if !ok {
		return 0, catalog.SongSummary{}, fmt.Errorf("%w: list is empty", ErrNoSuchSong)
	}
	return b.Select(item.Index)
}

// Apply folds a load result into the panel. Results for stale tickets are
// dropped. A failed load leaves the panel as it was and sets a notice.
func (b *Browser) Apply(res lyrics.Result) bool {
	if !b.loader.Current(res.Ticket) {
		b.logger.Debug("discarding stale lyrics result",
			zap.Uint64("ticket", uint64(res.Ticket)),
			zap.String("song", res.Song.Name))
		return false
	}
	b.pending = 0
	if res.Err != nil {
		if errors.Is(res.Err, lyrics.ErrNotFound) {
			b.notice = fmt.Sprintf("Lyrics for %q are missing", res.Song.Name)
		} else {
			b.notice = fmt.Sprintf("Could not load lyrics for %q", res.Song.Name)
		}
		return false
	}
	b.notice = ""
	b.panel.Show(res.Song, res.Doc, res.Style)
	return true
}

// Open re-shows the last loaded song. It reports false when nothing has been
// loaded yet.
func (b *Browser) Open() bool {
	return b.panel.Reopen()
}

// Close hides the lyrics panel.
func (b *Browser) Close() {
	b.panel.Close()
}

// Panel returns the panel state.
func (b *Browser) Panel() panel.Snapshot {
	return b.panel.Snapshot()
}

// Notice returns the last user-facing message, if any.
func (b *Browser) Notice() string {
	return b.notice
}

// DismissNotice clears the notice.
func (b *Browser) DismissNotice() {
	b.notice = ""
}

// Loading reports whether a load is outstanding.
func (b *Browser) Loading() bool {
	return b.pending != 0
}

// Catalog returns the catalog being browsed.
func (b *Browser) Catalog() *catalog.Catalog {
	return b.catalog
}

// Loader returns the lyrics loader used for selections.
func (b *Browser) Loader() *lyrics.Loader {
	return b.loader
}

// Replace swaps in a reloaded catalog and re-applies the current query. The
// cursor follows the previously selected song when it still exists.
func (b *Browser) Replace(cat *catalog.Catalog) {
	var selectedName string
	if item, ok := b.Selected(); ok {
		selectedName = item.Song.Name
	}
	b.catalog = cat
	b.refilter()
	if selectedName == "" {
		return
	}
	for i, item := range b.items {
		if item.Song.Name == selectedName {
			b.cursor = i
			return
		}
	}
}

// View projects the browser state for rendering.
func (b *Browser) View() ViewModel {
	vm := Project(b.catalog, b.query, b.cursor, b.panel.Snapshot())
	vm.Notice = b.notice
	vm.Loading = b.Loading()
	return vm
}

func (b *Browser) refilter() {
	b.items = Render(catalog.Filter(b.catalog, b.query))
	b.cursor = clamp(b.cursor, len(b.items))
}
