package browser

import (
	"fmt"

	"github.com/bayaz-archive/bayaz/internal/catalog"
	"github.com/bayaz-archive/bayaz/internal/panel"
)

// Item is one rendered list card.
type Item struct {
	Title    string
	Subtitle string
	Lang     string
	// Index is the song's position in the catalog, not in the filtered list.
	Index int
	Song  catalog.SongSummary
}

// Subtitle composes the writer/singer line shown under a song title.
func Subtitle(song catalog.SongSummary) string {
	return fmt.Sprintf("Writer: %s | Singer: %s", song.Writer, song.Singer)
}

// Render projects filter results into list items. Every call builds a fresh
// list.
func Render(entries []catalog.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{
			Title:    e.Song.Name,
			Subtitle: Subtitle(e.Song),
			Lang:     e.Song.Lang.String(),
			Index:    e.Index,
			Song:     e.Song,
		})
	}
	return items
}

// ViewModel is everything a renderer needs to draw the browser.
type ViewModel struct {
	Query   string
	Items   []Item
	Cursor  int
	Total   int
	Panel   panel.Snapshot
	Notice  string
	Loading bool
}

// Project derives a view model from a catalog, a query, the list cursor, and
// the panel state. It has no side effects.
func Project(cat *catalog.Catalog, query string, cursor int, p panel.Snapshot) ViewModel {
	items := Render(catalog.Filter(cat, query))
	return ViewModel{
		Query:  query,
		Items:  items,
		Cursor: clamp(cursor, len(items)),
		Total:  cat.Len(),
		Panel:  p,
	}
}

func clamp(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
