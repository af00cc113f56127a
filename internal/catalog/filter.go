package catalog

import "strings"

// Entry pairs a song with its index in the catalog so selections survive
// re-filtering.
type Entry struct {
	Index int
	Song  SongSummary
}

// Filter returns the songs whose name, writer, or singer contains query,
// case-insensitively. An empty query matches every song. Catalog order is
// preserved.
func Filter(c *Catalog, query string) []Entry {
	out := make([]Entry, 0, c.Len())
	if c == nil {
		return out
	}
	needle := strings.ToLower(query)
	for i, song := range c.songs {
		if matches(song, needle) {
			out = append(out, Entry{Index: i, Song: song})
		}
	}
	return out
}

func matches(song SongSummary, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(song.Name), needle) ||
		strings.Contains(strings.ToLower(song.Writer), needle) ||
		strings.Contains(strings.ToLower(song.Singer), needle)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
