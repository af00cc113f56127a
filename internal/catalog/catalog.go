package catalog

import (
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog is the ordered, read-only set of songs available for browsing.
// Songs are sorted by name with locale-aware collation when the catalog is
// built; the order never changes afterwards.
type Catalog struct {
	songs []SongSummary
}

// New validates songs and returns a name-sorted Catalog. The input slice is
// not modified.
func New(songs []SongSummary) (*Catalog, error) {
	sorted := make([]SongSummary, len(songs))
	copy(sorted, songs)
	for i, song := range sorted {
		if err := song.Validate(); err != nil {
			return nil, fmt.Errorf("song %d: %w", i, err)
		}
	}

	coll := collate.New(language.Und)
	slices.SortStableFunc(sorted, func(a, b SongSummary) int {
		return coll.CompareString(a.Name, b.Name)
	})
	return &Catalog{songs: sorted}, nil
}

// FromRecords converts external records and builds a Catalog.
func FromRecords(records []Record) (*Catalog, error) {
	songs := make([]SongSummary, 0, len(records))
	for _, r := range records {
		songs = append(songs, r.Song())
	}
	return New(songs)
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.songs)
}

// At returns the song at catalog index i.
func (c *Catalog) At(i int) (SongSummary, bool) {
	if c == nil || i < 0 || i >= len(c.songs) {
		return SongSummary{}, false
	}
	return c.songs[i], true
}

// Songs returns a copy of the catalog in sorted order.
func (c *Catalog) Songs() []SongSummary {
	if c == nil {
		return nil
	}
	return slices.Clone(c.songs)
}

// FindByName returns the index of the first song whose name matches exactly,
// ignoring case.
func (c *Catalog) FindByName(name string) (int, bool) {
	if c == nil {
		return -1, false
	}
	for i, song := range c.songs {
		if equalFold(song.Name, name) {
			return i, true
		}
	}
	return -1, false
}
