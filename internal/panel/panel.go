// Package panel holds the open/closed state of the lyrics detail panel,
// independent of how it is drawn.
package panel

import (
	"slices"

	"github.com/bayaz-archive/bayaz/internal/catalog"
	"github.com/bayaz-archive/bayaz/internal/lyrics"
)

// State is the visibility of the panel.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Snapshot is a read-only copy of the panel for renderers.
type Snapshot struct {
	State    State
	Title    string
	Lines    []lyrics.Line
	Style    lyrics.Style
	Backdrop bool
	Song     *catalog.SongSummary
}

// Controller is the single lyrics panel. There is exactly one instance per
// browser; showing new content replaces the old in place.
type Controller struct {
	state    State
	song     *catalog.SongSummary
	doc      lyrics.Document
	style    lyrics.Style
	backdrop bool
}

// New returns a closed panel.
func New() *Controller {
	return &Controller{}
}

// Show fills the panel with a loaded document and opens it.
func (c *Controller) Show(song catalog.SongSummary, doc lyrics.Document, style lyrics.Style) {
	c.song = &song
	c.doc = doc
	c.style = style
	c.open()
}

// Reopen opens the panel with the content it already holds. It reports false
// when there is nothing to show.
func (c *Controller) Reopen() bool {
	if c.song == nil {
		return false
	}
	c.open()
	return true
}

// Close hides the panel and removes the backdrop. The last document stays
// behind the panel so Reopen can show it again; it is only exposed through
// Snapshot while the panel is open.
func (c *Controller) Close() {
	c.state = Closed
	c.backdrop = false
}

// Clear closes the panel and drops its content.
func (c *Controller) Clear() {
	c.Close()
	c.song = nil
	c.doc = lyrics.Document{}
	c.style = lyrics.Style{}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Snapshot copies the panel for rendering. A closed panel has no content.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{State: c.state, Backdrop: c.backdrop}
	if c.state != Open {
		return snap
	}
	snap.Lines = slices.Clone(c.doc.Lines)
	snap.Style = c.style
	if c.song != nil {
		song := *c.song
		snap.Song = &song
		snap.Title = song.Name
	}
	return snap
}

func (c *Controller) open() {
	c.state = Open
	c.backdrop = true
}
