package panel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bayaz-archive/bayaz/internal/catalog"
	"github.com/bayaz-archive/bayaz/internal/lyrics"
)

var zeb = catalog.SongSummary{Name: "Zeb", Writer: "Amin", Singer: "Gul", Lang: catalog.LangUrdu, LyricsRef: "zeb.txt"}

func TestController_InitialStateClosed(t *testing.T) {
	c := New()
	snap := c.Snapshot()
	require.Equal(t, Closed, snap.State)
	require.False(t, snap.Backdrop)
	require.Nil(t, snap.Song)
	require.Empty(t, snap.Title)
}

func TestController_ShowOpensWithContent(t *testing.T) {
	c := New()
	doc := lyrics.Parse("Line1\n\nLine2")
	style := lyrics.StyleFor(zeb.Lang)

	c.Show(zeb, doc, style)

	snap := c.Snapshot()
	require.Equal(t, Open, snap.State)
	require.True(t, snap.Backdrop)
	require.Equal(t, "Zeb", snap.Title)
	require.Equal(t, doc.Lines, snap.Lines)
	require.Equal(t, style, snap.Style)
	require.Equal(t, zeb, *snap.Song)
}

func TestController_CloseClearsBackdropAndContent(t *testing.T) {
	c := New()
	c.Show(zeb, lyrics.Parse("a"), lyrics.Style{})
	c.Close()

	snap := c.Snapshot()
	require.Equal(t, Closed, snap.State)
	require.False(t, snap.Backdrop)
	require.Empty(t, snap.Lines)
	require.Nil(t, snap.Song)
}

func TestController_ShowReplacesInPlace(t *testing.T) {
	c := New()
	c.Show(zeb, lyrics.Parse("first"), lyrics.Style{})

	asha := catalog.SongSummary{Name: "Asha", Writer: "Noor", Singer: "Gul", Lang: catalog.LangEnglish}
	c.Show(asha, lyrics.Parse("second"), lyrics.StyleFor(asha.Lang))

	snap := c.Snapshot()
	require.Equal(t, Open, snap.State)
	require.Equal(t, "Asha", snap.Title)
	require.Equal(t, []lyrics.Line{{Text: "second"}}, snap.Lines)
}

func TestController_Reopen(t *testing.T) {
	c := New()
	require.False(t, c.Reopen(), "reopen with no content")
	require.Equal(t, Closed, c.State())

	c.Show(zeb, lyrics.Parse("a"), lyrics.Style{})
	require.True(t, c.Reopen(), "reopen while open keeps content")
	require.Equal(t, "Zeb", c.Snapshot().Title)

	c.Close()
	require.Empty(t, c.Snapshot().Title, "closed panel exposes no content")
	require.True(t, c.Reopen(), "explicit open re-shows the last song")
	snap := c.Snapshot()
	require.Equal(t, Open, snap.State)
	require.True(t, snap.Backdrop)
	require.Equal(t, "Zeb", snap.Title)

	c.Clear()
	require.False(t, c.Reopen(), "nothing to show after clear")
	require.Equal(t, Closed, c.State())
}

func TestController_SnapshotIsIndependent(t *testing.T) {
	c := New()
	c.Show(zeb, lyrics.Parse("a\nb"), lyrics.Style{})

	snap := c.Snapshot()
	snap.Lines[0].Text = "changed"
	snap.Song.Name = "changed"

	again := c.Snapshot()
	require.Equal(t, "a", again.Lines[0].Text)
	require.Equal(t, "Zeb", again.Title)
}
