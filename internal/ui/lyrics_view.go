package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bayaz-archive/bayaz/internal/lyrics"
	"github.com/bayaz-archive/bayaz/internal/panel"
)

// layoutLyrics turns document lines into panel rows of exactly width cells.
// Urdu is right-aligned, English is left-aligned and compact, everything
// else is centered. Wide leading adds an empty row after every lyric line;
// spacer lines always produce one empty row.
func layoutLyrics(lines []lyrics.Line, style lyrics.Style, width int) []string {
	if width <= 0 {
		return nil
	}
	align := alignCenter
	switch {
	case style.RightToLeft():
		align = alignRight
	case style.Font == lyrics.FontCompactSerif:
		align = alignLeft
	}
	blank := strings.Repeat(" ", width)

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.IsBlank {
			rows = append(rows, blank)
			continue
		}
		for _, part := range wrap(line.Text, width) {
			rows = append(rows, place(part, width, align))
		}
		if style.LineHeight == lyrics.LineHeightWide {
			rows = append(rows, blank)
		}
	}
	return rows
}

// lyricStyle maps font and size onto terminal attributes.
func (m Model) lyricStyle(style lyrics.Style) lipgloss.Style {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	s := styles.Text
	if style.Size == lyrics.SizeSmall {
		s = styles.MutedText
	}
	switch style.Font {
	case lyrics.FontCompactSerif:
		s = s.Italic(true)
	case lyrics.FontRTLSerif:
		s = s.Bold(true)
	}
	return s
}

// updateLyricsViewport re-renders the open panel's document into the
// viewport.
func (m *Model) updateLyricsViewport() {
	snap := m.browser.Panel()
	if snap.State != panel.Open {
		m.lyricsVP.SetContent("")
		return
	}
	width := m.lyricsVP.Width
	rowStyle := m.lyricStyle(snap.Style)
	bg := NewBgStyle(m.theme.FocusBg)

	var b strings.Builder
	if snap.Song != nil {
		styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
		b.WriteString(bg.FillLine(bg.Render(truncate(snap.Song.Writer+" · "+snap.Song.Singer, width), styles.MutedText), width))
		b.WriteString("\n")
		b.WriteString(bg.Spaces(width))
		b.WriteString("\n")
	}
	rows := layoutLyrics(snap.Lines, snap.Style, width)
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(bg.Render(row, rowStyle))
	}
	m.lyricsVP.SetContent(b.String())
}
