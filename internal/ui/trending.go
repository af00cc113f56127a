package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bayaz-archive/bayaz/internal/remote"
)

// renderTrending draws the top songs and top writers side by side.
func (m Model) renderTrending() string {
	height := m.contentHeight()
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)

	if !m.remote {
		msg := styles.MutedText.Render("Trending needs the catalog service. Set api_url in config.toml.")
		return m.renderTitledBox("Trending", msg, m.width, height, true)
	}
	if !m.snapshot.HasTrending {
		msg := styles.MutedText.Render("Loading trending songs...")
		if m.snapshot.LastError != nil {
			msg = styles.DangerText.Render("Trending unavailable: " + m.snapshot.LastError.Error())
		}
		return m.renderTitledBox("Trending", msg, m.width, height, true)
	}

	leftW := m.width / 2
	rightW := m.width - leftW
	songs := m.renderTitledBox("Top Songs", m.trendingSongRows(m.snapshot.Trending.Songs, leftW-2), leftW, height, true)
	writers := m.renderTitledBox("Top Writers", m.trendingWriterRows(m.snapshot.Trending.Writers, rightW-2), rightW, height, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, songs, writers)
}

func (m Model) trendingSongRows(songs []remote.TopSong, width int) string {
	rows := make([]rankRow, 0, len(songs))
	for _, s := range songs {
		rows = append(rows, rankRow{label: s.Title, count: s.Likes})
	}
	return m.renderRanking(rows, width, m.theme.FocusBg)
}

func (m Model) trendingWriterRows(writers []remote.TopWriter, width int) string {
	rows := make([]rankRow, 0, len(writers))
	for _, w := range writers {
		rows = append(rows, rankRow{label: w.Name, count: w.TotalLikes})
	}
	return m.renderRanking(rows, width, m.theme.SurfaceAlt)
}

type rankRow struct {
	label string
	count int
}

// renderRanking draws "1. label ........ 12 likes" rows.
func (m Model) renderRanking(rows []rankRow, width int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	if len(rows) == 0 {
		return styles.MutedText.Render("Nothing yet")
	}

	out := make([]string, 0, len(rows)*2)
	for i, r := range rows {
		rank := fmt.Sprintf("%d. ", i+1)
		likes := formatLikes(r.count)
		labelW := max(width-len(rank)-runewidth.StringWidth(likes)-1, 1)
		label := truncate(r.label, labelW)
		gap := width - len(rank) - runewidth.StringWidth(label) - runewidth.StringWidth(likes)
		line := bg.Render(rank, styles.AccentText) +
			bg.Render(label, styles.Text.Bold(true)) +
			bg.Spaces(gap) +
			bg.Render(likes, styles.WarningText)
		out = append(out, line, "")
	}
	return strings.Join(out, "\n")
}

func formatLikes(n int) string {
	if n == 1 {
		return "1 like"
	}
	return fmt.Sprintf("%d likes", n)
}
