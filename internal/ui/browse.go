package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bayaz-archive/bayaz/internal/browser"
	"github.com/bayaz-archive/bayaz/internal/panel"
)

// itemRows is how many rows one song card takes in the list.
const itemRows = 2

// handleBrowseKey processes keyboard input for the song list and the lyrics
// panel. While the panel is open it owns navigation keys.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.browser.Panel().State == panel.Open {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.ClosePanel):
			m.browser.Close()
			return m, nil
		}
		var cmd tea.Cmd
		m.lyricsVP, cmd = m.lyricsVP.Update(msg)
		return m, cmd
	}

	page := m.visibleItems()
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Up):
		m.browser.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.browser.MoveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.browser.SetCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.browser.SetCursor(len(m.browser.Items()) - 1)
	case key.Matches(msg, m.keys.PageUp):
		m.browser.MoveCursor(-page)
	case key.Matches(msg, m.keys.PageDown):
		m.browser.MoveCursor(page)

	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()

	case key.Matches(msg, m.keys.ReopenPanel):
		if m.browser.Open() {
			m.updateLyricsViewport()
		}

	case key.Matches(msg, m.keys.Escape):
		switch {
		case m.browser.Notice() != "":
			m.browser.DismissNotice()
		case m.browser.Query() != "":
			m.search.SetValue("")
			m.browser.SetQuery("")
		}
	}
	return m, nil
}

// handleSearchKey feeds keys to the search input, re-filtering on every
// change.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.savePrefs()
		return m, tea.Quit
	case "esc", "enter", "down", "tab":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.browser.Query() {
		m.browser.SetQuery(m.search.Value())
	}
	return m, cmd
}

// openSelected starts loading lyrics for the song under the cursor.
func (m Model) openSelected() tea.Cmd {
	ticket, song, err := m.browser.SelectCursor()
	if err != nil {
		return nil
	}
	return loadLyricsCmd(m.ctx, m.browser.Loader(), ticket, song)
}

// visibleItems is how many song cards fit in the list box.
func (m Model) visibleItems() int {
	return max((m.contentHeight()-2)/itemRows, 1)
}

// renderBrowse draws the song list, with the lyrics panel beside it when
// open.
func (m Model) renderBrowse() string {
	vm := m.browser.View()
	height := m.contentHeight()

	if vm.Panel.State != panel.Open {
		return m.renderList(vm, m.width, height, false)
	}

	listW, panelW := m.splitWidths()
	list := m.renderList(vm, listW, height, vm.Panel.Backdrop)
	lyricsBox := m.renderTitledBox(vm.Panel.Title, m.lyricsVP.View(), panelW, height, true)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, lyricsBox)
}

// renderList draws the filtered songs. dimmed renders the list behind the
// panel backdrop.
func (m Model) renderList(vm browser.ViewModel, width, height int, dimmed bool) string {
	title := fmt.Sprintf("Songs %d/%d", len(vm.Items), vm.Total)
	inner := width - 2
	rows := max(height-2, 0)

	if len(vm.Items) == 0 {
		styles := m.theme.Styles()
		msg := "No songs found"
		if vm.Total == 0 {
			msg = "The catalog is empty"
		}
		return m.renderTitledBox(title, styles.MutedText.Render(msg), width, height, !dimmed)
	}

	visible := max(rows/itemRows, 1)
	start := listOffset(vm.Cursor, visible, len(vm.Items))
	end := min(start+visible, len(vm.Items))

	lines := make([]string, 0, rows)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderItem(vm.Items[i], i == vm.Cursor, inner, dimmed)...)
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, !dimmed)
}

// renderItem draws one song card: title with language badge, then the
// writer/singer subtitle.
func (m Model) renderItem(item browser.Item, selected bool, width int, dimmed bool) []string {
	bgColor := m.theme.SurfaceAlt
	if !dimmed {
		bgColor = m.theme.FocusBg
	}
	if selected && !dimmed {
		bgColor = m.theme.SelectionBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	badgeText := item.Lang
	badge := styles.LangBadge(item.Song.Lang).Render(badgeText)
	badgeW := lipgloss.Width(badge)

	const markerW = 2
	marker := "  "
	if selected {
		marker = "▸ "
	}
	titleStyle, subStyle := styles.Text.Bold(true), styles.MutedText
	if dimmed {
		titleStyle, subStyle = styles.FaintText, styles.FaintText
		badge = bg.Render("["+badgeText+"]", styles.FaintText)
		badgeW = lipgloss.Width(badge)
	} else if selected {
		titleStyle = m.theme.Styles().Selected.Bold(true)
		subStyle = m.theme.Styles().Selected
	}

	titleW := max(width-markerW-badgeW-1, 1)
	titleText := truncate(item.Title, titleW)
	top := bg.Render(marker, titleStyle) + bg.Render(titleText, titleStyle)
	gap := width - lipgloss.Width(top) - badgeW
	top += bg.Spaces(gap) + badge

	sub := bg.Spaces(markerW) + bg.Render(truncate(item.Subtitle, width-markerW), subStyle)
	return []string{bg.FillLine(top, width), bg.FillLine(sub, width)}
}

// listOffset returns the first visible item so the cursor stays on screen.
func listOffset(cursor, visible, total int) int {
	if total <= visible || cursor < visible {
		return 0
	}
	start := cursor - visible + 1
	return min(start, total-visible)
}

// renderSearchBar draws the query input.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)
	if m.searching {
		return bg.FillLine(m.search.View(), m.width)
	}
	if q := m.browser.Query(); q != "" {
		return bg.FillLine(
			bg.Render("/ ", styles.AccentText)+bg.Render(truncate(q, m.width-4), styles.Text), m.width)
	}
	return bg.FillLine(bg.Render("/ "+m.search.Placeholder, styles.FaintText), m.width)
}

