package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bayaz-archive/bayaz/internal/logtail"
)

const logTailLines = 500

// handleLogsKey processes keyboard input for the logs view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewBrowse
		return m, nil
	case key.Matches(msg, m.keys.ToggleProblems):
		m.problemsOnly = !m.problemsOnly
		m.updateLogViewport()
		return m, nil
	}
	var cmd tea.Cmd
	m.logVP, cmd = m.logVP.Update(msg)
	return m, cmd
}

// refreshLogs reads the tail of the bayaz log file.
func (m Model) refreshLogs() tea.Cmd {
	if m.config == nil {
		return nil
	}
	path := m.config.LogPath()
	return func() tea.Msg {
		entries, err := logtail.Tail(path, logTailLines)
		return logsMsg{entries: entries, err: err}
	}
}

// updateLogViewport renders the loaded entries, newest at the bottom, and
// keeps the view pinned to the end when it already was.
func (m *Model) updateLogViewport() {
	atBottom := m.logVP.AtBottom()
	styles := m.theme.Styles()

	if m.logErr != nil {
		m.logVP.SetContent(styles.DangerText.Render("Cannot read log: " + m.logErr.Error()))
		return
	}

	lines := make([]string, 0, len(m.logEntries))
	for _, e := range m.logEntries {
		if m.problemsOnly && !e.IsProblem() {
			continue
		}
		text := formatLogEntry(e)
		switch {
		case strings.EqualFold(e.Level, "error"):
			text = styles.DangerText.Render(text)
		case strings.EqualFold(e.Level, "warn"):
			text = styles.WarningText.Render(text)
		case strings.EqualFold(e.Level, "debug"):
			text = styles.FaintText.Render(text)
		default:
			text = styles.Text.Render(text)
		}
		lines = append(lines, text)
	}
	if len(lines) == 0 {
		lines = append(lines, styles.MutedText.Render("No log entries"))
	}
	m.logVP.SetContent(strings.Join(lines, "\n"))
	if atBottom {
		m.logVP.GotoBottom()
	}
}

// formatLogEntry renders an entry as "15:04:05 WARN  logger  message k=v".
func formatLogEntry(e logtail.Entry) string {
	if e.Time.IsZero() && e.Level == "" {
		return e.Raw
	}
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%-5s ", strings.ToUpper(e.Level))
	if e.Logger != "" {
		b.WriteString(e.Logger)
		b.WriteString("  ")
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}

// renderLogs draws the log viewport.
func (m Model) renderLogs() string {
	title := "Log"
	if m.problemsOnly {
		title = "Log (warnings)"
	}
	if m.config != nil {
		title += " " + truncateMiddle(m.config.LogPath(), max(m.width/2, 10))
	}
	return m.renderTitledBox(title, m.logVP.View(), m.width, m.contentHeight(), true)
}
