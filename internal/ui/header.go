package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top bar: logo, catalog counts, service state and
// theme.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	vm := m.browser.View()

	parts := []string{
		bg.Render("bayaz", styles.Logo),
		bg.Render(m.viewLabel(), styles.AccentText.Bold(true)),
		bg.Render(fmt.Sprintf("%d of %d songs", len(vm.Items), vm.Total), styles.Text),
	}
	if m.remote {
		parts = append(parts, m.serviceStatus(styles, bg))
	} else {
		parts = append(parts, bg.Render("offline catalog", styles.MutedText))
	}
	parts = append(parts, bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) serviceStatus(styles Styles, bg BgStyle) string {
	switch {
	case m.snapshot.IsOffline():
		return bg.Render("service unreachable", styles.DangerText)
	case m.snapshot.LastError != nil:
		return bg.Render("service retrying", styles.WarningText)
	case m.snapshot.HasTrending:
		updated := m.snapshot.LastUpdated.Format("15:04:05")
		return bg.Render("service online", styles.SuccessText) + bg.Spaces(1) + bg.Render(updated, styles.MutedText)
	default:
		return bg.Render("connecting...", styles.MutedText)
	}
}

func (m Model) viewLabel() string {
	switch m.currentView {
	case ViewTrending:
		return "Trending"
	case ViewLogs:
		return "Logs"
	default:
		return "Songs"
	}
}

// renderStatusBar shows the load notice when there is one, otherwise a
// loading hint or the short key help.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	bar := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Surface)).Width(m.width).Padding(0, 1)

	switch {
	case m.browser.Notice() != "":
		return bar.Render(bg.Render(truncate(m.browser.Notice(), m.width-12), styles.WarningText) +
			bg.Spaces(2) + bg.Render("esc dismiss", styles.FaintText))
	case m.browser.Loading():
		return bar.Render(bg.Render("Loading lyrics...", styles.MutedText))
	case m.searching:
		return bar.Render(bg.Render("enter/esc done", styles.FaintText))
	default:
		return bar.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
}
