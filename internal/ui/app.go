package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bayaz-archive/bayaz/internal/browser"
	"github.com/bayaz-archive/bayaz/internal/catalog"
	"github.com/bayaz-archive/bayaz/internal/config"
	"github.com/bayaz-archive/bayaz/internal/logtail"
	"github.com/bayaz-archive/bayaz/internal/lyrics"
	"github.com/bayaz-archive/bayaz/internal/prefs"
	"github.com/bayaz-archive/bayaz/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewBrowse View = iota
	ViewTrending
	ViewLogs
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Browser   *browser.Browser
	Store     *state.Store
	Config    *config.Config
	Reloads   <-chan *catalog.Catalog
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
	Remote    bool // trending data is available
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	browser   *browser.Browser
	store     *state.Store
	config    *config.Config
	reloads   <-chan *catalog.Catalog
	prefsPath string
	pollTick  time.Duration
	remote    bool

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Browse state
	search    textinput.Model
	searching bool
	lyricsVP  viewport.Model

	// Trending state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Log state
	logVP        viewport.Model
	logEntries   []logtail.Entry
	logErr       error
	problemsOnly bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	b := opts.Browser
	if b == nil {
		b = browser.New(nil, nil, nil)
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search by title, writer or singer"
	search.CharLimit = 120
	search.SetValue(b.Query())

	m := Model{
		ctx:         ctx,
		browser:     b,
		store:       opts.Store,
		config:      opts.Config,
		reloads:     opts.Reloads,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		remote:      opts.Remote,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewBrowse,
		search:      search,
		lyricsVP:    viewport.New(0, 0),
		logVP:       viewport.New(0, 0),
	}
	m.applyTheme(GetTheme(opts.ThemeName))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.reloads != nil {
		cmds = append(cmds, waitForCatalogCmd(m.reloads))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case lyricsMsg:
		if m.browser.Apply(lyrics.Result(msg)) {
			m.updateLyricsViewport()
			m.lyricsVP.GotoTop()
		}
		return m, nil

	case catalogMsg:
		if msg.catalog == nil {
			// Watcher stopped.
			m.reloads = nil
			return m, nil
		}
		m.browser.Replace(msg.catalog)
		return m, waitForCatalogCmd(m.reloads)

	case logsMsg:
		m.logEntries = msg.entries
		m.logErr = msg.err
		m.updateLogViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()
		m.updateLyricsViewport()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.ViewBrowse):
		m.currentView = ViewBrowse
		return m, nil

	case key.Matches(msg, m.keys.ViewTrending):
		m.currentView = ViewTrending
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewLogs):
		m.currentView = ViewLogs
		return m, m.refreshLogs()
	}

	switch m.currentView {
	case ViewBrowse:
		return m.handleBrowseKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	case ViewTrending:
		if key.Matches(msg, m.keys.Escape) {
			m.currentView = ViewBrowse
		}
	}
	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewLogs {
		if cmd := m.refreshLogs(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.WarningText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:     m.theme.Name,
		LastQuery: m.browser.Query(),
	})
}

// contentHeight is the rows left for the active view below the header and
// search bar and above the status bar.
func (m Model) contentHeight() int {
	return max(m.height-3, 3)
}

func (m *Model) resize() {
	_, panelW := m.splitWidths()
	m.lyricsVP.Width = max(panelW-4, 1)
	m.lyricsVP.Height = max(m.contentHeight()-2, 1)
	m.logVP.Width = max(m.width-2, 1)
	m.logVP.Height = max(m.contentHeight()-2, 1)
	m.search.Width = max(m.width-4, 10)
	m.help.Width = m.width
	m.updateLyricsViewport()
	m.updateLogViewport()
}

// splitWidths divides the screen between the song list and the lyrics panel.
func (m Model) splitWidths() (list, panel int) {
	list = max(m.width*2/5, 24)
	if list > m.width {
		list = m.width
	}
	return list, m.width - list
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewTrending:
		return m.renderTrending()
	case ViewLogs:
		return m.renderLogs()
	default:
		return m.renderBrowse()
	}
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	h := m.help
	h.ShowAll = true

	content := styles.Text.Bold(true).Render("Keyboard Shortcuts") + "\n" +
		styles.FaintText.Render(strings.Repeat("─", 30)) + "\n\n" +
		h.View(m.keys)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type lyricsMsg lyrics.Result

type catalogMsg struct {
	catalog *catalog.Catalog
}

type logsMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadLyricsCmd(ctx context.Context, loader *lyrics.Loader, ticket lyrics.Ticket, song catalog.SongSummary) tea.Cmd {
	return func() tea.Msg {
		return lyricsMsg(loader.Load(ctx, ticket, song))
	}
}

// waitForCatalogCmd blocks until the watcher delivers a catalog. A closed
// channel yields an empty catalogMsg.
func waitForCatalogCmd(ch <-chan *catalog.Catalog) tea.Cmd {
	return func() tea.Msg {
		cat := <-ch
		return catalogMsg{catalog: cat}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Cancelled from outside, e.g. SIGINT.
		return nil
	}
	return err
}
