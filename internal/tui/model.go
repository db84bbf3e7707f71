package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Kysmet/internal/charm"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/daily"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/tui/components"
)

// Tab indices.
const (
	tabToday = iota
	tabHistory
	tabSettings
)

// Model is the bubbletea model for the Kysmet UI.
type Model struct {
	svc    *daily.Service
	styles accentStyles

	tabs   components.TabBar
	width  int
	height int

	// Today tab
	current   charm.Record
	hasCharm  bool
	animating bool
	frame     int

	// History tab
	history  []daily.HistoryEntry
	viewport viewport.Model

	// Settings tab
	enabled bool
	hours   int
	minutes int
}

// New creates the UI model over svc, loading today's state, the history,
// and the reminder settings up front.
func New(svc *daily.Service, accentColor string) Model {
	m := Model{
		svc:    svc,
		styles: newAccentStyles(accentColor),
		tabs:   components.NewTabBar(accentColor, "Today", "History", "Settings"),
		width:  80,
		height: 24,
	}
	m.current, m.hasCharm = svc.Today()
	m.history = svc.History()
	m.enabled = svc.NotificationsEnabled()
	m.hours, m.minutes = svc.NotificationTime()
	m.viewport = viewport.New(m.contentWidth(), m.contentHeight())
	m.refreshHistoryContent()
	return m
}

// Init returns no initial command; everything is driven by key input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Charm returns the currently displayed charm, if revealed. Exposed for
// tests.
func (m Model) Charm() (charm.Record, bool) {
	return m.current, m.hasCharm
}

// ActiveTab returns the active tab index. Exposed for tests.
func (m Model) ActiveTab() int {
	return m.tabs.Active()
}
