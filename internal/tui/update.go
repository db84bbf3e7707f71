package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		return m, nil

	case revealTickMsg:
		return m.handleRevealTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.tabs = m.tabs.Next()
		return m, nil
	case "shift+tab":
		m.tabs = m.tabs.Prev()
		return m, nil
	case "1":
		m.tabs = m.tabs.Select(tabToday)
		return m, nil
	case "2":
		m.tabs = m.tabs.Select(tabHistory)
		return m, nil
	case "3":
		m.tabs = m.tabs.Select(tabSettings)
		return m, nil
	}

	switch m.tabs.Active() {
	case tabToday:
		return m.handleTodayKey(key)
	case tabHistory:
		return m.handleHistoryKey(msg)
	case tabSettings:
		return m.handleSettingsKey(key)
	}
	return m, nil
}

func (m Model) handleTodayKey(key string) (Model, tea.Cmd) {
	switch key {
	case "enter", "r":
		if m.hasCharm || m.animating {
			return m, nil
		}
		m.animating = true
		m.frame = 0
		return m, revealTick()
	}
	return m, nil
}

// handleRevealTick advances the animation; the final frame performs the
// actual reveal so the charm is computed and persisted exactly when the
// card flips.
func (m Model) handleRevealTick() (Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}
	m.frame++
	if m.frame < len(revealFrames) {
		return m, revealTick()
	}

	m.animating = false
	m.current = m.svc.Reveal()
	m.hasCharm = true
	m.history = m.svc.History()
	m.refreshHistoryContent()
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleSettingsKey(key string) (Model, tea.Cmd) {
	switch key {
	case " ", "space":
		m.enabled = !m.enabled
		m.svc.SetNotificationsEnabled(m.enabled)
	case "h":
		m.hours = (m.hours + 1) % 24
		m.saveTime()
	case "H":
		m.hours = (m.hours + 23) % 24
		m.saveTime()
	case "m":
		m.minutes = (m.minutes + 5) % 60
		m.saveTime()
	case "M":
		m.minutes = (m.minutes + 55) % 60
		m.saveTime()
	}
	return m, nil
}

func (m *Model) saveTime() {
	// Values are produced by modular arithmetic above, always in range.
	_ = m.svc.SetNotificationTime(m.hours, m.minutes)
}
