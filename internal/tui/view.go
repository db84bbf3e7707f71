package tui

import (
	"fmt"
	"strings"
)

// View renders the full UI: header, tab bar, active tab content, footer.
func (m Model) View() string {
	var b strings.Builder

	header := m.styles.header.Render("Късметче") + "  " + dateStyle.Render(m.svc.TodayKey())
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.tabs.View())
	b.WriteString("\n\n")

	switch m.tabs.Active() {
	case tabToday:
		b.WriteString(m.viewToday())
	case tabHistory:
		b.WriteString(m.viewHistory())
	case tabSettings:
		b.WriteString(m.viewSettings())
	}

	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render(m.footerHelp()))
	return b.String()
}

func (m Model) viewToday() string {
	if m.animating {
		frame := m.frame
		if frame >= len(revealFrames) {
			frame = len(revealFrames) - 1
		}
		return hintStyle.Render(revealFrames[frame])
	}

	if !m.hasCharm {
		cup := revealFrames[0]
		prompt := hintStyle.Render("Докосни чашата — натисни enter, за да разкриеш късмета си.")
		return cup + "\n\n" + prompt
	}

	card := fmt.Sprintf("%s\n\n%s", IconGlyph(m.current.Icon), charmTextStyle.Render(m.current.Text))
	return m.styles.card.Render(card)
}

func (m Model) viewHistory() string {
	if len(m.history) == 0 {
		return dateStyle.Render("Все още няма разкрити късметчета.")
	}
	return m.viewport.View()
}

func (m Model) viewSettings() string {
	var b strings.Builder

	b.WriteString("Daily reminder\n\n")
	if m.enabled {
		b.WriteString("  " + enabledStyle.Render("● enabled") + "\n")
	} else {
		b.WriteString("  " + disabledStyle.Render("○ disabled") + "\n")
	}
	b.WriteString(fmt.Sprintf("  time: %02d:%02d\n", m.hours, m.minutes))
	return b.String()
}

// refreshHistoryContent rebuilds the viewport content from the history log.
func (m *Model) refreshHistoryContent() {
	var lines []string
	for _, e := range m.history {
		line := fmt.Sprintf("%s  %s  %s",
			IconGlyph(e.Charm.Icon),
			historyDateStyle.Render(e.Date),
			e.Charm.Text,
		)
		lines = append(lines, line)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) resizeViewport() {
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.contentHeight()
}

// contentWidth and contentHeight leave room for header, tab bar, and
// footer chrome.
func (m Model) contentWidth() int {
	return max(m.width-2, 20)
}

func (m Model) contentHeight() int {
	return max(m.height-8, 5)
}

func (m Model) footerHelp() string {
	switch m.tabs.Active() {
	case tabToday:
		if !m.hasCharm && !m.animating {
			return "enter: reveal • tab: switch • q: quit"
		}
		return "tab: switch • q: quit"
	case tabHistory:
		return "j/k: scroll • tab: switch • q: quit"
	case tabSettings:
		return "space: toggle • h/H m/M: adjust time • tab: switch • q: quit"
	}
	return "q: quit"
}
