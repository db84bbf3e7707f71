package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Kysmet/internal/daily"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/store"
)

func testService(mem *store.Memory) *daily.Service {
	svc := daily.NewService(mem)
	svc.Now = func() time.Time {
		return time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step runs one Update and returns the resulting Model.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

func TestNew_UnrevealedShowsPrompt(t *testing.T) {
	m := New(testService(store.NewMemory()), "#7D56F4")

	if _, ok := m.Charm(); ok {
		t.Fatal("fresh model reports a revealed charm")
	}
	if view := m.View(); !strings.Contains(view, "enter") {
		t.Error("unrevealed Today view does not hint at the reveal key")
	}
}

func TestNew_AlreadyRevealedShowsCard(t *testing.T) {
	mem := store.NewMemory()
	svc := testService(mem)
	want := svc.Reveal()

	m := New(svc, "#7D56F4")
	got, ok := m.Charm()
	if !ok {
		t.Fatal("model did not pick up the revealed charm")
	}
	if got != want {
		t.Errorf("model charm = %+v, want %+v", got, want)
	}
	if view := m.View(); !strings.Contains(view, want.Text) {
		t.Error("Today view does not show the charm text")
	}
}

func TestReveal_AnimatesThenPersists(t *testing.T) {
	mem := store.NewMemory()
	svc := testService(mem)
	m := New(svc, "#7D56F4")

	m, cmd := step(t, m, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter did not start the reveal animation")
	}
	if !m.animating {
		t.Fatal("model not animating after enter")
	}

	// Drive every animation tick to completion.
	for i := 0; i < len(revealFrames); i++ {
		m, cmd = step(t, m, revealTickMsg{})
	}
	if m.animating {
		t.Fatal("still animating after final frame")
	}
	if cmd != nil {
		t.Error("final frame scheduled another tick")
	}

	got, ok := m.Charm()
	if !ok {
		t.Fatal("no charm after reveal animation")
	}
	if v := mem.Data["charm_revealed"]; v != "true" {
		t.Errorf("charm_revealed = %q, want \"true\"", v)
	}
	if stored, okStore := svc.Today(); !okStore || stored != got {
		t.Errorf("persisted charm %+v does not match displayed %+v", stored, got)
	}
	if len(m.history) != 1 {
		t.Errorf("history pane has %d entries after reveal, want 1", len(m.history))
	}
}

func TestReveal_SecondEnterIgnored(t *testing.T) {
	svc := testService(store.NewMemory())
	svc.Reveal()
	m := New(svc, "#7D56F4")

	m, cmd := step(t, m, keyMsg("enter"))
	if cmd != nil || m.animating {
		t.Error("enter on an already-revealed day restarted the animation")
	}
}

func TestTabSwitching(t *testing.T) {
	m := New(testService(store.NewMemory()), "#7D56F4")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ActiveTab() != tabHistory {
		t.Errorf("after tab, active = %d, want history", m.ActiveTab())
	}
	m, _ = step(t, m, keyMsg("3"))
	if m.ActiveTab() != tabSettings {
		t.Errorf("after 3, active = %d, want settings", m.ActiveTab())
	}
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ActiveTab() != tabHistory {
		t.Errorf("after shift+tab, active = %d, want history", m.ActiveTab())
	}
}

func TestSettings_ToggleAndAdjustPersist(t *testing.T) {
	mem := store.NewMemory()
	svc := testService(mem)
	m := New(svc, "#7D56F4")
	m, _ = step(t, m, keyMsg("3"))

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if svc.NotificationsEnabled() {
		t.Error("space did not persist the disabled flag")
	}

	m, _ = step(t, m, keyMsg("h"))
	m, _ = step(t, m, keyMsg("m"))
	h, min := svc.NotificationTime()
	if h != 11 || min != 5 {
		t.Errorf("persisted time = %02d:%02d, want 11:05", h, min)
	}

	m, _ = step(t, m, keyMsg("H"))
	m, _ = step(t, m, keyMsg("M"))
	h, min = svc.NotificationTime()
	if h != 10 || min != 0 {
		t.Errorf("persisted time after decrement = %02d:%02d, want 10:00", h, min)
	}
}

func TestQuitKeys(t *testing.T) {
	m := New(testService(store.NewMemory()), "#7D56F4")
	for _, k := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Errorf("key %v did not quit", k)
		}
	}
}
