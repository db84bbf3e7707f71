package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Kysmet/internal/config"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/daily"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/store"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/tui"
)

// app bundles the wired-up pieces a command needs.
type app struct {
	cfg *config.Config
	st  *store.File
	svc *daily.Service
}

// openApp loads config and opens the state store. Config load and store
// open failures are real errors here at the process boundary; inside the
// daily service storage failures degrade to defaults instead.
func openApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	dir, err := cfg.StateDir()
	if err != nil {
		return nil, err
	}
	st, err := store.OpenFile(dir)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, st: st, svc: daily.NewService(st)}, nil
}

func (a *app) close() {
	_ = a.st.Close()
}

// runTUI opens the full-screen UI.
func runTUI() error {
	a, err := openApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	model := tui.New(a.svc, a.cfg.TUI.AccentColor)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
