package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.Kysmet/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "kysmet.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()
	if cfg.TUI.AccentColor != config.DefaultAccentColor {
		t.Errorf("default accent color = %q, want %q", cfg.TUI.AccentColor, config.DefaultAccentColor)
	}
	if cfg.Reminder.Title != "Kysmet" {
		t.Errorf("default reminder title = %q, want Kysmet", cfg.Reminder.Title)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults do not validate: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[storage]
dir = "/tmp/kysmet-test"

[tui]
accent_color = "#FF6B6B"

[reminder]
url = "https://ntfy.sh/kysmet"
title = "Късметче"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Dir != "/tmp/kysmet-test" {
		t.Errorf("storage.dir = %q", cfg.Storage.Dir)
	}
	if cfg.TUI.AccentColor != "#FF6B6B" {
		t.Errorf("tui.accent_color = %q", cfg.TUI.AccentColor)
	}
	if cfg.Reminder.URL != "https://ntfy.sh/kysmet" {
		t.Errorf("reminder.url = %q", cfg.Reminder.URL)
	}
	if cfg.Reminder.Title != "Късметче" {
		t.Errorf("reminder.title = %q", cfg.Reminder.Title)
	}
}

func TestLoad_UnknownKeysRejected(t *testing.T) {
	path := writeConfig(t, `
[reminder]
ulr = "https://ntfy.sh/kysmet"
`)
	_, err := config.Load(path)
	if err == nil {
		t.Fatal("Load accepted unknown key")
	}
	if !strings.Contains(err.Error(), "ulr") {
		t.Errorf("error does not name the unknown key: %v", err)
	}
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad accent color", "[tui]\naccent_color = \"purple\"\n"},
		{"bad reminder url", "[reminder]\nurl = \"not-a-url\"\n"},
		{"non-http scheme", "[reminder]\nurl = \"ftp://example.com/x\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := config.Load(path); err == nil {
				t.Error("Load accepted invalid config")
			}
		})
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	// Run from an isolated directory with no kysmet.toml anywhere up the
	// tree is not guaranteed, so point Load at an explicit empty search
	// start instead: chdir into a temp dir.
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.TUI.AccentColor != config.DefaultAccentColor {
		t.Errorf("fallback config accent = %q, want default", cfg.TUI.AccentColor)
	}
}

func TestStateDir(t *testing.T) {
	cfg := config.Defaults()
	cfg.Storage.Dir = "/tmp/explicit"
	dir, err := cfg.StateDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/explicit" {
		t.Errorf("StateDir = %q, want /tmp/explicit", dir)
	}

	cfg.Storage.Dir = ""
	dir, err = cfg.StateDir()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(dir) != ".kysmet" {
		t.Errorf("default StateDir = %q, want a ~/.kysmet path", dir)
	}
}

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	path, err := config.InitFile(dir)
	if err != nil {
		t.Fatalf("InitFile: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of scaffolded file: %v", err)
	}
	if cfg.TUI.AccentColor != config.DefaultAccentColor {
		t.Errorf("scaffolded accent = %q", cfg.TUI.AccentColor)
	}

	if _, err := config.InitFile(dir); err == nil {
		t.Error("InitFile overwrote an existing config")
	}
}
