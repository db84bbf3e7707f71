// Package config parses kysmet.toml configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// fileName is the config file kysmet looks for.
const fileName = "kysmet.toml"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level kysmet.toml configuration.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	TUI      TUIConfig      `toml:"tui"`
	Reminder ReminderConfig `toml:"reminder"`
}

// StorageConfig controls where the state file lives.
type StorageConfig struct {
	Dir string `toml:"dir"` // empty = ~/.kysmet
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// ReminderConfig controls daily reminder delivery. URL is an ntfy.sh
// topic or any HTTP webhook; empty means reminders print to stdout only.
type ReminderConfig struct {
	URL   string `toml:"url"`
	Title string `toml:"title"`
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	if c.Reminder.URL != "" {
		u, parseErr := url.ParseRequestURI(c.Reminder.URL)
		if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("reminder.url must be a valid http or https URL"))
		}
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with the stock settings.
func Defaults() Config {
	return Config{
		Storage: StorageConfig{Dir: ""},
		TUI:     TUIConfig{AccentColor: DefaultAccentColor},
		Reminder: ReminderConfig{
			URL:   "",
			Title: "Kysmet",
		},
	}
}

// StateDir resolves the state directory: the configured storage.dir, or
// ~/.kysmet when unset.
func (c *Config) StateDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".kysmet"), nil
}

// Load reads kysmet.toml from the given path. If path is empty, it walks
// up from the current working directory looking for kysmet.toml and falls
// back to pure defaults when no file exists — a missing config is not an
// error for this app. Returns an error if the file contains unknown keys
// (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			cfg := Defaults()
			return &cfg, nil
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

// findConfig walks up from the current directory looking for kysmet.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, fileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: %s not found (searched up from %s)", fileName, dir)
		}
		dir = parent
	}
}

// InitFile writes a default kysmet.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, fileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", fileName, path)
	}

	content := `# kysmet.toml — Kysmet configuration

[storage]
dir = ""  # state directory (empty = ~/.kysmet)

[tui]
accent_color = "#7D56F4"  # hex color for header/accent elements

[reminder]
url = ""          # ntfy.sh topic URL or any HTTP webhook (empty = stdout only)
title = "Kysmet"  # notification title header
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
