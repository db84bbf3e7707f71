package main

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.Kysmet/internal/notify"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		hours   int
		minutes int
		wantErr bool
	}{
		{"10:00", 10, 0, false},
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"7:05", 7, 5, false},
		{"24:00", 0, 0, true},
		{"10:60", 0, 0, true},
		{"-1:00", 0, 0, true},
		{"1000", 0, 0, true},
		{"ab:cd", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, err := parseClock(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseClock(%q) accepted invalid input", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClock(%q): %v", tt.in, err)
			}
			if h != tt.hours || m != tt.minutes {
				t.Errorf("parseClock(%q) = %d:%02d, want %d:%02d", tt.in, h, m, tt.hours, tt.minutes)
			}
		})
	}
}

func TestRootCmd_HasAllCommands(t *testing.T) {
	root := rootCmd()
	want := []string{"today", "reveal", "history", "remind", "notifications", "status", "init"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q", name)
		}
	}
}

func TestStdoutSender(t *testing.T) {
	// Post must never fail; it is the fallback delivery path.
	if err := (stdoutSender{}).Post(notify.Message{Title: "t", Body: "b"}); err != nil {
		t.Errorf("stdoutSender.Post: %v", err)
	}
}
