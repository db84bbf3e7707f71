package daily_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/LISSConsulting/LISSTech.Kysmet/internal/charm"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/daily"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/store"
)

func TestRecord_TrimsToLimit(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(mem, 2024, time.March, 1)

	c := charm.Record{ID: 1, Text: "A", Icon: charm.IconSun}
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < daily.HistoryLimit+1; i++ {
		svc.Record(charm.DateKey(base.AddDate(0, 0, i)), c)
	}

	history := svc.History()
	if len(history) != daily.HistoryLimit {
		t.Fatalf("history has %d entries, want %d", len(history), daily.HistoryLimit)
	}
	// The 30 most recent dates survive: day 31 down to day 2.
	if history[0].Date != "2024-01-31" {
		t.Errorf("history[0].Date = %q, want 2024-01-31", history[0].Date)
	}
	if last := history[len(history)-1].Date; last != "2024-01-02" {
		t.Errorf("oldest surviving date = %q, want 2024-01-02", last)
	}
}

func TestRecord_SameDateReplaces(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(mem, 2024, time.January, 15)

	svc.Record("2024-01-15", charm.Record{ID: 1, Text: "first", Icon: charm.IconSun})
	svc.Record("2024-01-15", charm.Record{ID: 2, Text: "second", Icon: charm.IconMoon})

	history := svc.History()
	if len(history) != 1 {
		t.Fatalf("history has %d entries, want 1", len(history))
	}
	if history[0].Charm.Text != "second" {
		t.Errorf("history[0].Charm.Text = %q, want %q", history[0].Charm.Text, "second")
	}
}

func TestRecord_UniqueDatesAfterInterleaving(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(mem, 2024, time.January, 15)

	dates := []string{"2024-01-13", "2024-01-14", "2024-01-15", "2024-01-14", "2024-01-15"}
	for i, d := range dates {
		svc.Record(d, charm.Record{ID: i + 1, Text: fmt.Sprintf("c%d", i), Icon: charm.IconStar})
	}

	history := svc.History()
	seen := make(map[string]bool)
	for _, e := range history {
		if seen[e.Date] {
			t.Errorf("duplicate history date %q", e.Date)
		}
		seen[e.Date] = true
	}
	if len(history) != 3 {
		t.Errorf("history has %d entries, want 3", len(history))
	}
}

func TestHistory_MalformedReadsEmpty(t *testing.T) {
	mem := store.NewMemory()
	mem.Data["charm_history"] = "[{oops"

	svc := newService(mem, 2024, time.January, 15)
	if got := svc.History(); len(got) != 0 {
		t.Errorf("History over malformed JSON returned %d entries", len(got))
	}
}
