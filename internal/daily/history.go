package daily

import (
	"encoding/json"

	"github.com/LISSConsulting/LISSTech.Kysmet/internal/charm"
)

// HistoryEntry is one day's revealed charm. Charm is a snapshot by value:
// catalog edits after the fact never rewrite history.
type HistoryEntry struct {
	Date  string       `json:"date"`
	Charm charm.Record `json:"charm"`
}

// Record upserts the history entry for date and trims the log to
// HistoryLimit entries. A new date goes to the front (the log is
// newest-first); an existing date is replaced in place without
// re-sorting. Record is only ever called with the current date, so in
// practice a replaced entry is already at the front. Failures are logged
// and swallowed.
func (s *Service) Record(date string, c charm.Record) {
	history := s.History()

	entry := HistoryEntry{Date: date, Charm: c}
	replaced := false
	for i := range history {
		if history[i].Date == date {
			history[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		history = append([]HistoryEntry{entry}, history...)
	}
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}

	data, err := json.Marshal(history)
	if err != nil {
		s.log().Warn("daily: marshal history failed", "err", err)
		return
	}
	if err := s.Store.Set(keyCharmHistory, string(data)); err != nil {
		s.log().Warn("daily: write charm_history failed", "err", err)
	}
}

// History returns the persisted log, newest-first. Absent, malformed, or
// unreadable history reads as empty.
func (s *Service) History() []HistoryEntry {
	raw, ok, err := s.Store.Get(keyCharmHistory)
	if err != nil {
		s.log().Warn("daily: read charm_history failed", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	var history []HistoryEntry
	if jsonErr := json.Unmarshal([]byte(raw), &history); jsonErr != nil {
		s.log().Warn("daily: charm_history malformed", "err", jsonErr)
		return nil
	}
	return history
}
