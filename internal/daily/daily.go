// Package daily implements the daily charm state machine: the reveal
// operation, the 30-day history log, and the reminder settings. All state
// lives behind the store.Store port under fixed string keys, and every
// read degrades to a documented default when storage fails or holds
// malformed data — a broken state file costs the user at most today's
// entry, never a crash.
package daily

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/LISSConsulting/LISSTech.Kysmet/internal/charm"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/store"
)

// Storage keys. Fixed for compatibility with existing state files.
const (
	keyDailyCharm    = "daily_charm"
	keyCharmDate     = "charm_date"
	keyCharmRevealed = "charm_revealed"
	keyNotifyEnabled = "notifications_enabled"
	keyNotifyTime    = "notification_time"
	keyCharmHistory  = "charm_history"
)

// HistoryLimit is the maximum number of entries the history log keeps.
const HistoryLimit = 30

// Service exposes the daily charm operations over a Store. Now is
// injectable for tests and defaults to time.Now.
type Service struct {
	Store   store.Store
	Catalog []charm.Record
	Now     func() time.Time
	Log     *slog.Logger
}

// NewService creates a Service over st using the full charm catalog.
func NewService(st store.Store) *Service {
	return &Service{Store: st, Catalog: charm.Catalog()}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

// TodayKey returns the date key for the current day.
func (s *Service) TodayKey() string {
	return charm.DateKey(s.now())
}

// Today returns today's charm if it has been revealed today. When the
// persisted date is absent or stale it eagerly clears the revealed flag
// and reports no charm — this is the day-rollover reset. Storage failures
// behave like no charm today.
func (s *Service) Today() (charm.Record, bool) {
	savedDate, ok, err := s.Store.Get(keyCharmDate)
	if err != nil {
		s.log().Warn("daily: read charm_date failed", "err", err)
		return charm.Record{}, false
	}
	if !ok || savedDate != s.TodayKey() {
		// New day: invalidate the stale revealed flag now rather than
		// leaving it for the next reveal to overwrite.
		if setErr := s.Store.Set(keyCharmRevealed, "false"); setErr != nil {
			s.log().Warn("daily: reset charm_revealed failed", "err", setErr)
		}
		return charm.Record{}, false
	}

	raw, ok, err := s.Store.Get(keyDailyCharm)
	if err != nil || !ok {
		if err != nil {
			s.log().Warn("daily: read daily_charm failed", "err", err)
		}
		return charm.Record{}, false
	}
	var c charm.Record
	if jsonErr := json.Unmarshal([]byte(raw), &c); jsonErr != nil {
		s.log().Warn("daily: daily_charm malformed", "err", jsonErr)
		return charm.Record{}, false
	}
	return c, true
}

// Reveal assigns and persists today's charm: it computes the
// deterministic charm for today, writes the charm snapshot, date, and
// revealed flag, and upserts the history entry. Reveal always recomputes
// rather than short-circuiting on an existing reveal; the selector is
// deterministic, so a repeat call writes identical values. Write failures
// are logged and swallowed — the returned charm is valid regardless.
func (s *Service) Reveal() charm.Record {
	today := s.TodayKey()
	c := charm.ForDate(s.now(), s.Catalog)

	data, err := json.Marshal(c)
	if err != nil {
		s.log().Warn("daily: marshal charm failed", "err", err)
		return c
	}
	if err := s.Store.Set(keyDailyCharm, string(data)); err != nil {
		s.log().Warn("daily: write daily_charm failed", "err", err)
	}
	if err := s.Store.Set(keyCharmDate, today); err != nil {
		s.log().Warn("daily: write charm_date failed", "err", err)
	}
	if err := s.Store.Set(keyCharmRevealed, "true"); err != nil {
		s.log().Warn("daily: write charm_revealed failed", "err", err)
	}

	s.Record(today, c)
	return c
}

// RevealedToday reports whether today's charm has been revealed. Defaults
// to false on absence, stale date, or storage failure.
func (s *Service) RevealedToday() bool {
	savedDate, ok, err := s.Store.Get(keyCharmDate)
	if err != nil {
		s.log().Warn("daily: read charm_date failed", "err", err)
		return false
	}
	if !ok || savedDate != s.TodayKey() {
		return false
	}

	revealed, ok, err := s.Store.Get(keyCharmRevealed)
	if err != nil {
		s.log().Warn("daily: read charm_revealed failed", "err", err)
		return false
	}
	return ok && revealed == "true"
}
