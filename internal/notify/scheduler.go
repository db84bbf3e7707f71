package notify

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/LISSConsulting/LISSTech.Kysmet/internal/daily"
)

// Sender delivers one reminder message.
type Sender interface {
	Post(msg Message) error
}

// Scheduler fires the daily reminder at the stored notification time.
// Delivery is skipped when reminders are disabled or today's charm is
// already revealed, so the settings the user changes in the TUI take
// effect without restarting the daemon.
type Scheduler struct {
	svc    *daily.Service
	sender Sender
	cron   *cron.Cron
	id     cron.EntryID
}

// NewScheduler creates a Scheduler delivering through sender.
func NewScheduler(svc *daily.Service, sender Sender) *Scheduler {
	return &Scheduler{
		svc:    svc,
		sender: sender,
		cron:   cron.New(),
	}
}

// Start schedules the daily job at the stored notification time and
// starts the cron runner.
func (s *Scheduler) Start() error {
	hours, minutes := s.svc.NotificationTime()
	if err := s.schedule(hours, minutes); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron runner. Running jobs finish; Stop does not wait.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Reschedule moves the daily job to the given time. The runner keeps
// going; only the schedule changes.
func (s *Scheduler) Reschedule(hours, minutes int) error {
	return s.schedule(hours, minutes)
}

func (s *Scheduler) schedule(hours, minutes int) error {
	if s.id != 0 {
		s.cron.Remove(s.id)
	}
	spec := fmt.Sprintf("%d %d * * *", minutes, hours)
	id, err := s.cron.AddFunc(spec, s.fire)
	if err != nil {
		return fmt.Errorf("notify: schedule %q: %w", spec, err)
	}
	s.id = id
	return nil
}

// fire delivers one reminder, honoring the stored enabled flag and
// skipping days the charm was already revealed.
func (s *Scheduler) fire() {
	if !s.svc.NotificationsEnabled() {
		return
	}
	if s.svc.RevealedToday() {
		return
	}
	if err := s.sender.Post(RandomMessage()); err != nil {
		slog.Warn("notify: reminder delivery failed", "err", err)
	}
}

// FireNow delivers one reminder immediately, bypassing the schedule but
// honoring the enabled flag and the revealed-today skip. It reports
// whether a message was sent.
func (s *Scheduler) FireNow() (bool, error) {
	if !s.svc.NotificationsEnabled() {
		return false, nil
	}
	if s.svc.RevealedToday() {
		return false, nil
	}
	if err := s.sender.Post(RandomMessage()); err != nil {
		return false, err
	}
	return true, nil
}
