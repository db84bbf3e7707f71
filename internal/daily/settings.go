package daily

import (
	"encoding/json"
	"fmt"
)

// Reminder time defaults (10:00).
const (
	DefaultReminderHour   = 10
	DefaultReminderMinute = 0
)

// reminderTime is the persisted shape of the notification_time entry.
type reminderTime struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// NotificationsEnabled reports whether the daily reminder is on. Defaults
// to true when unset or on storage failure.
func (s *Service) NotificationsEnabled() bool {
	v, ok, err := s.Store.Get(keyNotifyEnabled)
	if err != nil {
		s.log().Warn("daily: read notifications_enabled failed", "err", err)
		return true
	}
	if !ok {
		return true
	}
	return v == "true"
}

// SetNotificationsEnabled stores the reminder on/off flag. Failures are
// logged and swallowed.
func (s *Service) SetNotificationsEnabled(enabled bool) {
	v := "false"
	if enabled {
		v = "true"
	}
	if err := s.Store.Set(keyNotifyEnabled, v); err != nil {
		s.log().Warn("daily: write notifications_enabled failed", "err", err)
	}
}

// NotificationTime returns the configured reminder time. Absent,
// malformed, or out-of-range values fall back to 10:00.
func (s *Service) NotificationTime() (hours, minutes int) {
	raw, ok, err := s.Store.Get(keyNotifyTime)
	if err != nil {
		s.log().Warn("daily: read notification_time failed", "err", err)
		return DefaultReminderHour, DefaultReminderMinute
	}
	if !ok {
		return DefaultReminderHour, DefaultReminderMinute
	}
	var t reminderTime
	if jsonErr := json.Unmarshal([]byte(raw), &t); jsonErr != nil {
		s.log().Warn("daily: notification_time malformed", "err", jsonErr)
		return DefaultReminderHour, DefaultReminderMinute
	}
	if t.Hours < 0 || t.Hours > 23 || t.Minutes < 0 || t.Minutes > 59 {
		return DefaultReminderHour, DefaultReminderMinute
	}
	return t.Hours, t.Minutes
}

// SetNotificationTime stores the reminder time. Returns an error only for
// out-of-range input; storage failures are logged and swallowed.
func (s *Service) SetNotificationTime(hours, minutes int) error {
	if hours < 0 || hours > 23 {
		return fmt.Errorf("daily: hours must be 0-23, got %d", hours)
	}
	if minutes < 0 || minutes > 59 {
		return fmt.Errorf("daily: minutes must be 0-59, got %d", minutes)
	}
	data, err := json.Marshal(reminderTime{Hours: hours, Minutes: minutes})
	if err != nil {
		s.log().Warn("daily: marshal notification_time failed", "err", err)
		return nil
	}
	if setErr := s.Store.Set(keyNotifyTime, string(data)); setErr != nil {
		s.log().Warn("daily: write notification_time failed", "err", setErr)
	}
	return nil
}
