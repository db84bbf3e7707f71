package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.Kysmet/internal/config"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/notify"
	"github.com/LISSConsulting/LISSTech.Kysmet/internal/tui"
)

func todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's charm if it has been revealed",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			c, ok := a.svc.Today()
			if !ok {
				fmt.Println("Днес още не си разкрил късметчето си. Опитай: kysmet reveal")
				return nil
			}
			fmt.Printf("%s  %s\n", tui.IconGlyph(c.Icon), c.Text)
			return nil
		},
	}
}

func revealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal",
		Short: "Reveal (or re-print) today's charm",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			c := a.svc.Reveal()
			fmt.Printf("%s  %s\n", tui.IconGlyph(c.Icon), c.Text)
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the last 30 days of revealed charms",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			history := a.svc.History()
			if len(history) == 0 {
				fmt.Println("Все още няма разкрити късметчета.")
				return nil
			}
			for _, e := range history {
				fmt.Printf("%s  %s  %s\n", e.Date, tui.IconGlyph(e.Charm.Icon), e.Charm.Text)
			}
			return nil
		},
	}
}

func remindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the daily reminder scheduler (blocks until interrupted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			sched := notify.NewScheduler(a.svc, newSender(a.cfg))
			if err := sched.Start(); err != nil {
				return err
			}
			defer sched.Stop()

			h, m := a.svc.NotificationTime()
			fmt.Printf("Reminder scheduled daily at %02d:%02d — ctrl+c to stop\n", h, m)
			<-signalContext().Done()
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "now",
		Short: "Send one reminder immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			sched := notify.NewScheduler(a.svc, newSender(a.cfg))
			sent, err := sched.FireNow()
			if err != nil {
				return err
			}
			if !sent {
				fmt.Println("Skipped: reminders disabled or charm already revealed today.")
				return nil
			}
			fmt.Println("Reminder sent.")
			return nil
		},
	})

	return cmd
}

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications on|off|time HH:MM",
		Short: "Configure the daily reminder",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			switch args[0] {
			case "on":
				a.svc.SetNotificationsEnabled(true)
				fmt.Println("Reminders enabled.")
			case "off":
				a.svc.SetNotificationsEnabled(false)
				fmt.Println("Reminders disabled.")
			case "time":
				if len(args) != 2 {
					return fmt.Errorf("usage: kysmet notifications time HH:MM")
				}
				h, m, parseErr := parseClock(args[1])
				if parseErr != nil {
					return parseErr
				}
				if setErr := a.svc.SetNotificationTime(h, m); setErr != nil {
					return setErr
				}
				fmt.Printf("Reminder time set to %02d:%02d.\n", h, m)
			default:
				return fmt.Errorf("unknown subcommand %q (want on, off, or time)", args[0])
			}
			return nil
		},
	}
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daily charm state summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			h, m := a.svc.NotificationTime()
			fmt.Println("Kysmet Status")
			fmt.Println("─────────────")
			fmt.Printf("  %-18s %s\n", "today:", a.svc.TodayKey())
			fmt.Printf("  %-18s %v\n", "revealed:", a.svc.RevealedToday())
			fmt.Printf("  %-18s %d\n", "history entries:", len(a.svc.History()))
			fmt.Printf("  %-18s %v\n", "reminders:", a.svc.NotificationsEnabled())
			fmt.Printf("  %-18s %02d:%02d\n", "reminder time:", h, m)
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create kysmet.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

// newSender returns the reminder delivery target: the configured webhook,
// or stdout when none is configured.
func newSender(cfg *config.Config) notify.Sender {
	if cfg.Reminder.URL != "" {
		return notify.NewNotifier(cfg.Reminder.URL, cfg.Reminder.Title)
	}
	return stdoutSender{}
}

// stdoutSender prints reminders to the terminal. Used when no webhook is
// configured so `kysmet remind` still does something visible.
type stdoutSender struct{}

func (stdoutSender) Post(msg notify.Message) error {
	fmt.Printf("%s\n%s\n", msg.Title, msg.Body)
	return nil
}

// parseClock parses "HH:MM" into hours and minutes.
func parseClock(s string) (hours, minutes int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	hours, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minutes, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", s)
	}
	return hours, minutes, nil
}
