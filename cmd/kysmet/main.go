// Package main is the entry point for the kysmet CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// configPath is the --config flag value (empty = search upward).
var configPath string

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "kysmet",
		Short:   "Kysmet — your daily charm, in the terminal",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to kysmet.toml (default: search upward, else defaults)")

	root.AddCommand(
		todayCmd(),
		revealCmd(),
		historyCmd(),
		remindCmd(),
		notificationsCmd(),
		statusCmd(),
		initCmd(),
	)

	return root
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()
	return ctx
}
