package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for gochain.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gochain",
		Short:         "Count words with a sequential pipeline",
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log every pipeline and plugin event")
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file (default $XDG_CONFIG_HOME/gochain/config.yaml)")

	cmd.AddCommand(NewCountCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
