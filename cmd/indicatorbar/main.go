// Package main is the entry point for the indicatorbar CLI: the demo window,
// headless gesture replay and PNG snapshots of the control.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/edward-ap/indicatorbar/internal/config"
	"github.com/edward-ap/indicatorbar/internal/indicator"
	applog "github.com/edward-ap/indicatorbar/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var traceLog bool
	cmd := &cobra.Command{
		Use:           "indicatorbar",
		Short:         "Draggable stepped range indicator",
		Long:          `indicatorbar opens a demo window with the IndicatorBar control, replays scripted gestures headlessly and renders snapshots of the control.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if traceLog {
				indicator.SetTraceLoggingEnabled(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(runOptions{})
		},
	}
	cmd.PersistentFlags().BoolVar(&traceLog, "traceLog", false, "log every move and snap at debug level")

	cmd.AddCommand(runCmd())
	cmd.AddCommand(simulateCmd())
	cmd.AddCommand(snapshotCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

// newLogger builds the logger from INDICATORBAR_* variables, forcing debug
// output when tracing was requested on the command line.
func newLogger() (*slog.Logger, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if env.TraceLog {
		indicator.SetTraceLoggingEnabled(true)
	}
	if indicator.TraceLoggingEnabled() {
		env.TraceLog = true
	}
	return applog.FromEnv(os.Stderr, env), nil
}
