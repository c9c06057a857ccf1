package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/edward-ap/indicatorbar/internal/demoapp"
	"github.com/edward-ap/indicatorbar/internal/script"
)

type runOptions struct {
	scriptPath string
	interval   time.Duration
	autoplay   bool
}

func runCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the demo window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts)
		},
	}
	cmd.Flags().StringVar(&opts.scriptPath, "script", "", "gesture script the Replay button plays")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "delay between replayed events (default 60ms)")
	cmd.Flags().BoolVar(&opts.autoplay, "autoplay", false, "replay the script as soon as the window opens")
	return cmd
}

func runDemo(opts runOptions) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	var s *script.Script
	if opts.scriptPath != "" {
		if s, err = script.Load(opts.scriptPath); err != nil {
			return err
		}
	}
	demoapp.NewApp(demoapp.Options{
		Script:         s,
		ReplayInterval: opts.interval,
		Autoplay:       opts.autoplay,
		Logger:         logger,
	}).Run()
	return nil
}
