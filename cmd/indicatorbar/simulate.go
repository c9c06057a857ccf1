package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/edward-ap/indicatorbar/internal/script"
)

type finalState struct {
	Progress float64 `yaml:"progress"`
	Value    int64   `yaml:"value"`
	State    string  `yaml:"state"`
}

type simulateReport struct {
	Script        string `yaml:"script,omitempty"`
	script.Result `yaml:",inline"`
	Final         finalState `yaml:"final"`
}

func simulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <script.yaml>",
		Short: "Replay a gesture script headlessly and print the commits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			return runSimulate(cmd.OutOrStdout(), args[0], logger.With("script", args[0]).Debug)
		},
	}
}

// runSimulate writes a YAML report of replaying the script at path.
func runSimulate(w io.Writer, path string, debug func(string, ...any)) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	res, err := s.Run()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	debug("replayed", "events", len(s.Events), "commits", len(res.Commits))

	out, err := yaml.Marshal(simulateReport{
		Script: s.Name,
		Result: res,
		Final: finalState{
			Progress: res.Final.Progress,
			Value:    res.Final.Value,
			State:    res.Final.State.String(),
		},
	})
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
