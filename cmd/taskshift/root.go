package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/dgallion1/taskshift/internal/config"
	"github.com/dgallion1/taskshift/internal/dates"
	"github.com/spf13/cobra"
)

// errChangesNeeded signals that --check found documents to rewrite.
var errChangesNeeded = errors.New("documents need task migration")

type rootOptions struct {
	cfg     config.Config
	noDates bool
	labels  []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Load()}

	cmd := &cobra.Command{
		Use:           "taskshift",
		Short:         "Move tasks to the section that owns their status",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noDates {
				opts.cfg.NormalizeDates = false
			}
			if len(opts.labels) > 0 {
				opts.cfg.DateLabels = opts.labels
			}
			return opts.cfg.Validate()
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.noDates, "no-dates", false, "Skip date tag normalization")
	flags.StringSliceVar(&opts.labels, "date-labels", nil, "Date tag labels to normalize (default TBD)")

	cmd.AddCommand(newHookCmd(opts), newFixCmd(opts), newServeCmd(opts))
	return cmd
}

// normalizer returns nil when date normalization is disabled.
func (o *rootOptions) normalizer() *dates.Normalizer {
	if !o.cfg.NormalizeDates {
		return nil
	}
	return dates.NewNormalizer(dates.NewWhenResolver(), o.cfg.DateLabels)
}

func (o *rootOptions) textLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: o.cfg.LogLevel}))
}

func (o *rootOptions) jsonLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: o.cfg.LogLevel}))
}
