package main

import (
	"fmt"

	"github.com/dgallion1/taskshift/internal/pipeline"
	"github.com/dgallion1/taskshift/internal/vcs"
	"github.com/spf13/cobra"
)

func newFixCmd(opts *rootOptions) *cobra.Command {
	var (
		dryRun  bool
		check   bool
		stage   bool
		moveLog string
	)

	cmd := &cobra.Command{
		Use:   "fix <document>...",
		Short: "Migrate the given task documents in place",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.textLogger()

			var stager pipeline.Stager
			if stage && !dryRun && !check {
				stager = vcs.New(".")
			}
			runner := pipeline.NewRunner(log, opts.normalizer(), stager, pipeline.Options{
				LogFile: moveLog,
				DryRun:  dryRun || check,
			})

			report, err := runner.Run(cmd.Context(), args)
			if dryRun {
				for _, doc := range report.Documents {
					if doc.Err != nil || doc.Skipped {
						continue
					}
					if len(report.Documents) > 1 {
						fmt.Fprintf(cmd.OutOrStdout(), "==> %s <==\n", doc.Path)
					}
					fmt.Fprint(cmd.OutOrStdout(), doc.Content)
				}
			}
			if err != nil {
				return err
			}
			if check && report.Changed() {
				for _, doc := range report.Documents {
					if doc.Changed {
						fmt.Fprintln(cmd.ErrOrStderr(), doc.Path)
					}
				}
				return errChangesNeeded
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print rewritten documents instead of writing them")
	cmd.Flags().BoolVar(&check, "check", false, "Exit non-zero if any document would change")
	cmd.Flags().BoolVar(&stage, "stage", false, "git add rewritten documents")
	cmd.Flags().StringVar(&moveLog, "move-log", "", "Write the move log to this file")
	return cmd
}
