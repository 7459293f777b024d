package main

import (
	"path/filepath"

	"github.com/dgallion1/taskshift/internal/parser"
	"github.com/dgallion1/taskshift/internal/pipeline"
	"github.com/dgallion1/taskshift/internal/vcs"
	"github.com/spf13/cobra"
)

func newHookCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hook",
		Short: "Migrate staged task documents (git pre-commit hook)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := opts.textLogger()

			git := vcs.New(".")
			root, err := git.TopLevel(ctx)
			if err != nil {
				return err
			}
			git.Dir = root

			staged, err := git.StagedFiles(ctx)
			if err != nil {
				return err
			}
			docs := parser.FilterDocuments(staged)
			for i, d := range docs {
				docs[i] = filepath.Join(root, d)
			}

			logFile := opts.cfg.LogFile
			if !filepath.IsAbs(logFile) {
				logFile = filepath.Join(root, logFile)
			}

			var stager pipeline.Stager
			if opts.cfg.Stage {
				stager = git
			}
			runner := pipeline.NewRunner(log, opts.normalizer(), stager, pipeline.Options{LogFile: logFile})
			_, err = runner.Run(ctx, docs)
			return err
		},
	}
}
