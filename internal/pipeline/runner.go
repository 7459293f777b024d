// Package pipeline runs the task migration over a set of documents: read,
// migrate, normalize dates, write back, stage, and record the moves.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dgallion1/taskshift/internal/dates"
	"github.com/dgallion1/taskshift/internal/migrate"
	"github.com/dgallion1/taskshift/internal/movelog"
	"github.com/dgallion1/taskshift/internal/parser"
)

// ErrNotDocument is returned for paths that are not task documents.
var ErrNotDocument = errors.New("not a task document")

// Stager re-stages a rewritten document.
type Stager interface {
	Add(ctx context.Context, path string) error
}

// Options controls a Runner.
type Options struct {
	// LogFile receives the move log; empty disables it.
	LogFile string
	// DryRun computes results without writing, staging or logging to disk.
	DryRun bool
}

// Runner processes documents one at a time. A Runner holds no per-run state
// and may be reused.
type Runner struct {
	log        *slog.Logger
	normalizer *dates.Normalizer
	stager     Stager
	opts       Options
}

// NewRunner creates a runner. A nil normalizer disables date normalization
// and a nil stager disables staging.
func NewRunner(log *slog.Logger, normalizer *dates.Normalizer, stager Stager, opts Options) *Runner {
	return &Runner{
		log:        log,
		normalizer: normalizer,
		stager:     stager,
		opts:       opts,
	}
}

// DocResult is the outcome for one document.
type DocResult struct {
	Path    string
	Content string
	Changed bool
	Skipped bool
	Written bool
	Moves   []movelog.Entry
	Dates   []dates.Rewrite
	Err     error
}

// Report summarizes a run.
type Report struct {
	RunID     string
	Documents []DocResult
	Log       *movelog.Log
}

// Changed reports whether any document changed.
func (r *Report) Changed() bool {
	for _, d := range r.Documents {
		if d.Changed {
			return true
		}
	}
	return false
}

// Transform migrates content in memory and then normalizes its date tags.
func (r *Runner) Transform(content string) (DocResult, error) {
	res, err := migrate.Migrate(content)
	if err != nil {
		return DocResult{Content: content}, err
	}

	out := DocResult{Content: res.Content, Moves: res.Moves}
	if r.normalizer != nil {
		out.Content, out.Dates = r.normalizer.Normalize(out.Content)
	}
	out.Changed = out.Content != content
	return out, nil
}

// Run processes paths in order. A failing document does not stop the
// others; all failures are returned joined. The move log covers every
// document that was rewritten or processed cleanly, and is rewritten from
// scratch on each run.
func (r *Runner) Run(ctx context.Context, paths []string) (*Report, error) {
	report := &Report{RunID: NewRunID(), Log: &movelog.Log{}}
	log := r.log.With("run_id", report.RunID)
	log.Debug("run started", "documents", len(paths))

	var errs []error
	for _, path := range paths {
		doc := r.processFile(ctx, log.With("path", path), path)
		if doc.Err != nil {
			errs = append(errs, doc.Err)
		}
		if doc.Err == nil || doc.Written {
			report.Log.Add(doc.Moves...)
		}
		report.Documents = append(report.Documents, doc)
	}

	if !r.opts.DryRun && r.opts.LogFile != "" {
		if err := report.Log.WriteFile(r.opts.LogFile); err != nil {
			log.Error("move log write failed", "file", r.opts.LogFile, "error", err)
			errs = append(errs, err)
		}
	}

	log.Info("run finished", "documents", len(paths), "moves", report.Log.Len(), "failed", len(errs))
	return report, errors.Join(errs...)
}

func (r *Runner) processFile(ctx context.Context, log *slog.Logger, path string) DocResult {
	fail := func(err error) DocResult {
		log.Error("document failed", "error", err)
		return DocResult{Path: path, Err: err}
	}

	if !parser.IsDocument(path) {
		return fail(fmt.Errorf("%s: %w", path, ErrNotDocument))
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("document missing, skipping")
		return DocResult{Path: path, Skipped: true}
	}
	if err != nil {
		return fail(fmt.Errorf("stat %s: %w", path, err))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fail(fmt.Errorf("read %s: %w", path, err))
	}

	doc, err := r.Transform(string(data))
	doc.Path = path
	if err != nil {
		return fail(fmt.Errorf("migrate %s: %w", path, err))
	}
	for _, m := range doc.Moves {
		log.Info("moved task", "from", m.From, "to", m.To, "task", m.Task)
	}
	for _, d := range doc.Dates {
		log.Info("normalized date", "label", d.Label, "from", d.From, "to", d.To)
	}

	if !doc.Changed || r.opts.DryRun {
		return doc
	}

	if err := atomicWriteFile(path, []byte(doc.Content), info.Mode().Perm()); err != nil {
		return fail(fmt.Errorf("write %s: %w", path, err))
	}
	doc.Written = true
	if r.stager != nil {
		if err := r.stager.Add(ctx, path); err != nil {
			log.Error("staging failed", "error", err)
			doc.Err = err
			return doc
		}
	}
	log.Info("document updated", "moves", len(doc.Moves), "dates", len(doc.Dates))
	return doc
}
