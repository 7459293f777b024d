// Package migrate relocates tasks whose status tag disagrees with the status
// of the section they sit in.
//
// A run analyzes one immutable parse of the document (registry and move
// plan), then edits a line array: deletions first, a fresh parse to locate
// the destination headings, then insertions.
package migrate

import (
	"github.com/dgallion1/taskshift/internal/movelog"
	"github.com/dgallion1/taskshift/internal/parser"
)

// Result is the outcome of migrating one document.
type Result struct {
	Content string
	Moves   []movelog.Entry
	Changed bool
}

// Migrate relocates mismatched tasks in content. Lines not involved in a move
// are returned byte for byte, and the trailing newline state is kept.
func Migrate(content string) (Result, error) {
	tokens := parser.Parse(content)
	plan := PlanMoves(tokens, BuildRegistry(tokens))
	if plan.Empty() {
		return Result{Content: content}, nil
	}

	lines, trailing := parser.SplitLines(content)
	edited, err := Apply(lines, plan)
	if err != nil {
		return Result{Content: content}, err
	}

	out := parser.JoinLines(edited, trailing)
	return Result{
		Content: out,
		Moves:   plan.Moves,
		Changed: out != content,
	}, nil
}
