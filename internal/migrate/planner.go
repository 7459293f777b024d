package migrate

import (
	"strings"

	"github.com/dgallion1/taskshift/internal/doctree"
	"github.com/dgallion1/taskshift/internal/movelog"
	"github.com/dgallion1/taskshift/internal/tags"
	"github.com/dgallion1/taskshift/internal/tracker"
)

// Plan holds the edits computed from one immutable parse of a document.
type Plan struct {
	// Deletions are [start, end) line ranges of relocated tasks.
	Deletions [][2]int
	// Insertions queues the rewritten task lines per destination status,
	// in document order.
	Insertions map[string][]string
	// Moves has one entry per relocated task.
	Moves []movelog.Entry
}

// Empty reports whether the plan has nothing to do.
func (p Plan) Empty() bool {
	return len(p.Deletions) == 0
}

// PlanMoves finds tasks whose status tag names a known status other than the
// one of the section they sit in, and plans their relocation.
func PlanMoves(tokens []doctree.Token, reg Registry) Plan {
	plan := Plan{Insertions: map[string][]string{}}

	for step := range tracker.Walk(tokens) {
		if step.Token.Kind != doctree.KindInline || !step.Token.HasLines() {
			continue
		}
		task, ok := tags.ParseTask(step.Token.Content)
		if !ok || task.Label == "" || task.Label == step.Status {
			continue
		}
		dest, known := reg.Lookup(task.Label)
		if !known {
			continue
		}

		body := tags.AppendBreadcrumbs(task.Rest, doctree.Titles(step.Breadcrumb))
		plan.Deletions = append(plan.Deletions, step.Token.Lines)
		plan.Insertions[task.Label] = append(plan.Insertions[task.Label], taskLines(task.Label, body)...)
		plan.Moves = append(plan.Moves, movelog.Entry{
			From: step.Section,
			To:   dest,
			Task: strings.ReplaceAll(body, "\n", " "),
		})
	}
	return plan
}

// taskLines renders a task as a bullet item. Continuation lines are indented
// so they stay inside the item.
func taskLines(status, body string) []string {
	lines := strings.Split(body, "\n")
	lines[0] = "- " + tags.Status(status) + " " + lines[0]
	for i := 1; i < len(lines); i++ {
		lines[i] = "  " + lines[i]
	}
	return lines
}
