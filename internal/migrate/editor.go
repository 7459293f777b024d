package migrate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dgallion1/taskshift/internal/doctree"
	"github.com/dgallion1/taskshift/internal/parser"
	"github.com/dgallion1/taskshift/internal/tracker"
)

// ErrLostSection is returned when a destination heading cannot be found
// after the relocated tasks were removed.
var ErrLostSection = errors.New("destination section not found")

// Apply performs the plan on lines and returns the edited lines. The input
// slice is not modified.
//
// Deletions run highest range first so pending ranges keep their positions.
// The result is then parsed again, because every heading after a deleted
// range has moved, and the insertion points are taken from that fresh parse.
// Insertions likewise run from the bottom of the document up.
func Apply(lines []string, plan Plan) ([]string, error) {
	out := DeleteRanges(lines, plan.Deletions)
	if len(plan.Insertions) == 0 {
		return out, nil
	}

	points := InsertionPoints(parser.Parse(parser.JoinLines(out, true)))

	type insertion struct {
		status string
		at     int
	}
	var pending []insertion
	for status := range plan.Insertions {
		at, ok := points[status]
		if !ok {
			return nil, fmt.Errorf("%w: status %q", ErrLostSection, status)
		}
		pending = append(pending, insertion{status: status, at: at})
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].at > pending[j].at })

	for _, ins := range pending {
		out = insertAt(out, ins.at, plan.Insertions[ins.status])
	}
	return out, nil
}

// DeleteRanges removes the [start, end) ranges from a copy of lines.
func DeleteRanges(lines []string, ranges [][2]int) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	sorted := make([][2]int, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] > sorted[j][0] })

	for _, r := range sorted {
		start, end := max(r[0], 0), min(r[1], len(out))
		if start >= end {
			continue
		}
		out = append(out[:start], out[end:]...)
	}
	return out
}

// InsertionPoints maps each declared status to the line right after its
// declaring heading. The last declaration of a status wins.
func InsertionPoints(tokens []doctree.Token) map[string]int {
	points := map[string]int{}
	for step := range tracker.Walk(tokens) {
		if step.Token.Kind == doctree.KindHeading && step.Status != "" && step.Token.HasLines() {
			points[step.Status] = step.Token.Lines[1]
		}
	}
	return points
}

func insertAt(lines []string, at int, add []string) []string {
	at = min(max(at, 0), len(lines))
	out := make([]string, 0, len(lines)+len(add))
	out = append(out, lines[:at]...)
	out = append(out, add...)
	return append(out, lines[at:]...)
}
