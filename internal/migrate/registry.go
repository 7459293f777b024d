package migrate

import (
	"github.com/dgallion1/taskshift/internal/doctree"
	"github.com/dgallion1/taskshift/internal/tracker"
)

// Registry maps a status label to the title of the section that declares it.
type Registry map[string]string

// BuildRegistry records every status declared by a heading. When several
// headings declare the same status the last one wins.
func BuildRegistry(tokens []doctree.Token) Registry {
	reg := Registry{}
	for step := range tracker.Walk(tokens) {
		if step.Token.Kind == doctree.KindHeading && step.Status != "" {
			reg[step.Status] = step.Section
		}
	}
	return reg
}

// Lookup returns the owning section of a status.
func (r Registry) Lookup(status string) (string, bool) {
	title, ok := r[status]
	return title, ok
}
