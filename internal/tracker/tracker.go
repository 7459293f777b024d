// Package tracker walks a token stream and reports, for every token, the
// section context it sits in.
package tracker

import (
	"iter"

	"github.com/dgallion1/taskshift/internal/doctree"
	"github.com/dgallion1/taskshift/internal/tags"
)

// Context is the section state in effect at a token.
type Context struct {
	Status     string          // Active status label, empty for none
	Section    string          // Title of the innermost heading
	Breadcrumb []doctree.Crumb // Enclosing headings from root to leaf
}

// Step pairs a token with the context in effect at it. For heading tokens the
// context already reflects the heading itself.
type Step struct {
	Index int
	Token doctree.Token
	Context
}

// Walk returns a lazy sequence of steps over tokens. The sequence keeps no
// state between iterations, so it can be ranged over any number of times and
// always yields the same steps.
func Walk(tokens []doctree.Token) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		var (
			status  string
			section string
			stack   []doctree.Crumb
		)
		for i, tok := range tokens {
			if tok.Kind == doctree.KindHeading {
				sec := Heading(tok)
				status, section = sec.Status, sec.Title

				// Pop stack until the top is a strict ancestor.
				for len(stack) > 0 && stack[len(stack)-1].Level >= sec.Level {
					stack = stack[:len(stack)-1]
				}
				stack = append(stack, doctree.Crumb{Title: sec.Title, Level: sec.Level})
			}

			step := Step{
				Index: i,
				Token: tok,
				Context: Context{
					Status:     status,
					Section:    section,
					Breadcrumb: copyBreadcrumb(stack),
				},
			}
			if !yield(step) {
				return
			}
		}
	}
}

// Heading interprets a heading token as a section. Headings without a status
// tag reset the status to none and keep their full text as title.
func Heading(tok doctree.Token) doctree.Section {
	sec := doctree.Section{Level: tok.Level, Title: tok.Content}
	if m, ok := tags.ParseHeading(tok.Content); ok {
		sec.Status = m.Label
		sec.Title = m.Rest
	}
	return sec
}

func copyBreadcrumb(bc []doctree.Crumb) []doctree.Crumb {
	if len(bc) == 0 {
		return nil
	}
	out := make([]doctree.Crumb, len(bc))
	copy(out, bc)
	return out
}
