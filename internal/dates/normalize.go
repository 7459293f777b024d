package dates

import (
	"regexp"
	"strings"
	"time"
)

// ISOLayout is the canonical date form written into tags.
const ISOLayout = "2006-01-02"

// DefaultLabels are the tag labels normalized when none are configured.
var DefaultLabels = []string{"TBD"}

// Rewrite describes one normalized tag.
type Rewrite struct {
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// Normalizer rewrites "[<Label>:<text>]" tags to "[<Label>:YYYY-MM-DD]".
type Normalizer struct {
	resolver Resolver
	pattern  *regexp.Regexp
	now      func() time.Time
}

// NewNormalizer builds a normalizer for the given labels.
func NewNormalizer(r Resolver, labels []string) *Normalizer {
	if len(labels) == 0 {
		labels = DefaultLabels
	}
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return &Normalizer{
		resolver: r,
		pattern:  regexp.MustCompile(`\[(` + strings.Join(quoted, "|") + `):\s*([^\]]+)\]`),
		now:      time.Now,
	}
}

// WithClock overrides the reference time used for relative expressions.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// Normalize rewrites every date tag in content. Lines without a resolvable
// tag are returned unchanged, byte for byte.
func (n *Normalizer) Normalize(content string) (string, []Rewrite) {
	lines := strings.Split(content, "\n")
	var rewrites []Rewrite
	for i, line := range lines {
		out, rw := n.NormalizeLine(line)
		lines[i] = out
		rewrites = append(rewrites, rw...)
	}
	return strings.Join(lines, "\n"), rewrites
}

// NormalizeLine rewrites the date tags of a single line.
func (n *Normalizer) NormalizeLine(line string) (string, []Rewrite) {
	matches := n.pattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return line, nil
	}

	var (
		b        strings.Builder
		rewrites []Rewrite
		last     int
	)
	for _, m := range matches {
		whole := line[m[0]:m[1]]
		label := line[m[2]:m[3]]
		raw := strings.TrimSpace(line[m[4]:m[5]])

		iso, ok := n.canonical(raw)
		b.WriteString(line[last:m[0]])
		last = m[1]
		if !ok {
			b.WriteString(whole)
			continue
		}
		tag := "[" + label + ":" + iso + "]"
		b.WriteString(tag)
		if tag != whole {
			rewrites = append(rewrites, Rewrite{Label: label, From: raw, To: iso})
		}
	}
	b.WriteString(line[last:])
	return b.String(), rewrites
}

func (n *Normalizer) canonical(raw string) (string, bool) {
	if t, err := time.Parse(ISOLayout, raw); err == nil {
		return t.Format(ISOLayout), true
	}
	if n.resolver == nil {
		return "", false
	}
	t, ok := n.resolver.Resolve(raw, Policy{PreferFuture: true, Base: n.now()})
	if !ok {
		return "", false
	}
	return t.Format(ISOLayout), true
}
