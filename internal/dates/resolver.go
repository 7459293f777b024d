// Package dates rewrites loosely written date tags such as "[TBD: next
// monday]" into calendar dates.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Policy controls how ambiguous expressions are resolved.
type Policy struct {
	PreferFuture bool      // Resolve "monday" to the next Monday, not the last
	Base         time.Time // Reference point for relative expressions
}

// Resolver turns a free-form date expression into a date.
type Resolver interface {
	Resolve(text string, p Policy) (time.Time, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(text string, p Policy) (time.Time, bool)

func (f ResolverFunc) Resolve(text string, p Policy) (time.Time, bool) {
	return f(text, p)
}

var (
	pastMarker  = regexp.MustCompile(`(?i)\b(last|ago|yesterday|previous|past|before)\b`)
	bareWeekday = regexp.MustCompile(`(?i)^(on\s+)?(mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun)(day|nesday|sday|urday)?$`)
	explicitYr  = regexp.MustCompile(`\b\d{4}\b`)
	monthName   = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\b`)
)

// WhenResolver resolves English expressions with olebedev/when.
type WhenResolver struct {
	parser *when.Parser
}

// NewWhenResolver returns a resolver with the English and common rule sets.
func NewWhenResolver() *WhenResolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenResolver{parser: w}
}

// Resolve parses text relative to p.Base. The match must cover the whole
// expression; text with anything left over is not resolved.
func (r *WhenResolver) Resolve(text string, p Policy) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	base := p.Base
	if base.IsZero() {
		base = time.Now()
	}

	res, err := r.parser.Parse(text, base)
	if err != nil || res == nil {
		return time.Time{}, false
	}
	if !strings.EqualFold(strings.TrimSpace(res.Text), text) {
		return time.Time{}, false
	}

	t := res.Time
	if p.PreferFuture {
		t = rollForward(text, t, base)
	}
	return t, true
}

// rollForward moves a date that resolved into the past to its next
// occurrence, unless the expression asked for the past explicitly.
func rollForward(text string, t, base time.Time) time.Time {
	if !day(t).Before(day(base)) || pastMarker.MatchString(text) {
		return t
	}
	switch {
	case bareWeekday.MatchString(text):
		for day(t).Before(day(base)) {
			t = t.AddDate(0, 0, 7)
		}
	case monthName.MatchString(text) && !explicitYr.MatchString(text):
		for day(t).Before(day(base)) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return t
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
