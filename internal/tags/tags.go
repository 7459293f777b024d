// Package tags implements the bracketed status tag grammar used by task
// documents and the breadcrumb tags appended to relocated tasks.
package tags

import (
	"strings"
	"unicode"
)

// Match is a leading bracketed tag and the text that follows it.
type Match struct {
	Label string
	Rest  string
}

// ParseHeading matches "[<label>] <title>" on a heading title. The space
// after the closing bracket is optional.
func ParseHeading(s string) (Match, bool) {
	return parse(s, false)
}

// ParseTask matches "[<label>] <body>" on task text. At least one whitespace
// character must separate the tag from the body, so links such as
// "[text](url)" never match.
func ParseTask(s string) (Match, bool) {
	return parse(s, true)
}

func parse(s string, needSpace bool) (Match, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if !strings.HasPrefix(s, "[") {
		return Match{}, false
	}
	end := strings.IndexAny(s, "]\n")
	if end < 0 || s[end] != ']' {
		return Match{}, false
	}
	label := s[1:end]
	rest := s[end+1:]
	if needSpace {
		if rest == "" || !unicode.IsSpace(rune(rest[0])) {
			return Match{}, false
		}
	}
	return Match{Label: label, Rest: strings.TrimLeftFunc(rest, unicode.IsSpace)}, true
}

// Status renders a status tag, e.g. "[done]".
func Status(label string) string {
	return "[" + label + "]"
}

// Breadcrumb formats a section title as a hash tag: whitespace runs become
// underscores. An empty title yields an empty tag.
func Breadcrumb(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return "#" + strings.Join(fields, "_")
}

// AppendBreadcrumbs appends one tag per title to body, skipping tags that are
// already literally present in body or were added earlier in the same call.
// The match is a plain substring test.
func AppendBreadcrumbs(body string, titles []string) string {
	var added []string
	for _, title := range titles {
		tag := Breadcrumb(title)
		if tag == "" || strings.Contains(body, tag) {
			continue
		}
		dup := false
		for _, a := range added {
			if a == tag {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		added = append(added, tag)
	}
	if len(added) == 0 {
		return body
	}
	if body == "" {
		return strings.Join(added, " ")
	}
	return body + " " + strings.Join(added, " ")
}
