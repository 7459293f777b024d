package parser

import (
	"reflect"
	"testing"

	"github.com/dgallion1/taskshift/internal/doctree"
)

func TestMarkdownParser_HeadingsAndTasks(t *testing.T) {
	input := `# Todo

## [doing] Now

- [done] Ship feature
- plain task

## [done] Done
`
	tokens := Parse(input)

	want := []doctree.Token{
		{Kind: doctree.KindHeading, Level: 1, Content: "Todo", Lines: [2]int{0, 1}},
		{Kind: doctree.KindHeading, Level: 2, Content: "[doing] Now", Lines: [2]int{2, 3}},
		{Kind: doctree.KindInline, Content: "[done] Ship feature", Lines: [2]int{4, 5}},
		{Kind: doctree.KindInline, Content: "plain task", Lines: [2]int{5, 6}},
		{Kind: doctree.KindHeading, Level: 2, Content: "[done] Done", Lines: [2]int{7, 8}},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %#v", len(want), len(tokens), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token[%d]: expected %#v, got %#v", i, want[i], tokens[i])
		}
	}
}

func TestMarkdownParser_SetextHeadingIncludesUnderline(t *testing.T) {
	input := "Title\n=====\n\ntext\n"
	tokens := Parse(input)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %#v", len(tokens), tokens)
	}
	if tokens[0].Kind != doctree.KindHeading || tokens[0].Content != "Title" {
		t.Errorf("expected heading %q, got %#v", "Title", tokens[0])
	}
	if tokens[0].Lines != [2]int{0, 2} {
		t.Errorf("expected heading lines [0 2], got %v", tokens[0].Lines)
	}
	if tokens[1].Lines != [2]int{3, 4} {
		t.Errorf("expected paragraph lines [3 4], got %v", tokens[1].Lines)
	}
}

func TestMarkdownParser_ATXHeadingBeforeThematicBreak(t *testing.T) {
	tokens := Parse("# Title\n---\n")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %#v", len(tokens), tokens)
	}
	if tokens[0].Lines != [2]int{0, 1} {
		t.Errorf("expected heading lines [0 1], got %v", tokens[0].Lines)
	}
}

func TestMarkdownParser_MultiLineTask(t *testing.T) {
	input := "- [done] first line\n  second line\n- next\n"
	tokens := Parse(input)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %#v", len(tokens), tokens)
	}
	if tokens[0].Content != "[done] first line\nsecond line" {
		t.Errorf("expected multi-line content, got %q", tokens[0].Content)
	}
	if tokens[0].Lines != [2]int{0, 2} {
		t.Errorf("expected lines [0 2], got %v", tokens[0].Lines)
	}
	if tokens[1].Lines != [2]int{2, 3} {
		t.Errorf("expected lines [2 3], got %v", tokens[1].Lines)
	}
}

func TestMarkdownParser_CodeBlocksAreNotInline(t *testing.T) {
	input := "# [done] Done\n\n```\n- [todo] not a task\n```\n"
	for _, tok := range Parse(input) {
		if tok.Kind == doctree.KindInline {
			t.Errorf("expected no inline tokens inside code fences, got %#v", tok)
		}
	}
}

func TestMarkdownParser_NestedHeadingLevels(t *testing.T) {
	input := "# A\n## B\n### C\n## D\n"
	tokens := Parse(input)
	levels := []int{1, 2, 3, 2}
	if len(tokens) != len(levels) {
		t.Fatalf("expected %d tokens, got %d", len(levels), len(tokens))
	}
	for i, lvl := range levels {
		if tokens[i].Level != lvl {
			t.Errorf("token[%d]: expected level %d, got %d", i, lvl, tokens[i].Level)
		}
		if tokens[i].Lines != [2]int{i, i + 1} {
			t.Errorf("token[%d]: expected lines [%d %d], got %v", i, i, i+1, tokens[i].Lines)
		}
	}
}

func TestMarkdownParser_Deterministic(t *testing.T) {
	input := "# [todo] Later\n\n- [doing] a\n- b\n\n> [done] quoted\n\n## Sub\n\ntext\n"
	first := Parse(input)
	second := Parse(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical token streams, got %#v and %#v", first, second)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	if tokens := Parse(""); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", len(tokens))
	}
}

func TestIsDocument(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"todo.md", true},
		{"notes/PLAN.MD", true},
		{"notes.markdown", true},
		{"main.go", false},
		{"README", false},
	}
	for _, tt := range tests {
		if got := IsDocument(tt.path); got != tt.want {
			t.Errorf("path=%q: expected %v, got %v", tt.path, tt.want, got)
		}
	}
}

func TestFilterDocuments(t *testing.T) {
	got := FilterDocuments([]string{"a.md", "b.go", "c/d.markdown"})
	want := []string{"a.md", "c/d.markdown"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
