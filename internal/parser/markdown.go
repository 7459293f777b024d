package parser

import (
	"sort"
	"strings"

	"github.com/dgallion1/taskshift/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser tokenizes Markdown using goldmark.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(src []byte) []doctree.Token {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))
	idx := newLineIndex(src)

	var tokens []doctree.Token
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			tok := doctree.Token{
				Kind:    doctree.KindHeading,
				Level:   node.Level,
				Content: strings.TrimSpace(rawLines(node, src)),
				Lines:   idx.span(node.Lines()),
			}
			if tok.HasLines() && idx.isSetext(tok.Lines) {
				tok.Lines[1]++
			}
			tokens = append(tokens, tok)
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph, *ast.TextBlock:
			tokens = append(tokens, doctree.Token{
				Kind:    doctree.KindInline,
				Content: rawLines(n, src),
				Lines:   idx.span(n.Lines()),
			})
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			tokens = append(tokens, doctree.Token{
				Kind:  doctree.KindOther,
				Lines: idx.span(n.Lines()),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return tokens
}

// rawLines returns the source text of a block, one source line per line,
// without indentation or line terminators.
func rawLines(n ast.Node, src []byte) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(src)), "\r\n")
		parts = append(parts, strings.TrimLeft(line, " \t"))
	}
	return strings.Join(parts, "\n")
}

// lineIndex maps byte offsets to zero-based line numbers.
type lineIndex struct {
	src    []byte
	starts []int
}

func newLineIndex(src []byte) *lineIndex {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{src: src, starts: starts}
}

func (l *lineIndex) lineOf(offset int) int {
	return sort.SearchInts(l.starts, offset+1) - 1
}

func (l *lineIndex) line(n int) string {
	if n < 0 || n >= len(l.starts) {
		return ""
	}
	end := len(l.src)
	if n+1 < len(l.starts) {
		end = l.starts[n+1]
	}
	return strings.TrimRight(string(l.src[l.starts[n]:end]), "\r\n")
}

func (l *lineIndex) span(segs *text.Segments) [2]int {
	if segs == nil || segs.Len() == 0 {
		return [2]int{-1, -1}
	}
	first := segs.At(0)
	last := segs.At(segs.Len() - 1)
	end := l.lineOf(last.Start)
	if last.Stop > last.Start {
		end = l.lineOf(last.Stop - 1)
	}
	return [2]int{l.lineOf(first.Start), end + 1}
}

// isSetext reports whether the heading spanning lines is underlined, in which
// case the underline belongs to the heading as well.
func (l *lineIndex) isSetext(lines [2]int) bool {
	if strings.HasPrefix(strings.TrimLeft(l.line(lines[0]), " "), "#") {
		return false
	}
	under := strings.TrimSpace(l.line(lines[1]))
	if under == "" {
		return false
	}
	return strings.Trim(under, "=") == "" || strings.Trim(under, "-") == ""
}
