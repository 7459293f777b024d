package parser

import (
	"path/filepath"
	"strings"

	"github.com/dgallion1/taskshift/internal/doctree"
)

// Parser converts raw document text into a token stream.
type Parser interface {
	Parse(src []byte) []doctree.Token
}

// DocumentExtensions lists file extensions treated as task documents.
var DocumentExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// IsDocument reports whether a path names a task document.
func IsDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return DocumentExtensions[ext]
}

// FilterDocuments keeps only document paths, preserving order.
func FilterDocuments(paths []string) []string {
	var out []string
	for _, p := range paths {
		if IsDocument(p) {
			out = append(out, p)
		}
	}
	return out
}

// Parse tokenizes markdown text with the default parser.
func Parse(src string) []doctree.Token {
	return (&MarkdownParser{}).Parse([]byte(src))
}
