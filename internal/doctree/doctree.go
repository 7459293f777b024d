package doctree

// Kind classifies a token in the parsed stream.
type Kind int

const (
	KindOther   Kind = iota // Code blocks, HTML and other leaf blocks
	KindHeading             // Section heading
	KindInline              // Paragraph text (task lines live here)
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindInline:
		return "inline"
	default:
		return "other"
	}
}

// Token is a unit of parsed document structure.
//
// Lines is the zero-based [start, end) line range in the text the token was
// parsed from. It is only valid for that exact text: any line mutation
// invalidates every token and the text must be parsed again.
type Token struct {
	Kind    Kind
	Level   int    // Heading level (1-6), 0 for non-headings
	Content string // Heading title or raw paragraph text
	Lines   [2]int // [start, end); {-1, -1} when the block has no source lines
}

// HasLines reports whether the token maps back to source lines.
func (t Token) HasLines() bool {
	return t.Lines[0] >= 0 && t.Lines[1] > t.Lines[0]
}

// Section is a heading occurrence with its optional status label.
type Section struct {
	Level  int
	Title  string // Heading title without the status tag
	Status string // Empty when the heading carries no status tag
}

// Crumb is one entry of the breadcrumb stack.
type Crumb struct {
	Title string
	Level int
}

// Titles returns the breadcrumb titles from root to leaf.
func Titles(bc []Crumb) []string {
	if len(bc) == 0 {
		return nil
	}
	out := make([]string, len(bc))
	for i, c := range bc {
		out[i] = c.Title
	}
	return out
}
