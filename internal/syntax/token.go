package syntax

import "fmt"

// TokenKind classifies a lexical token.
type TokenKind int

const (
	EOF TokenKind = iota
	Ident
	Keyword
	Number
	String
	Char
	Punct
)

func (k TokenKind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Keyword:
		return "Keyword"
	case Number:
		return "Number"
	case String:
		return "String"
	case Char:
		return "Char"
	case Punct:
		return "Punct"
	default:
		return "Unknown"
	}
}

// Span is a half-open byte range [Start, End) into the scanned text.
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is a significant token together with the trivia attached to it.
// Text is a slice of the scanned source and matches Span exactly.
type Token struct {
	Kind     TokenKind
	Text     string
	Span     Span
	Leading  []Trivia
	Trailing []Trivia
	// Holes holds the lexed expression of each interpolation hole of an
	// interpolated string, each ending with an EOF token.
	Holes [][]Token
}

func (t Token) HasLeadingTrivia() bool  { return len(t.Leading) > 0 }
func (t Token) HasTrailingTrivia() bool { return len(t.Trailing) > 0 }

// HasStructuredTrivia reports whether a directive is attached on either side.
func (t Token) HasStructuredTrivia() bool {
	for _, tr := range t.Leading {
		if tr.Kind.Structured() {
			return true
		}
	}
	for _, tr := range t.Trailing {
		if tr.Kind.Structured() {
			return true
		}
	}
	return false
}

// Is reports whether the token is the punctuator or keyword text.
func (t Token) Is(text string) bool {
	return (t.Kind == Punct || t.Kind == Keyword) && t.Text == text
}

// adjacent reports whether next starts exactly where t ends with no trivia in between.
func (t Token) adjacent(next Token) bool {
	return t.Span.End == next.Span.Start && len(t.Trailing) == 0 && len(next.Leading) == 0
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Span)
}
