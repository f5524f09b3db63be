package syntax

// TriviaKind classifies non-semantic source text attached to tokens.
type TriviaKind uint8

const (
	TriviaWhitespace TriviaKind = iota
	TriviaEndOfLine
	TriviaLineComment
	TriviaBlockComment
	TriviaDirective
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaEndOfLine:
		return "EndOfLine"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDirective:
		return "Directive"
	default:
		return "Unknown"
	}
}

// Structured reports whether the trivia carries structure of its own
// (preprocessor directives) rather than plain formatting.
func (k TriviaKind) Structured() bool {
	return k == TriviaDirective
}

type Trivia struct {
	Kind TriviaKind
	Span Span
	Text string
}
