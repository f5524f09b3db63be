// Package webforms describes the fragments of a WebForms page that the
// converters consume.
package webforms

// Kind tags a WebForms fragment.
type Kind int

const (
	KindText Kind = iota
	KindDirective
	KindCodeBlock
	KindExpressionBlock
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindDirective:
		return "directive"
	case KindCodeBlock:
		return "code-block"
	case KindExpressionBlock:
		return "expression-block"
	default:
		return "unknown"
	}
}

// Node is a fragment produced by a WebForms document parser.
type Node interface {
	Kind() Kind
}

// ExpressionBlockNode is a <%= expr %> fragment.
type ExpressionBlockNode interface {
	Node
	Expression() string
}

// ExpressionBlock is the plain ExpressionBlockNode. The expression is kept
// exactly as it appeared between the delimiters.
type ExpressionBlock struct {
	Source string
}

func NewExpressionBlock(expr string) *ExpressionBlock {
	return &ExpressionBlock{Source: expr}
}

func (*ExpressionBlock) Kind() Kind           { return KindExpressionBlock }
func (b *ExpressionBlock) Expression() string { return b.Source }

// Text is literal markup between code fragments.
type Text struct {
	Content string
}

func (*Text) Kind() Kind { return KindText }

// CodeBlock is a <% statements %> fragment.
type CodeBlock struct {
	Code string
}

func (*CodeBlock) Kind() Kind { return KindCodeBlock }

// Directive is a <%@ ... %> fragment.
type Directive struct {
	Content string
}

func (*Directive) Kind() Kind { return KindDirective }
