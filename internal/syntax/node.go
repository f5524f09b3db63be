package syntax

// NodeKind tags a structural node.
type NodeKind int

const (
	KindIdentifier NodeKind = iota
	KindGenericName
	KindPredefinedType
	KindLiteral
	KindInterpolation
	KindThis
	KindMemberAccess
	KindQualifiedName
	KindConditionalAccess
	KindMemberBinding
	KindElementBinding
	KindInvocation
	KindArgumentList
	KindBracketedArgumentList
	KindArgument
	KindElementAccess
	KindParenthesized
	KindTuple
	KindCast
	KindUnary
	KindPostfix
	KindAwait
	KindThrow
	KindBinary
	KindIsPattern
	KindConditional
	KindAssignment
	KindLambda
	KindParameterList
	KindBlock
	KindObjectCreation
	KindInitializer
	KindKeywordExpression
	KindDeclaration
	KindType
	KindTypeArgumentList
)

var kindNames = [...]string{
	KindIdentifier:            "Identifier",
	KindGenericName:           "GenericName",
	KindPredefinedType:        "PredefinedType",
	KindLiteral:               "Literal",
	KindInterpolation:         "Interpolation",
	KindThis:                  "This",
	KindMemberAccess:          "MemberAccess",
	KindQualifiedName:         "QualifiedName",
	KindConditionalAccess:     "ConditionalAccess",
	KindMemberBinding:         "MemberBinding",
	KindElementBinding:        "ElementBinding",
	KindInvocation:            "Invocation",
	KindArgumentList:          "ArgumentList",
	KindBracketedArgumentList: "BracketedArgumentList",
	KindArgument:              "Argument",
	KindElementAccess:         "ElementAccess",
	KindParenthesized:         "Parenthesized",
	KindTuple:                 "Tuple",
	KindCast:                  "Cast",
	KindUnary:                 "Unary",
	KindPostfix:               "Postfix",
	KindAwait:                 "Await",
	KindThrow:                 "Throw",
	KindBinary:                "Binary",
	KindIsPattern:             "IsPattern",
	KindConditional:           "Conditional",
	KindAssignment:            "Assignment",
	KindLambda:                "Lambda",
	KindParameterList:         "ParameterList",
	KindBlock:                 "Block",
	KindObjectCreation:        "ObjectCreation",
	KindInitializer:           "Initializer",
	KindKeywordExpression:     "KeywordExpression",
	KindDeclaration:           "Declaration",
	KindType:                  "Type",
	KindTypeArgumentList:      "TypeArgumentList",
}

func (k NodeKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Node is a structural position in an expression. Tokens holds the node's
// own tokens (operators, brackets, names); tokens that belong to a child
// live in that child.
type Node struct {
	Kind     NodeKind
	Children []*Node
	Tokens   []Token
}

func newNode(kind NodeKind, children []*Node, toks ...Token) *Node {
	return &Node{Kind: kind, Children: children, Tokens: toks}
}

// FirstToken returns the leftmost token of the node's full subtree.
func (n *Node) FirstToken() (Token, bool) {
	var (
		first Token
		found bool
	)
	for _, t := range n.Tokens {
		if !found || t.Span.Start < first.Span.Start {
			first, found = t, true
		}
	}
	for _, c := range n.Children {
		if t, ok := c.FirstToken(); ok && (!found || t.Span.Start < first.Span.Start) {
			first, found = t, true
		}
	}
	return first, found
}

// LastToken returns the rightmost token of the node's full subtree.
func (n *Node) LastToken() (Token, bool) {
	var (
		last  Token
		found bool
	)
	for _, t := range n.Tokens {
		if !found || t.Span.End > last.Span.End {
			last, found = t, true
		}
	}
	for _, c := range n.Children {
		if t, ok := c.LastToken(); ok && (!found || t.Span.End > last.Span.End) {
			last, found = t, true
		}
	}
	return last, found
}

// Span covers the node's tokens, trivia excluded.
func (n *Node) Span() Span {
	first, ok := n.FirstToken()
	if !ok {
		return Span{}
	}
	last, _ := n.LastToken()
	return Span{Start: first.Span.Start, End: last.Span.End}
}

// HasLeadingTrivia reports trivia in front of the node's first token.
func (n *Node) HasLeadingTrivia() bool {
	t, ok := n.FirstToken()
	return ok && t.HasLeadingTrivia()
}

// HasTrailingTrivia reports trivia after the node's last token.
func (n *Node) HasTrailingTrivia() bool {
	t, ok := n.LastToken()
	return ok && t.HasTrailingTrivia()
}

// HasStructuredTrivia reports a directive anywhere inside the node.
func (n *Node) HasStructuredTrivia() bool {
	for _, t := range n.Tokens {
		if t.HasStructuredTrivia() {
			return true
		}
	}
	for _, c := range n.Children {
		if c.HasStructuredTrivia() {
			return true
		}
	}
	return false
}

// OwnTokensHaveTrivia reports trivia on the node's immediate tokens only.
func (n *Node) OwnTokensHaveTrivia() bool {
	for _, t := range n.Tokens {
		if t.HasLeadingTrivia() || t.HasTrailingTrivia() || t.HasStructuredTrivia() {
			return true
		}
	}
	return false
}

// Tree is the result of parsing one expression.
type Tree struct {
	Source string
	Root   *Node
	// EOF carries trivia that no significant token claimed.
	EOF Token
}

// Text returns the source text covered by n.
func (t *Tree) Text(n *Node) string {
	sp := n.Span()
	return t.Source[sp.Start:sp.End]
}
