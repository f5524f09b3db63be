// Package multiline decides whether a converted expression must be rendered
// as an explicit multi-line Razor expression.
package multiline

import (
	"errors"

	"github.com/gnolang/razorconv/internal/syntax"
)

// Reason explains a classification.
type Reason string

const (
	ReasonSimple       Reason = "simple"
	ReasonUnparseable  Reason = "unparseable"
	ReasonLeading      Reason = "leading-trivia"
	ReasonTrailing     Reason = "trailing-trivia"
	ReasonStructured   Reason = "structured-trivia"
	ReasonMemberAccess Reason = "member-access-trivia"
	ReasonBinary       Reason = "binary"
	ReasonConditional  Reason = "conditional"
)

// Result is the outcome of classifying one expression. Node is nil when the
// expression is simple or could not be parsed.
type Result struct {
	Multiline bool
	Reason    Reason
	Node      *syntax.Node
	Err       error
}

// Classify reports whether expr needs the explicit multi-line form. Text that
// does not parse as a single expression classifies as not multiline.
//
// Nodes are visited root first; argument lists, casts and parenthesized
// expressions are visited but never entered. A visited member access looks
// only at the trivia around its own operator, any other node at the trivia
// before its first and after its last token. A binary or conditional node
// makes the expression multiline by itself.
func Classify(expr string) Result {
	tree, err := syntax.Parse(expr)
	if err != nil {
		return Result{Reason: ReasonUnparseable, Err: err}
	}

	res := Result{Reason: ReasonSimple}
	syntax.Walk(tree.Root, syntax.Transparent, func(n *syntax.Node) bool {
		if reason, ok := check(n); ok {
			res = Result{Multiline: true, Reason: reason, Node: n}
			return false
		}
		return true
	})
	return res
}

// IsMultiline is Classify reduced to its verdict.
func IsMultiline(expr string) bool {
	return Classify(expr).Multiline
}

func check(n *syntax.Node) (Reason, bool) {
	if n.Kind == syntax.KindMemberAccess {
		if n.OwnTokensHaveTrivia() {
			return ReasonMemberAccess, true
		}
	} else {
		switch {
		case n.HasLeadingTrivia():
			return ReasonLeading, true
		case n.HasTrailingTrivia():
			return ReasonTrailing, true
		case n.HasStructuredTrivia():
			return ReasonStructured, true
		}
	}

	switch n.Kind {
	case syntax.KindBinary:
		return ReasonBinary, true
	case syntax.KindConditional:
		return ReasonConditional, true
	}
	return "", false
}

// Unparseable reports whether res came from text the scanner rejected.
func (r Result) Unparseable() bool {
	return errors.Is(r.Err, syntax.ErrUnparseable)
}
