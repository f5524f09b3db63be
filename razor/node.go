// Package razor describes the output side of a conversion.
package razor

// Node is a fragment of a Razor template.
type Node interface {
	// Render returns the Razor source for the node.
	Render() string
}

// ExpressionNodeFactory builds the node emitted for a converted expression.
type ExpressionNodeFactory interface {
	CreateExpressionNode(expression string, isMultiline bool) Node
}

// ExpressionNode is an expression written into the template output.
type ExpressionNode struct {
	Expression  string
	IsMultiline bool
}

// Render emits an implicit expression (@expr) or, for multiline
// expressions, an explicit one (@(expr)).
func (n *ExpressionNode) Render() string {
	if n.IsMultiline {
		return "@(" + n.Expression + ")"
	}
	return "@" + n.Expression
}

// NodeFactory is the default ExpressionNodeFactory.
type NodeFactory struct{}

var _ ExpressionNodeFactory = NodeFactory{}

func (NodeFactory) CreateExpressionNode(expression string, isMultiline bool) Node {
	return &ExpressionNode{Expression: expression, IsMultiline: isMultiline}
}
