package razor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeFactory(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		expr      string
		multiline bool
		expected  string
	}{
		{"implicit", "DateTime.Now", false, "@DateTime.Now"},
		{"explicit", "a ?? b", true, "@(a ?? b)"},
		{"keeps line breaks", "Html.Grid()\r\n.Name(\"g\")", true, "@(Html.Grid()\r\n.Name(\"g\"))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			node := NodeFactory{}.CreateExpressionNode(tt.expr, tt.multiline)
			assert.Equal(t, &ExpressionNode{Expression: tt.expr, IsMultiline: tt.multiline}, node)
			assert.Equal(t, tt.expected, node.Render())
		})
	}
}
