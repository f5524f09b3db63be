package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(nodes []*Node) []NodeKind {
	out := make([]NodeKind, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Kind)
	}
	return out
}

func TestDescendants(t *testing.T) {
	t.Parallel()

	tree, err := Parse("f(a.b)")
	require.NoError(t, err)

	t.Run("opaque argument lists", func(t *testing.T) {
		t.Parallel()
		got := Descendants(tree.Root, Transparent)
		assert.Equal(t, []NodeKind{KindInvocation, KindIdentifier, KindArgumentList}, kinds(got))
	})

	t.Run("everything", func(t *testing.T) {
		t.Parallel()
		got := Descendants(tree.Root, All)
		assert.Equal(t, []NodeKind{
			KindInvocation, KindIdentifier, KindArgumentList, KindArgument,
			KindMemberAccess, KindIdentifier, KindIdentifier,
		}, kinds(got))
	})
}

func TestWalkStops(t *testing.T) {
	t.Parallel()

	tree, err := Parse("a + b + c")
	require.NoError(t, err)

	visited := 0
	completed := Walk(tree.Root, All, func(n *Node) bool {
		visited++
		return n.Kind != KindBinary || visited == 1
	})
	assert.False(t, completed)
	assert.Equal(t, 2, visited)
}

func TestTransparent(t *testing.T) {
	t.Parallel()

	assert.False(t, Transparent(&Node{Kind: KindArgumentList}))
	assert.False(t, Transparent(&Node{Kind: KindCast}))
	assert.False(t, Transparent(&Node{Kind: KindParenthesized}))
	assert.True(t, Transparent(&Node{Kind: KindBracketedArgumentList}))
	assert.True(t, Transparent(&Node{Kind: KindInvocation}))
}

func TestNodeSpan(t *testing.T) {
	t.Parallel()

	tree, err := Parse("x.Y(1)")
	require.NoError(t, err)

	assert.Equal(t, Span{Start: 0, End: 6}, tree.Root.Span())
	first, ok := tree.Root.FirstToken()
	require.True(t, ok)
	assert.Equal(t, "x", first.Text)
	last, ok := tree.Root.LastToken()
	require.True(t, ok)
	assert.Equal(t, ")", last.Text)
}
