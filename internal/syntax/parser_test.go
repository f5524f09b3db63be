package syntax

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sexpr renders leaves as Kind[text] and inner nodes as Kind(children...).
func sexpr(t *Tree, n *Node) string {
	if len(n.Children) == 0 {
		return n.Kind.String() + "[" + t.Text(n) + "]"
	}
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, sexpr(t, c))
	}
	return n.Kind.String() + "(" + strings.Join(parts, " ") + ")"
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "member access",
			input:    "DateTime.Now",
			expected: "MemberAccess(Identifier[DateTime] Identifier[Now])",
		},
		{
			name:     "invocation",
			input:    "some.Action(x)",
			expected: "Invocation(MemberAccess(Identifier[some] Identifier[Action]) ArgumentList(Argument(Identifier[x])))",
		},
		{
			name:     "precedence",
			input:    "a + b * c",
			expected: "Binary(Identifier[a] Binary(Identifier[b] Identifier[c]))",
		},
		{
			name:     "coalesce is right associative",
			input:    "a ?? b ?? c",
			expected: "Binary(Identifier[a] Binary(Identifier[b] Identifier[c]))",
		},
		{
			name:     "conditional",
			input:    "a ? b : c",
			expected: "Conditional(Identifier[a] Identifier[b] Identifier[c])",
		},
		{
			name:     "predefined cast",
			input:    "(string)x",
			expected: "Cast(PredefinedType[string] Identifier[x])",
		},
		{
			name:     "named cast",
			input:    "(Foo)x",
			expected: "Cast(Identifier[Foo] Identifier[x])",
		},
		{
			name:     "parenthesized operand is not a cast",
			input:    "(a) - b",
			expected: "Binary(Parenthesized(Identifier[a]) Identifier[b])",
		},
		{
			name:     "is type",
			input:    "x is string",
			expected: "Binary(Identifier[x] PredefinedType[string])",
		},
		{
			name:     "is null pattern",
			input:    "x is null",
			expected: "IsPattern(Identifier[x] Literal[null])",
		},
		{
			name:     "as generic type",
			input:    "x as List<int>",
			expected: "Binary(Identifier[x] GenericName(TypeArgumentList(PredefinedType[int])))",
		},
		{
			name:     "generic method call",
			input:    `Html.Partial<Foo>("x")`,
			expected: `Invocation(MemberAccess(Identifier[Html] GenericName(TypeArgumentList(Identifier[Foo]))) ArgumentList(Argument(Literal["x"])))`,
		},
		{
			name:     "comparison chain is not generic",
			input:    "a < b > c",
			expected: "Binary(Binary(Identifier[a] Identifier[b]) Identifier[c])",
		},
		{
			name:     "shift",
			input:    "a >> 2",
			expected: "Binary(Identifier[a] Literal[2])",
		},
		{
			name:     "shift assignment",
			input:    "a >>= 2",
			expected: "Assignment(Identifier[a] Literal[2])",
		},
		{
			name:     "lambda",
			input:    "x => x.Name",
			expected: "Lambda(Identifier[x] MemberAccess(Identifier[x] Identifier[Name]))",
		},
		{
			name:     "conditional access",
			input:    "a?.b.c",
			expected: "ConditionalAccess(Identifier[a] MemberAccess(MemberBinding(Identifier[b]) Identifier[c]))",
		},
		{
			name:     "indexer",
			input:    "items[0]",
			expected: "ElementAccess(Identifier[items] BracketedArgumentList(Argument(Literal[0])))",
		},
		{
			name:     "anonymous object",
			input:    "new { Id = 1 }",
			expected: "ObjectCreation(Initializer(Assignment(Identifier[Id] Literal[1])))",
		},
		{
			name:     "tuple",
			input:    "(a, b)",
			expected: "Tuple(Identifier[a] Identifier[b])",
		},
		{
			name:     "typeof",
			input:    "typeof(int)",
			expected: "KeywordExpression(PredefinedType[int])",
		},
		{
			name:     "unary",
			input:    "!x",
			expected: "Unary(Identifier[x])",
		},
		{
			name:     "static member of predefined type",
			input:    `int.Parse("1")`,
			expected: `Invocation(MemberAccess(PredefinedType[int] Identifier[Parse]) ArgumentList(Argument(Literal["1"])))`,
		},
		{
			name:     "await",
			input:    "await Task.Delay(1)",
			expected: "Await(Invocation(MemberAccess(Identifier[Task] Identifier[Delay]) ArgumentList(Argument(Literal[1]))))",
		},
		{
			name:     "out declaration",
			input:    "f(out var x)",
			expected: "Invocation(Identifier[f] ArgumentList(Argument(Declaration(Identifier[var]))))",
		},
		{
			name:     "interpolated string",
			input:    `$"{a+b} and {c,5:N2}"`,
			expected: "Literal(Interpolation(Binary(Identifier[a] Identifier[b])) Interpolation(Identifier[c]))",
		},
		{
			name:     "interpolation with qualified alias",
			input:    `$"{global::X.Y}"`,
			expected: "Literal(Interpolation(MemberAccess(QualifiedName(Identifier[global] Identifier[X]) Identifier[Y])))",
		},
		{
			name:     "plain string has no holes",
			input:    `"{a+b}"`,
			expected: `Literal["{a+b}"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tree, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sexpr(tree, tree.Root))
		})
	}
}

func TestParseUnparseable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "  \t"},
		{"two expressions", "a b"},
		{"dangling operator", "a +"},
		{"unbalanced paren", "(a"},
		{"missing assignment value", "x = ;"},
		{"declaration statement", "int x = 1;"},
		{"statement keyword", "if (x) y"},
		{"range", "a..b"},
		{"empty interpolation", `$"{}"`},
		{"two expressions in interpolation", `$"{a b}"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tree, err := Parse(tt.input)
			assert.Nil(t, tree)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestTreeText(t *testing.T) {
	t.Parallel()

	tree, err := Parse(" ( some ) \n")
	require.NoError(t, err)
	assert.Equal(t, "( some )", tree.Text(tree.Root))
	assert.True(t, tree.Root.HasLeadingTrivia())
	assert.True(t, tree.Root.HasTrailingTrivia())
}

func TestFprint(t *testing.T) {
	t.Parallel()

	tree, err := Parse("a + f(b)")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, tree))

	expected := `Binary "a + f(b)"
  Identifier "a" [trailing]
  Invocation "f(b)"
    Identifier "f"
    ArgumentList "(b)" [opaque]
      Argument "b"
        Identifier "b"
`
	assert.Equal(t, expected, buf.String())
}
