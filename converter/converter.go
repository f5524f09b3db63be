// Package converter turns WebForms expression blocks into Razor expression
// nodes.
package converter

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gnolang/razorconv/internal/multiline"
	"github.com/gnolang/razorconv/razor"
	"github.com/gnolang/razorconv/rewrite"
	"github.com/gnolang/razorconv/webforms"
)

// NodeConverter converts one kind of WebForms fragment. A dispatcher asks
// CanConvert first and calls Convert only on fragments that were accepted.
type NodeConverter interface {
	CanConvert(node webforms.Node) bool
	Convert(node webforms.Node) []razor.Node
}

// Analysis is everything the converter decided about one expression.
type Analysis struct {
	Source     string
	Expression string
	Multiline  bool
	Reason     multiline.Reason
}

// ExpressionBlockConverter handles <%= expr %> fragments. It holds no
// mutable state and may be shared between goroutines.
type ExpressionBlockConverter struct {
	factory razor.ExpressionNodeFactory
	rules   []rewrite.Rule
	logger  *zap.Logger
}

var _ NodeConverter = (*ExpressionBlockConverter)(nil)

type Option func(*ExpressionBlockConverter)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *ExpressionBlockConverter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRules replaces the rewrite rules. Intended for tests and tooling.
func WithRules(rules ...rewrite.Rule) Option {
	return func(c *ExpressionBlockConverter) {
		c.rules = rules
	}
}

func New(factory razor.ExpressionNodeFactory, opts ...Option) *ExpressionBlockConverter {
	c := &ExpressionBlockConverter{
		factory: factory,
		rules:   rewrite.DefaultRules(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ExpressionBlockConverter) CanConvert(node webforms.Node) bool {
	_, ok := node.(webforms.ExpressionBlockNode)
	return ok
}

// Convert returns exactly one expression node for an expression block and
// nil for any other fragment.
func (c *ExpressionBlockConverter) Convert(node webforms.Node) []razor.Node {
	block, ok := node.(webforms.ExpressionBlockNode)
	if !ok {
		c.logger.Debug("declined fragment", zap.Stringer("kind", kindOf(node)))
		return nil
	}
	a := c.Analyze(block.Expression())
	return []razor.Node{c.factory.CreateExpressionNode(a.Expression, a.Multiline)}
}

// Analyze runs the conversion pipeline on raw expression text: spaces and
// tabs are trimmed from both ends (line breaks are kept), the rewrite rules
// run in order and the result is classified.
func (c *ExpressionBlockConverter) Analyze(source string) Analysis {
	expr := strings.Trim(source, " \t")
	expr = rewrite.Apply(expr, c.rules, c.logger)

	res := multiline.Classify(expr)
	fields := []zap.Field{
		zap.String("expression", expr),
		zap.Bool("multiline", res.Multiline),
		zap.String("reason", string(res.Reason)),
	}
	if res.Node != nil {
		fields = append(fields, zap.Stringer("node", res.Node.Kind))
	}
	if res.Err != nil {
		fields = append(fields, zap.Error(res.Err))
	}
	c.logger.Debug("classified expression", fields...)

	return Analysis{
		Source:     source,
		Expression: expr,
		Multiline:  res.Multiline,
		Reason:     res.Reason,
	}
}

func kindOf(node webforms.Node) webforms.Kind {
	if node == nil {
		return -1
	}
	return node.Kind()
}
