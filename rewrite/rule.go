// Package rewrite holds the ordered text substitutions applied to an
// expression before it is classified.
package rewrite

import (
	"go.uber.org/zap"
)

// Rule is a pure string transformation. A rule that finds nothing to
// rewrite returns its input unchanged.
type Rule interface {
	Name() string
	Description() string
	Apply(subject string) string
}

// DefaultRules returns the built-in rules in application order.
func DefaultRules() []Rule {
	return []Rule{
		ResolveURL{},
		EncodeRemoval{},
		DecodeWrap{},
	}
}

// Apply runs every rule over subject in order, each rule seeing the output
// of the previous one. Rules that change the text are logged at debug level.
func Apply(subject string, rules []Rule, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}
	result := subject
	for _, rule := range rules {
		next := rule.Apply(result)
		if next != result {
			logger.Debug("applied rule",
				zap.String("rule", rule.Name()),
				zap.String("before", result),
				zap.String("after", next),
			)
		}
		result = next
	}
	return result
}
