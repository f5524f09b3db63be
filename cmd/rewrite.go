package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/razorconv/rewrite"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [expressions...]",
	Short: "Apply the rewrite rules and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errNoExpressions
		}
		return runRewrite(logger, cmd.OutOrStdout(), args)
	},
}

func runRewrite(logger *zap.Logger, w io.Writer, exprs []string) error {
	rules := rewrite.DefaultRules()
	for _, expr := range exprs {
		out := rewrite.Apply(strings.Trim(expr, " \t"), rules, logger)
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}
