package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/razorconv/converter"
	"github.com/gnolang/razorconv/internal/syntax"
	"github.com/gnolang/razorconv/razor"
)

var classifyDebug bool

var classifyCmd = &cobra.Command{
	Use:   "classify [expressions...]",
	Short: "Show whether each expression is rendered as a multiline expression",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errNoExpressions
		}
		return runClassify(logger, cmd.OutOrStdout(), args, classifyDebug || config.Debug)
	},
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyDebug, "debug", false, "Print the expression tree")
}

func runClassify(logger *zap.Logger, w io.Writer, exprs []string, debug bool) error {
	conv := converter.New(razor.NodeFactory{}, converter.WithLogger(logger))
	for _, expr := range exprs {
		a := conv.Analyze(expr)
		if _, err := fmt.Fprintf(w, "%q: multiline=%t reason=%s\n", a.Expression, a.Multiline, a.Reason); err != nil {
			return err
		}
		if !debug {
			continue
		}
		tree, err := syntax.Parse(a.Expression)
		if err != nil {
			fmt.Fprintf(w, "  %v\n", err)
			continue
		}
		if err := syntax.Fprint(w, tree); err != nil {
			return err
		}
	}
	return nil
}
