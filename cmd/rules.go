package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gnolang/razorconv/rewrite"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rewrite rules in application order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRules(cmd.OutOrStdout(), rewrite.DefaultRules())
	},
}

func printRules(w io.Writer, rules []rewrite.Rule) error {
	for i, r := range rules {
		if _, err := fmt.Fprintf(w, "%d. %-14s %s\n", i+1, r.Name(), r.Description()); err != nil {
			return err
		}
	}
	return nil
}
