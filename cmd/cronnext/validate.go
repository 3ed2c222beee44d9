package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netresearch/go-cronnext"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <expression>...",
		Short: "Check expressions and report warnings",
		Long:  "Validates each argument as a complete cron expression. Exits non-zero if any is invalid.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, a, args)
		},
	}
}

func runValidate(cmd *cobra.Command, a *app, exprs []string) error {
	calc := a.calculator(nil)
	out := cmd.OutOrStdout()

	invalid := 0
	for _, expr := range exprs {
		analysis := calc.Analyze(expr)
		if !analysis.Valid {
			invalid++
			fmt.Fprintf(out, "invalid  %s: %v\n", expr, analysis.Error)
			continue
		}

		line := fmt.Sprintf("ok       %s", expr)
		if analysis.Alias != "" {
			line += " (" + analysis.Expression + ")"
		}
		if !analysis.NextRun.IsZero() {
			line += "  next: " + cronnext.FormatExecution(analysis.NextRun)
		}
		if !analysis.Portable {
			line += "  [not portable]"
		}
		fmt.Fprintln(out, line)
		for _, w := range analysis.Warnings {
			fmt.Fprintf(out, "         warning: %s\n", w)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d expressions are invalid", invalid, len(exprs))
	}
	return nil
}
