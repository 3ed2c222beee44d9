package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/netresearch/go-cronnext"
)

func newNextCmd(a *app) *cobra.Command {
	var (
		count   int
		at      string
		tz      string
		rfc3339 bool
	)

	cmd := &cobra.Command{
		Use:   "next <expression>",
		Short: "Print the next execution times of an expression",
		Long: `Prints the next execution times of a cron expression, one per line.

The expression may be passed as a single quoted argument or as separate
fields: "cronnext next '0 0 L * *'" and "cronnext next 0 0 L '*' '*'" are
equivalent.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNext(cmd, a, strings.Join(args, " "), count, at, tz, rfc3339)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of execution times to print")
	cmd.Flags().StringVar(&at, "at", "", "reference time in RFC3339 (default now)")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA timezone to evaluate in (default from config)")
	cmd.Flags().BoolVar(&rfc3339, "rfc3339", false, "print times in RFC3339 instead of DD.MM.YYYY, HH:MM:SS")
	return cmd
}

func runNext(cmd *cobra.Command, a *app, expr string, count int, at, tz string, rfc3339 bool) error {
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	var loc *time.Location
	if tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("--tz: %w", err)
		}
		loc = l
	}
	calc := a.calculator(loc)

	ref := calc.Now()
	if at != "" {
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
		ref = t
	}

	times, err := calc.NextN(expr, ref, count)
	if err != nil {
		return err
	}
	for _, t := range times {
		if rfc3339 {
			fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), cronnext.FormatExecution(t))
		}
	}
	return nil
}
