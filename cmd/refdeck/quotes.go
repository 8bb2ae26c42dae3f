package main

import (
	"fmt"

	"github.com/jbartnik/refdeck"
)

// Run executes the quotes status command.
func (c *QuotesStatusCmd) Run(deps *Dependencies) error {
	status, err := deps.Quotes.QuoteStatus(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "quotes:  %d across %d articles\n", status.TotalQuotes, status.TotalArticles)
	fmt.Fprintf(deps.Stdout, "without: %d\n", status.WithoutQuotes)
	if len(status.NeedingBackfill) > 0 {
		fmt.Fprintln(deps.Stdout, "needing backfill:")
		for _, a := range status.NeedingBackfill {
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", a.ID, a.Title)
		}
	}
	return nil
}

// Run executes the quotes backfill command.
func (c *QuotesBackfillCmd) Run(deps *Dependencies) error {
	report, err := deps.Quotes.BackfillQuotes(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report.Message)
	for _, a := range report.Processing {
		fmt.Fprintf(deps.Stdout, "  %s  %s\n", a.ID, a.Title)
	}
	if report.Remaining > 0 {
		fmt.Fprintf(deps.Stdout, "%d article(s) still waiting; run backfill again later.\n", report.Remaining)
	}
	return nil
}
