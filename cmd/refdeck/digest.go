package main

import (
	"fmt"

	"github.com/jbartnik/refdeck"
)

// Run executes the digest status command.
func (c *DigestStatusCmd) Run(deps *Dependencies) error {
	status, err := deps.Digest.DigestStatus(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "email configured:  %v\n", status.EmailConfigured)
	fmt.Fprintf(deps.Stdout, "scheduler running: %v\n", status.SchedulerRunning)
	fmt.Fprintf(deps.Stdout, "schedule:          %s\n", status.Schedule)
	fmt.Fprintf(deps.Stdout, "articles:          %d\n", status.TotalArticles)
	fmt.Fprintf(deps.Stdout, "quotes:            %d\n", status.TotalQuotes)
	return nil
}

// Run executes the digest preview command.
func (c *DigestPreviewCmd) Run(deps *Dependencies) error {
	preview, err := deps.Digest.PreviewDigest(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	if preview.Message != "" {
		fmt.Fprintln(deps.Stdout, preview.Message)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Subject: %s\n", preview.Subject)
	fmt.Fprintf(deps.Stdout, "Theme:   %s\n", preview.Theme)
	fmt.Fprintf(deps.Stdout, "Anchor:  %s\n", preview.AnchorArticle)
	fmt.Fprintf(deps.Stdout, "Recent articles: %d, quotes: %d\n", preview.RecentCount, preview.TotalQuotes)
	return nil
}

// Run executes the digest send command.
func (c *DigestSendCmd) Run(deps *Dependencies) error {
	receipt, err := deps.Digest.SendDigest(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	if !receipt.Success {
		fmt.Fprintf(deps.Stderr, "digest not sent: %s\n", receipt.Message)
		return refdeck.Errorf(refdeck.EINTERNAL, "digest not sent: %s", receipt.Message)
	}

	fmt.Fprintf(deps.Stdout, "Sent digest %q (email %s)\n", receipt.Theme, receipt.EmailID)
	return nil
}
