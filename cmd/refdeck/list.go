package main

import (
	"context"
	"fmt"

	"github.com/jbartnik/refdeck"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	ctx := deps.Ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	articles, err := deps.Articles.ListArticles(ctx, refdeck.ArticleFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles saved yet. Use 'refdeck save' to add one.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			a.ID, a.CreatedAt.Format("2006-01-02"), a.Domain, title(a))
	}

	// Refresh the local cache with what we just saw. Best effort.
	if deps.Cache != nil {
		_ = deps.Cache.UpsertArticles(deps.Ctx, articles)
	}

	return nil
}

func title(a *refdeck.Article) string {
	if a.Title == "" {
		return "Untitled"
	}
	return a.Title
}
