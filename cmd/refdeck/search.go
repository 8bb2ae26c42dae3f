package main

import (
	"fmt"

	"github.com/jbartnik/refdeck"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Search.SearchArticles(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	articles := make([]*refdeck.Article, 0, len(results))
	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "%2d. [%.2f] %s  %s\n", i+1, r.Similarity, title(&r.Article), r.Article.URL)
		article := r.Article
		articles = append(articles, &article)
	}

	if deps.Cache != nil {
		_ = deps.Cache.UpsertArticles(deps.Ctx, articles)
	}

	return nil
}
