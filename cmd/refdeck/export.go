package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jbartnik/refdeck"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	searchContext := c.Query != ""

	sel := refdeck.NewSelection()
	if searchContext {
		var err error
		sel, err = searchAndPick(deps, c.Query, c.Limit, c.Pick)
		if err != nil {
			return err
		}
	}

	if !sel.Visible(searchContext) {
		if !searchContext {
			fmt.Fprintln(deps.Stderr, "error: export works on search results; provide a query")
			return refdeck.Errorf(refdeck.EINVALID, "export requires a search query")
		}
		fmt.Fprintln(deps.Stderr, "error: nothing selected; use --pick to choose results")
		return refdeck.Errorf(refdeck.EINVALID, "export requires at least one selected article")
	}

	articles, err := deps.Articles.ExportArticles(deps.Ctx, sel.IDs())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %s; exporting cached copies\n", refdeck.ErrorMessage(err))
		articles = cachedOrSelected(deps, sel)
	} else if deps.Cache != nil {
		// Full records include body text; keep them for the next fallback.
		_ = deps.Cache.UpsertArticles(deps.Ctx, articles)
	}

	out := refdeck.FormatExport(articles, time.Now())

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", c.Output, err)
		}
		fmt.Fprintf(deps.Stdout, "Exported %d article(s) to %s\n", len(articles), c.Output)
		return nil
	}

	fmt.Fprint(deps.Stdout, out)
	return nil
}

// cachedOrSelected resolves each selected id against the local cache and falls
// back to the selection's own last-seen copy for ids the cache has never held.
func cachedOrSelected(deps *Dependencies, sel *refdeck.Selection) []*refdeck.Article {
	byID := make(map[string]*refdeck.Article)
	if deps.Cache != nil {
		if cached, err := deps.Cache.ArticlesByIDs(deps.Ctx, sel.IDs()); err == nil {
			for _, a := range cached {
				byID[a.ID] = a
			}
		}
	}

	articles := make([]*refdeck.Article, 0, sel.Count())
	for _, id := range sel.IDs() {
		if a, ok := byID[id]; ok {
			articles = append(articles, a)
			continue
		}
		articles = append(articles, sel.Article(id))
	}
	return articles
}
