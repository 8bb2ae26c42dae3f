package main

import (
	"fmt"

	"github.com/jbartnik/refdeck"
)

// searchAndPick runs a search, prints the numbered results, and toggles the
// picked 1-based indices into a fresh selection. Picking the same index twice
// deselects it.
func searchAndPick(deps *Dependencies, query string, limit int, picks []int) (*refdeck.Selection, error) {
	results, err := deps.Search.SearchArticles(deps.Ctx, query, limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return nil, err
	}

	sel := refdeck.NewSelection()
	for _, p := range picks {
		if p < 1 || p > len(results) {
			fmt.Fprintf(deps.Stderr, "error: pick %d is out of range; search returned %d result(s)\n", p, len(results))
			return nil, refdeck.Errorf(refdeck.EINVALID, "pick %d out of range", p)
		}
		article := results[p-1].Article
		sel.Toggle(&article)
	}

	for i, r := range results {
		marker := " "
		if sel.IsSelected(r.Article.ID) {
			marker = "*"
		}
		fmt.Fprintf(deps.Stderr, "%s %2d. [%.2f] %s\n", marker, i+1, r.Similarity, title(&r.Article))
	}

	if deps.Cache != nil {
		articles := make([]*refdeck.Article, 0, len(results))
		for _, r := range results {
			article := r.Article
			articles = append(articles, &article)
		}
		_ = deps.Cache.UpsertArticles(deps.Ctx, articles)
	}

	return sel, nil
}
