package main

import (
	"fmt"

	"github.com/jbartnik/refdeck"
	"golang.org/x/sync/errgroup"
)

// Run executes the category list command.
func (c *CategoryListCmd) Run(deps *Dependencies) error {
	categories, err := deps.Categories.ListCategories(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	if len(categories) == 0 {
		fmt.Fprintln(deps.Stdout, "No categories. Use 'refdeck category create' to add one.")
		return nil
	}

	for _, cat := range categories {
		last := "never"
		if cat.LastDigestAt != nil {
			last = cat.LastDigestAt.Format("2006-01-02")
		}
		fmt.Fprintf(deps.Stdout, "%s  %-20s  %s  quotes=%d articles=%d last=%s\n",
			cat.ID, cat.Name, cat.Status, cat.MatchingQuotes, cat.MatchingArticles, last)
	}

	return nil
}

// Run executes the category create command.
func (c *CategoryCreateCmd) Run(deps *Dependencies) error {
	category := &refdeck.Category{
		Name:        c.Name,
		Description: c.Description,
	}
	if err := category.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	if err := deps.Categories.CreateCategory(deps.Ctx, category); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created category %q (%s). It joins the next daily digest rotation.\n",
		category.Name, category.ID)
	return nil
}

// Run executes the category update command.
func (c *CategoryUpdateCmd) Run(deps *Dependencies) error {
	upd := refdeck.CategoryUpdate{Name: c.Name, Description: c.Description}
	if upd.Name == nil && upd.Description == nil {
		fmt.Fprintln(deps.Stderr, "error: nothing to update; pass --name or --description")
		return refdeck.Errorf(refdeck.EINVALID, "empty category update")
	}

	category, err := deps.Categories.UpdateCategory(deps.Ctx, c.ID, upd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated category %q (%s)\n", category.Name, category.ID)
	return nil
}

// Run executes the category delete command.
func (c *CategoryDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Categories.DeleteCategory(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deactivated category %s\n", c.ID)
	return nil
}

// Run executes the category preview command.
func (c *CategoryPreviewCmd) Run(deps *Dependencies) error {
	if c.All {
		return c.previewAll(deps)
	}

	if c.ID == "" {
		fmt.Fprintln(deps.Stderr, "error: pass a category ID or --all")
		return refdeck.Errorf(refdeck.EINVALID, "category ID required")
	}

	preview, err := deps.Categories.PreviewCategory(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	printPreview(deps, preview)
	return nil
}

// previewAll fetches every category's preview concurrently and prints them in
// listing order.
func (c *CategoryPreviewCmd) previewAll(deps *Dependencies) error {
	categories, err := deps.Categories.ListCategories(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	previews := make([]*refdeck.CategoryPreview, len(categories))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(4)
	for i, cat := range categories {
		g.Go(func() error {
			preview, err := deps.Categories.PreviewCategory(ctx, cat.ID)
			if err != nil {
				return err
			}
			previews[i] = preview
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	for _, preview := range previews {
		printPreview(deps, preview)
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}

func printPreview(deps *Dependencies, p *refdeck.CategoryPreview) {
	fmt.Fprintf(deps.Stdout, "%s (%s)\n", p.CategoryName, p.CategoryID)
	fmt.Fprintf(deps.Stdout, "  matching quotes:   %d\n", p.MatchingQuotes)
	fmt.Fprintf(deps.Stdout, "  matching articles: %d\n", p.MatchingArticles)
	if p.CanSend {
		fmt.Fprintln(deps.Stdout, "  ready to send")
	} else {
		fmt.Fprintf(deps.Stdout, "  not ready: needs at least %d quotes from %d distinct articles\n",
			refdeck.MinDigestQuotes, refdeck.MinDigestArticles)
	}
	for _, q := range p.SampleQuotes {
		fmt.Fprintf(deps.Stdout, "  > %s\n", q)
	}
}

// Run executes the category themes command.
func (c *CategoryThemesCmd) Run(deps *Dependencies) error {
	themes, err := deps.Categories.DiscoveredThemes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	if len(themes) == 0 {
		fmt.Fprintln(deps.Stdout, "No themes discovered yet; themes come from past digests.")
		return nil
	}

	for _, t := range themes {
		fmt.Fprintf(deps.Stdout, "%3dx  %s\n", t.Count, t.Name)
	}
	return nil
}
