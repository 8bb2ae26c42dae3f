package main

import (
	"fmt"
	"os"

	"github.com/jbartnik/refdeck"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	if deps.Seen != nil && deps.Seen.Seen(c.URL) {
		fmt.Fprintf(deps.Stdout, "Note: %s looks already saved; the server will confirm.\n", c.URL)
	}

	var article *refdeck.Article
	var err error
	if c.Manual {
		article, err = c.saveManual(deps)
	} else {
		article, err = deps.Articles.SaveArticle(deps.Ctx, c.URL)
	}
	if err != nil {
		// A duplicate is not a failure; report which article holds the URL.
		if refdeck.ErrorCode(err) == refdeck.ECONFLICT {
			fmt.Fprintf(deps.Stdout, "Already saved: %s\n", refdeck.ErrorMessage(err))
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %q (%s)\n", title(article), article.ID)

	if deps.Cache != nil {
		_ = deps.Cache.UpsertArticles(deps.Ctx, []*refdeck.Article{article})
	}
	if deps.Seen != nil {
		deps.Seen.Add(article.URL)
	}

	return nil
}

// saveManual builds a manual article from flags, optionally extracting title
// and content from a local HTML file, and sends it to the server.
func (c *SaveCmd) saveManual(deps *Dependencies) (*refdeck.Article, error) {
	manual := refdeck.ManualArticle{
		URL:     c.URL,
		Title:   c.Title,
		Content: c.Content,
	}

	if c.HTMLFile != "" {
		if deps.Extractor == nil {
			return nil, refdeck.Errorf(refdeck.EINTERNAL, "no content extractor configured")
		}
		raw, err := os.ReadFile(c.HTMLFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", c.HTMLFile, err)
		}
		result, err := deps.Extractor.Extract(string(raw))
		if err != nil {
			return nil, err
		}
		// Explicit flags win over extracted values.
		if manual.Title == "" {
			manual.Title = result.Title
		}
		if manual.Content == "" {
			manual.Content = result.Text
		}
	}

	if err := manual.Validate(); err != nil {
		return nil, err
	}

	return deps.Articles.SaveManualArticle(deps.Ctx, manual)
}
