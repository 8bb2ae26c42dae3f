package main

import (
	"fmt"
	"os"

	"github.com/jbartnik/refdeck"
)

// Run executes the synth command.
func (c *SynthCmd) Run(deps *Dependencies) error {
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
			fmt.Fprintln(deps.Stderr, "error: synthesis works on search results; provide a query")
			return refdeck.Errorf(refdeck.EINVALID, "synthesis requires a search query")
		}
		fmt.Fprintln(deps.Stderr, "error: nothing selected; use --pick to choose results")
		return refdeck.Errorf(refdeck.EINVALID, "synthesis requires at least one selected article")
	}

	req := refdeck.SynthesisRequest{
		ArticleIDs: sel.IDs(),
		FocusTopic: c.Focus,
	}

	// Refuse locally before any request goes out.
	if err := req.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	syn, err := deps.Synth.Synthesize(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdeck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Synthesis: %s\n\n", syn.FocusTopic)
	fmt.Fprintln(deps.Stdout, syn.Summary)
	if len(syn.Sources) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSources:")
		for _, s := range syn.Sources {
			fmt.Fprintf(deps.Stdout, "  - %s (%s)\n", s.Title, s.URL)
		}
	}

	if c.HTMLOut != "" {
		doc := fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n%s</body>\n</html>\n",
			syn.FocusTopic, refdeck.RenderMarkdown(syn.Summary))
		if err := os.WriteFile(c.HTMLOut, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", c.HTMLOut, err)
		}
		fmt.Fprintf(deps.Stdout, "\nWrote HTML to %s\n", c.HTMLOut)
	}

	return nil
}
