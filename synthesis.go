package refdeck

import (
	"context"
	"strings"
)

// MaxSynthesisArticles is the server-side cap on articles per synthesis.
const MaxSynthesisArticles = 10

// SynthesisRequest asks the server to combine selected articles into a
// research brief focused on a topic.
type SynthesisRequest struct {
	ArticleIDs []string `json:"article_ids"`
	FocusTopic string   `json:"focus_topic"`
}

// Validate returns an error if the request would be refused by the server.
// Commands call this before issuing any network request: synthesis with an
// empty focus topic or an empty selection must not touch the network.
func (r *SynthesisRequest) Validate() error {
	if strings.TrimSpace(r.FocusTopic) == "" {
		return Errorf(EINVALID, "focus topic required")
	}
	if len(r.ArticleIDs) == 0 {
		return Errorf(EINVALID, "at least 1 article required")
	}
	if len(r.ArticleIDs) > MaxSynthesisArticles {
		return Errorf(EINVALID, "maximum %d articles allowed", MaxSynthesisArticles)
	}
	return nil
}

// SynthesisSource identifies one article that contributed to a synthesis.
type SynthesisSource struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Domain string `json:"domain"`
}

// Synthesis is the server's combined summary over the selected articles.
// Summary is markdown-like text; render it with RenderMarkdown for HTML
// output or print it verbatim.
type Synthesis struct {
	FocusTopic string            `json:"focus_topic"`
	Summary    string            `json:"summary"`
	Sources    []SynthesisSource `json:"sources"`
}

// Synthesizer produces a research brief over a set of saved articles.
// The operation is opaque to the client; the server retrieves full article
// text and runs the synthesis model.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (*Synthesis, error)
}
