package http

import (
	"context"
	"net/http"

	"github.com/jbartnik/refdeck"
)

// Compile-time interface verification.
var (
	_ refdeck.SearchService = (*Client)(nil)
	_ refdeck.Synthesizer   = (*Client)(nil)
)

type searchPayload struct {
	articlePayload
	Similarity float64 `json:"similarity"`
}

// SearchArticles runs semantic search and returns scored results, best
// match first.
func (c *Client) SearchArticles(ctx context.Context, query string, limit int) ([]*refdeck.SearchResult, error) {
	if query == "" {
		return nil, refdeck.Errorf(refdeck.EINVALID, "search query required")
	}
	if limit <= 0 {
		limit = refdeck.DefaultSearchLimit
	}

	in := struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}{Query: query, Limit: limit}

	var payload []*searchPayload
	if err := c.do(ctx, http.MethodPost, "/search", in, &payload); err != nil {
		return nil, err
	}

	results := make([]*refdeck.SearchResult, 0, len(payload))
	for _, p := range payload {
		results = append(results, &refdeck.SearchResult{
			Article:    *p.toArticle(),
			Similarity: p.Similarity,
		})
	}
	return results, nil
}

// Synthesize asks the server to combine the selected articles into a
// research brief. The request is validated before any network traffic.
func (c *Client) Synthesize(ctx context.Context, req refdeck.SynthesisRequest) (*refdeck.Synthesis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out refdeck.Synthesis
	if err := c.do(ctx, http.MethodPost, "/synthesize", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
