package mock

import (
	"context"

	"github.com/jbartnik/refdeck"
)

var _ refdeck.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of refdeck.SearchService.
type SearchService struct {
	SearchArticlesFn func(ctx context.Context, query string, limit int) ([]*refdeck.SearchResult, error)
}

func (s *SearchService) SearchArticles(ctx context.Context, query string, limit int) ([]*refdeck.SearchResult, error) {
	return s.SearchArticlesFn(ctx, query, limit)
}

var _ refdeck.Synthesizer = (*Synthesizer)(nil)

// Synthesizer is a mock implementation of refdeck.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(ctx context.Context, req refdeck.SynthesisRequest) (*refdeck.Synthesis, error)
}

func (s *Synthesizer) Synthesize(ctx context.Context, req refdeck.SynthesisRequest) (*refdeck.Synthesis, error) {
	return s.SynthesizeFn(ctx, req)
}
