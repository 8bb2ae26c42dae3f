package refdeck

import "context"

// SearchResult is an article returned by semantic search, scored by cosine
// similarity against the query embedding. Similarity is in [0, 1].
type SearchResult struct {
	Article
	Similarity float64 `json:"similarity"`
}

// DefaultSearchLimit matches the server default when no limit is given.
const DefaultSearchLimit = 10

// SearchService represents server-side semantic search over saved articles.
type SearchService interface {
	// SearchArticles returns the closest matches for a free-text query,
	// best match first.
	SearchArticles(ctx context.Context, query string, limit int) ([]*SearchResult, error)
}
