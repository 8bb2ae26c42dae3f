package refdeck

import "context"

// QuoteStatus reports quote extraction coverage across saved articles.
type QuoteStatus struct {
	TotalQuotes     int              `json:"total_quotes"`
	TotalArticles   int              `json:"total_articles"`
	WithoutQuotes   int              `json:"articles_without_quotes"`
	NeedingBackfill []ArticleSummary `json:"articles_needing_backfill"`
}

// ArticleSummary is a minimal article reference in status payloads.
type ArticleSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// BackfillReport confirms a started quote backfill run.
type BackfillReport struct {
	Message    string           `json:"message"`
	Processing []ArticleSummary `json:"processing"`
	Remaining  int              `json:"remaining"`
}

// QuoteService represents server-side quote extraction maintenance.
type QuoteService interface {
	// QuoteStatus reports which articles still lack extracted quotes.
	QuoteStatus(ctx context.Context) (*QuoteStatus, error)

	// BackfillQuotes starts background quote extraction for up to limit
	// articles that have none yet.
	BackfillQuotes(ctx context.Context, limit int) (*BackfillReport, error)
}
