// Package slog provides logging decorators for the slow remote services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jbartnik/refdeck"
)

// Ensure LoggingSearchService implements refdeck.SearchService.
var _ refdeck.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with debug logging.
type LoggingSearchService struct {
	next   refdeck.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next refdeck.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// SearchArticles delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) SearchArticles(ctx context.Context, query string, limit int) (results []*refdeck.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"limit", limit,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchArticles(ctx, query, limit)
}
