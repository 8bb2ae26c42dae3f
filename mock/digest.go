package mock

import (
	"context"

	"github.com/jbartnik/refdeck"
)

var _ refdeck.DigestService = (*DigestService)(nil)

// DigestService is a mock implementation of refdeck.DigestService.
type DigestService struct {
	DigestStatusFn  func(ctx context.Context) (*refdeck.DigestStatus, error)
	PreviewDigestFn func(ctx context.Context) (*refdeck.DigestPreview, error)
	SendDigestFn    func(ctx context.Context) (*refdeck.DigestReceipt, error)
}

func (s *DigestService) DigestStatus(ctx context.Context) (*refdeck.DigestStatus, error) {
	return s.DigestStatusFn(ctx)
}

func (s *DigestService) PreviewDigest(ctx context.Context) (*refdeck.DigestPreview, error) {
	return s.PreviewDigestFn(ctx)
}

func (s *DigestService) SendDigest(ctx context.Context) (*refdeck.DigestReceipt, error) {
	return s.SendDigestFn(ctx)
}

var _ refdeck.QuoteService = (*QuoteService)(nil)

// QuoteService is a mock implementation of refdeck.QuoteService.
type QuoteService struct {
	QuoteStatusFn    func(ctx context.Context) (*refdeck.QuoteStatus, error)
	BackfillQuotesFn func(ctx context.Context, limit int) (*refdeck.BackfillReport, error)
}

func (s *QuoteService) QuoteStatus(ctx context.Context) (*refdeck.QuoteStatus, error) {
	return s.QuoteStatusFn(ctx)
}

func (s *QuoteService) BackfillQuotes(ctx context.Context, limit int) (*refdeck.BackfillReport, error) {
	return s.BackfillQuotesFn(ctx, limit)
}
