package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbartnik/refdeck"
)

// Compile-time interface verification.
var (
	_ refdeck.DigestService = (*Client)(nil)
	_ refdeck.QuoteService  = (*Client)(nil)
)

// DigestStatus reports digest configuration and content counts.
func (c *Client) DigestStatus(ctx context.Context) (*refdeck.DigestStatus, error) {
	var out refdeck.DigestStatus
	if err := c.do(ctx, http.MethodGet, "/digest/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PreviewDigest builds the next curator digest without sending it.
func (c *Client) PreviewDigest(ctx context.Context) (*refdeck.DigestPreview, error) {
	var out refdeck.DigestPreview
	if err := c.do(ctx, http.MethodGet, "/digest/preview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendDigest triggers a digest email immediately.
func (c *Client) SendDigest(ctx context.Context) (*refdeck.DigestReceipt, error) {
	var out refdeck.DigestReceipt
	if err := c.do(ctx, http.MethodPost, "/digest/send", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuoteStatus reports which articles still lack extracted quotes.
func (c *Client) QuoteStatus(ctx context.Context) (*refdeck.QuoteStatus, error) {
	var out refdeck.QuoteStatus
	if err := c.do(ctx, http.MethodGet, "/quotes/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BackfillQuotes starts background quote extraction for articles without
// quotes.
func (c *Client) BackfillQuotes(ctx context.Context, limit int) (*refdeck.BackfillReport, error) {
	if limit <= 0 {
		limit = 10
	}

	var out refdeck.BackfillReport
	path := fmt.Sprintf("/quotes/backfill?limit=%d", limit)
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
